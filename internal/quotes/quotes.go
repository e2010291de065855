package quotes

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

const defaultURL = "https://api.quotable.io/random?tags=motivational,success,technology"

// Quote is a motivational quote with attribution.
type Quote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

var fallbacks = []Quote{
	{"The secret of getting ahead is getting started.", "Mark Twain"},
	{"It always seems impossible until it's done.", "Nelson Mandela"},
	{"Don't watch the clock; do what it does — keep going.", "Sam Levenson"},
	{"Success is the sum of small efforts repeated day in and day out.", "Robert Collier"},
	{"The future depends on what you do today.", "Mahatma Gandhi"},
	{"Discipline is choosing between what you want now and what you want most.", "Augusta F. Kantra"},
	{"An investment in knowledge pays the best interest.", "Benjamin Franklin"},
}

// unixEpochOrdinal is the proleptic Gregorian ordinal of 1970-01-01.
// Counting whole Unix days avoids the Duration overflow a subtraction
// from year 1 would hit.
const unixEpochOrdinal = 719163

func dayOrdinal(t time.Time) int {
	return int(t.Unix()/86400) + unixEpochOrdinal
}

// Service fetches the quote of the day, best effort. Failures fall back
// to a fixed local list indexed by the date, so the quote is stable
// across reloads. Results are cached for one calendar day.
type Service struct {
	client *http.Client
	url    string

	mu        sync.Mutex
	cacheDate string
	cached    Quote
}

func New() *Service {
	return &Service{
		client: &http.Client{Timeout: 3 * time.Second},
		url:    defaultURL,
	}
}

// NewWithURL is used by tests to point the service at a fake upstream.
func NewWithURL(url string) *Service {
	s := New()
	s.url = url
	return s
}

// Daily returns the quote for the given day, fetching at most once per
// calendar day per service instance.
func (s *Service) Daily(today time.Time) Quote {
	dateStr := today.Format("2006-01-02")

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cacheDate == dateStr && s.cached.Quote != "" {
		return s.cached
	}

	fallback := fallbacks[dayOrdinal(today)%len(fallbacks)]

	q, ok := s.fetch()
	if !ok {
		q = fallback
	}
	if q.Quote == "" {
		q.Quote = fallback.Quote
	}
	if q.Author == "" {
		q.Author = fallback.Author
	}

	s.cacheDate = dateStr
	s.cached = q
	return q
}

func (s *Service) fetch() (Quote, bool) {
	res, err := s.client.Get(s.url)
	if err != nil {
		return Quote{}, false
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return Quote{}, false
	}

	var payload struct {
		Content string `json:"content"`
		Author  string `json:"author"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return Quote{}, false
	}
	return Quote{Quote: payload.Content, Author: payload.Author}, true
}
