package nutrition

var breakfastProteins = []string{
	"eggs", "Greek yogurt", "paneer", "protein smoothie", "tofu scramble",
	"cottage cheese", "moong dal chilla", "sprouted moong",
}

var lunchProteins = []string{
	"chicken breast", "dal (lentils)", "tofu", "tempeh", "legumes (chickpeas, kidney beans)",
	"soy chunks", "grilled fish", "lean beef",
}

var dinnerProteins = []string{
	"fish (salmon, tuna)", "beans", "cottage cheese", "quinoa", "turkey",
	"mushrooms with peas", "edamame", "lentil soup",
}

var vegetables = []string{
	"broccoli", "spinach", "carrots", "cauliflower", "bell peppers",
	"brussels sprouts", "sweet potatoes", "kale", "green beans",
}

var grains = []string{
	"oats", "brown rice", "roti (whole wheat)", "quinoa", "barley",
	"buckwheat", "millet", "whole grain bread",
}

var fruits = []string{
	"apple", "guava", "banana", "pear", "orange", "berries", "papaya", "pomegranate",
}

var workoutRoutines = []string{
	"Cardio & Core: 30 mins running/cycling + plank & crunches",
	"Leg Day: Squats, Lunges, Calf raises, Glute bridges",
	"Chest & Triceps: Push-ups, Dips, Tricep extensions",
	"Back & Biceps: Pull-ups, Rows, Bicep curls",
	"Full Body HIIT: Burpees, Jumping jacks, Mountain climbers",
	"Active Recovery: 45 mins brisk walking or yoga stretch",
}
