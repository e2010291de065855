package nutrition

import "math"

// Targets are the daily nutrition goals derived from height and weight.
type Targets struct {
	BMI      float64 `json:"bmi"`
	ProteinG int     `json:"proteinG"`
	FiberG   int     `json:"fiberG"`
	WaterL   float64 `json:"waterL"`
}

// ComputeTargets derives daily targets from a physical profile. Returns
// nil when either measurement is missing or non-positive, so callers can
// degrade to a workout-only checklist.
func ComputeTargets(heightCm, weightKg float64) *Targets {
	if heightCm <= 0 || weightKg <= 0 {
		return nil
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	fiber := 25
	if weightKg >= 70 {
		fiber = 30
	}

	return &Targets{
		BMI:      math.Round(bmi*10) / 10,
		ProteinG: int(math.Round(weightKg * 1.6)),
		FiberG:   fiber,
		WaterL:   math.Round(weightKg*0.035*10) / 10,
	}
}

// BMIStatus classifies a BMI value.
type BMIStatus struct {
	Status         string `json:"status"`
	Color          string `json:"color"`
	Recommendation string `json:"recommendation"`
}

func ClassifyBMI(bmi float64) BMIStatus {
	switch {
	case bmi < 18.5:
		return BMIStatus{"Underweight", "#3b82f6", "Increase caloric intake"}
	case bmi < 25:
		return BMIStatus{"Normal", "#10b981", "Maintain current diet and exercise"}
	case bmi < 30:
		return BMIStatus{"Overweight", "#f59e0b", "Reduce caloric intake, increase exercise"}
	default:
		return BMIStatus{"Obese", "#ef4444", "Consult healthcare provider"}
	}
}
