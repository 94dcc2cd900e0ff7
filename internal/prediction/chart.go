package prediction

import (
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/errors"
)

const (
	MinMotherAge = 18
	MaxMotherAge = 50
)

// ChartResult is the Chinese gender chart outcome as the page presents it
type ChartResult struct {
	Gender     Gender `json:"gender"`
	Headline   string `json:"headline"`
	Message    string `json:"message"`
	Disclaimer string `json:"disclaimer"`
}

// PredictChart is a simplified stand-in for the lunar gender chart: an even
// (last digit of age + month) means boy, odd means girl. Any integers are
// accepted.
func PredictChart(motherAge, conceptionMonth int) Gender {
	if (motherAge%10+conceptionMonth)%2 == 0 {
		return Boy
	}
	return Girl
}

// ValidateChartInput applies the range checks the site runs before predicting
func ValidateChartInput(motherAge, conceptionMonth int) error {
	if motherAge < MinMotherAge || motherAge > MaxMotherAge {
		return errors.NewValidationError("Please enter a valid mother's age (18-50).", motherAge)
	}
	if conceptionMonth < 1 || conceptionMonth > 12 {
		return errors.NewValidationError("Please select a valid conception month.", conceptionMonth)
	}
	return nil
}

// Chart runs the chart prediction and attaches its display texts
func Chart(motherAge, conceptionMonth int) ChartResult {
	g := PredictChart(motherAge, conceptionMonth)
	return ChartResult{
		Gender:     g,
		Headline:   g.Headline(),
		Message:    "According to traditional Chinese gender prediction, you're likely having a " + string(g) + "!",
		Disclaimer: "Remember this is just for fun and not scientifically accurate.",
	}
}
