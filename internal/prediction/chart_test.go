package prediction

import (
	"testing"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictChart(t *testing.T) {
	tests := []struct {
		name  string
		age   int
		month int
		want  Gender
	}{
		{"even combination is a boy", 24, 2, Boy},
		{"odd combination is a girl", 25, 2, Girl},
		{"youngest age in january", 18, 1, Girl},
		{"oldest age in december", 50, 12, Boy},
		{"age ending in zero", 30, 7, Girl},
		{"out of range age still computes", 7, 3, Boy},
		{"out of range month still computes", 33, 15, Boy},
		{"negative input still computes", -3, 2, Girl},
		{"zero input", 0, 0, Boy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PredictChart(tt.age, tt.month))
		})
	}
}

func TestPredictChartDependsOnlyOnParity(t *testing.T) {
	for age := -60; age <= 120; age++ {
		for month := -24; month <= 24; month++ {
			parity := (age%10 + month) % 2
			got := PredictChart(age, month)
			if parity == 0 {
				require.Equal(t, Boy, got, "age=%d month=%d", age, month)
			} else {
				require.Equal(t, Girl, got, "age=%d month=%d", age, month)
			}
		}
	}

	// same parity, same answer
	assert.Equal(t, PredictChart(21, 3), PredictChart(43, 11))
	assert.Equal(t, PredictChart(28, 5), PredictChart(19, 2))
}

func TestValidateChartInput(t *testing.T) {
	tests := []struct {
		name    string
		age     int
		month   int
		wantMsg string
	}{
		{"valid lower bounds", 18, 1, ""},
		{"valid upper bounds", 50, 12, ""},
		{"age too young", 17, 6, "Please enter a valid mother's age (18-50)."},
		{"age too old", 51, 6, "Please enter a valid mother's age (18-50)."},
		{"month zero", 30, 0, "Please select a valid conception month."},
		{"month thirteen", 30, 13, "Please select a valid conception month."},
		{"age checked before month", 12, 13, "Please enter a valid mother's age (18-50)."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChartInput(tt.age, tt.month)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr := errors.ToAppError(err)
			assert.Equal(t, errors.CategoryValidation, appErr.Category)
			assert.Equal(t, tt.wantMsg, appErr.UserMessage())
		})
	}
}

func TestChartResultTexts(t *testing.T) {
	boy := Chart(24, 2)
	assert.Equal(t, Boy, boy.Gender)
	assert.Equal(t, "Boy! 👦", boy.Headline)
	assert.Equal(t, "According to traditional Chinese gender prediction, you're likely having a boy!", boy.Message)
	assert.NotEmpty(t, boy.Disclaimer)

	girl := Chart(25, 2)
	assert.Equal(t, Girl, girl.Gender)
	assert.Equal(t, "Girl! 👧", girl.Headline)
	assert.Equal(t, "According to traditional Chinese gender prediction, you're likely having a girl!", girl.Message)
}
