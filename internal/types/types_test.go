package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/prediction"
)

func TestChartFormRequest(t *testing.T) {
	tests := []struct {
		name string
		form ChartForm
		want ChartRequest
	}{
		{"numbers", ChartForm{Age: "24", Month: "2"}, ChartRequest{Age: 24, Month: 2}},
		{"surrounding space", ChartForm{Age: " 30 ", Month: "12\n"}, ChartRequest{Age: 30, Month: 12}},
		{"not a number", ChartForm{Age: "abc", Month: "2"}, ChartRequest{Age: 0, Month: 2}},
		{"fraction", ChartForm{Age: "24.5", Month: "June"}, ChartRequest{}},
		{"empty", ChartForm{}, ChartRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.form.Request())
		})
	}
}

func TestHeartbeatRequestAnswers(t *testing.T) {
	req := HeartbeatRequest{Heartrate: "high", Sickness: "severe", Cravings: "sweet", Carrying: "high", Skin: "worse"}

	assert.Equal(t, prediction.SymptomAnswers{
		Heartrate: "high", Sickness: "severe", Cravings: "sweet", Carrying: "high", Skin: "worse",
	}, req.Answers())
}

func TestWivesTalesRequestAnswers(t *testing.T) {
	req := WivesTalesRequest{Key: "round", Dreams: "boy", Mood: "mellow", Chinese: "unknown", Ring: "line", Breasts: "left"}

	assert.Equal(t, prediction.TalesAnswers{
		Key: "round", Dreams: "boy", Mood: "mellow", Chinese: "unknown", Ring: "line", Breasts: "left",
	}, req.Answers())
}
