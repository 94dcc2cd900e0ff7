package types

import (
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/ideas"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/prediction"
)

// ChartRequest is the Chinese gender chart form. Empty fields bind as zero and
// fail range validation.
type ChartRequest struct {
	Age   int `form:"age" json:"age" example:"24"`
	Month int `form:"month" json:"month" example:"2"`
}

// ChartForm is the chart as the page posts it. A value that is not a whole
// number reads as zero, so range validation names the field at fault.
type ChartForm struct {
	Age   string `form:"age"`
	Month string `form:"month"`
}

// Request converts the form to the chart input
func (f ChartForm) Request() ChartRequest {
	return ChartRequest{Age: formInt(f.Age), Month: formInt(f.Month)}
}

func formInt(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

// HeartbeatRequest is the heartbeat and symptoms quiz form. An empty field is
// an unanswered question.
type HeartbeatRequest struct {
	Heartrate string `form:"heartrate" json:"heartrate" example:"high"`
	Sickness  string `form:"sickness" json:"sickness" example:"severe"`
	Cravings  string `form:"cravings" json:"cravings" example:"sweet"`
	Carrying  string `form:"carrying" json:"carrying" example:"high"`
	Skin      string `form:"skin" json:"skin" example:"worse"`
}

// Answers converts the form to scorer input
func (r HeartbeatRequest) Answers() prediction.SymptomAnswers {
	return prediction.SymptomAnswers{
		Heartrate: r.Heartrate,
		Sickness:  r.Sickness,
		Cravings:  r.Cravings,
		Carrying:  r.Carrying,
		Skin:      r.Skin,
	}
}

// WivesTalesRequest is the old wives' tales quiz form. An empty field is an
// unanswered question.
type WivesTalesRequest struct {
	Key     string `form:"key" json:"key" example:"round"`
	Dreams  string `form:"dreams" json:"dreams" example:"neither"`
	Mood    string `form:"mood" json:"mood" example:"moody"`
	Chinese string `form:"chinese" json:"chinese" example:"unknown"`
	Ring    string `form:"ring" json:"ring" example:"notried"`
	Breasts string `form:"breasts" json:"breasts" example:"equal"`
}

// Answers converts the form to scorer input
func (r WivesTalesRequest) Answers() prediction.TalesAnswers {
	return prediction.TalesAnswers{
		Key:     r.Key,
		Dreams:  r.Dreams,
		Mood:    r.Mood,
		Chinese: r.Chinese,
		Ring:    r.Ring,
		Breasts: r.Breasts,
	}
}

// IdeasResponse lists the whole reveal idea catalog
type IdeasResponse struct {
	Count int                `json:"count"`
	Ideas []ideas.RevealIdea `json:"ideas"`
}

// QuizzesResponse lists the accepted answers of both quizzes
type QuizzesResponse struct {
	Heartbeat  []prediction.Choices `json:"heartbeat"`
	WivesTales []prediction.Choices `json:"wives_tales"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status    string                 `json:"status" example:"ok"`
	Timestamp string                 `json:"timestamp"`
	Version   string                 `json:"version" example:"1.0.0"`
	Redis     string                 `json:"redis" example:"disabled"`
	Metrics   map[string]interface{} `json:"metrics,omitempty"`
}
