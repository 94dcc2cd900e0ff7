package prediction

import (
	"fmt"
	"math"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/errors"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/random"
)

// Heartbeat quiz answers
const (
	HeartrateSlow    = "slow"
	HeartrateNormal  = "normal"
	HeartrateHigh    = "high"
	HeartrateUnknown = "unknown"

	SicknessMild     = "mild"
	SicknessModerate = "moderate"
	SicknessSevere   = "severe"

	CravingsSalty = "salty"
	CravingsSweet = "sweet"
	CravingsBoth  = "both"

	CarryingLow    = "low"
	CarryingHigh   = "high"
	CarryingUnsure = "unsure"

	SkinBetter = "better"
	SkinWorse  = "worse"
	SkinSame   = "same"
)

// HeartbeatQuiz names the heartbeat quiz in errors and metrics
const HeartbeatQuiz = "heartbeat"

// perturbation is the half-width of the random nudge added to the girl
// percentage before thresholding.
const perturbation = 5.0

var symptomQuestions = []question{
	{"heartrate", []string{HeartrateSlow, HeartrateNormal, HeartrateHigh, HeartrateUnknown}},
	{"sickness", []string{SicknessMild, SicknessModerate, SicknessSevere}},
	{"cravings", []string{CravingsSalty, CravingsSweet, CravingsBoth}},
	{"carrying", []string{CarryingLow, CarryingHigh, CarryingUnsure}},
	{"skin", []string{SkinBetter, SkinWorse, SkinSame}},
}

// SymptomAnswers holds the heartbeat quiz answers. An empty field is unanswered.
type SymptomAnswers struct {
	Heartrate string `json:"heartrate"`
	Sickness  string `json:"sickness"`
	Cravings  string `json:"cravings"`
	Carrying  string `json:"carrying"`
	Skin      string `json:"skin"`
}

func (a SymptomAnswers) values() []string {
	return []string{a.Heartrate, a.Sickness, a.Cravings, a.Carrying, a.Skin}
}

// Tally scores the answers without any randomness. Sickness always counts,
// so a complete answer set has TotalPoints >= 1.
func (a SymptomAnswers) Tally() Tally {
	var t Tally
	t.vote(a.Heartrate == HeartrateHigh, a.Heartrate != HeartrateUnknown)
	t.vote(a.Sickness == SicknessSevere, true)
	t.vote(a.Cravings == CravingsSweet, a.Cravings != CravingsBoth)
	t.vote(a.Carrying == CarryingHigh, a.Carrying != CarryingUnsure)
	t.vote(a.Skin == SkinWorse, a.Skin != SkinSame)
	return t
}

// SymptomChoices lists the heartbeat quiz questions and their answers
func SymptomChoices() []Choices {
	return choicesOf(symptomQuestions)
}

// SymptomResult is the heartbeat quiz outcome. Points are the raw answers
// favoring the predicted gender, before the random nudge.
type SymptomResult struct {
	Gender      Gender `json:"gender"`
	Tally       Tally  `json:"tally"`
	Points      int    `json:"points"`
	Percentage  int    `json:"percentage"`
	Headline    string `json:"headline"`
	Message     string `json:"message"`
	Summary     string `json:"summary"`
	Explanation string `json:"explanation"`
}

// SymptomScorer scores the heartbeat quiz
type SymptomScorer struct {
	rand random.Source
}

// NewSymptomScorer creates a scorer drawing its nudge from src, or from the
// runtime source when src is nil.
func NewSymptomScorer(src random.Source) *SymptomScorer {
	if src == nil {
		src = random.Default()
	}
	return &SymptomScorer{rand: src}
}

// Score predicts from the heartbeat quiz answers. Unanswered questions yield
// an incomplete-input error instead of a guess.
func (s *SymptomScorer) Score(a SymptomAnswers) (SymptomResult, error) {
	if missing := unanswered(symptomQuestions, a.values()); len(missing) > 0 {
		return SymptomResult{}, errors.NewIncompleteInputError(HeartbeatQuiz, missing)
	}

	tally := a.Tally()
	if tally.TotalPoints == 0 {
		// sickness always counts; only reachable if the rules above change
		return SymptomResult{
			Gender:   Inconclusive,
			Tally:    tally,
			Headline: Inconclusive.Headline(),
			Message:  "Based on your answers, we don't have enough information to make a prediction.",
		}, nil
	}

	girlPercentage := 100 * float64(tally.GirlPoints) / float64(tally.TotalPoints)
	adjusted := girlPercentage + s.rand.Float64()*2*perturbation - perturbation

	if adjusted >= 50 {
		return symptomResult(Girl, tally, tally.GirlPoints), nil
	}
	return symptomResult(Boy, tally, tally.BoyPoints()), nil
}

func symptomResult(g Gender, tally Tally, points int) SymptomResult {
	pct := int(math.Round(100 * float64(points) / float64(tally.TotalPoints)))

	explanation := "According to old wives' tales, slower heartbeats, mild sickness, salty cravings, and carrying low all point toward a boy."
	if g == Girl {
		explanation = "According to old wives' tales, faster heartbeats, severe morning sickness, sweet cravings, and carrying high all point toward a girl."
	}

	return SymptomResult{
		Gender:      g,
		Tally:       tally,
		Points:      points,
		Percentage:  pct,
		Headline:    g.Headline(),
		Message:     fmt.Sprintf("Based on the heartbeat myth and your symptoms, you're likely having a %s!", g),
		Summary:     fmt.Sprintf("%d%% of your answers suggest a %s.", pct, g),
		Explanation: explanation,
	}
}
