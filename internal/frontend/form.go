package frontend

import (
	"time"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/prediction"
)

// Option is one radio button of a quiz question
type Option struct {
	Value string
	Label string
}

// Question is a quiz question as the page renders it
type Question struct {
	Name    string
	Prompt  string
	Options []Option
}

// Month is an entry of the conception month select
type Month struct {
	Number int
	Name   string
}

var prompts = map[string]string{
	"heartrate": "What is the baby's heart rate?",
	"sickness":  "How bad is your morning sickness?",
	"cravings":  "What are you craving?",
	"carrying":  "How are you carrying?",
	"skin":      "How has your skin changed?",
	"key":       "Pick up a key from the table. Which end did you grab?",
	"dreams":    "Who do you dream about?",
	"mood":      "How is your mood?",
	"chinese":   "What did the Chinese birth chart predict?",
	"ring":      "How did your wedding ring swing over your belly?",
	"breasts":   "Which breast is larger?",
}

// labels are keyed by question then answer token
var labels = map[string]map[string]string{
	"heartrate": {
		prediction.HeartrateSlow:    "Below 140 bpm",
		prediction.HeartrateNormal:  "Around 140 bpm",
		prediction.HeartrateHigh:    "Above 140 bpm",
		prediction.HeartrateUnknown: "I don't know",
	},
	"sickness": {
		prediction.SicknessMild:     "Mild or none",
		prediction.SicknessModerate: "Moderate",
		prediction.SicknessSevere:   "Severe",
	},
	"cravings": {
		prediction.CravingsSalty: "Salty or sour",
		prediction.CravingsSweet: "Sweet",
		prediction.CravingsBoth:  "Both",
	},
	"carrying": {
		prediction.CarryingLow:    "Low",
		prediction.CarryingHigh:   "High",
		prediction.CarryingUnsure: "Not sure",
	},
	"skin": {
		prediction.SkinBetter: "Clearer than usual",
		prediction.SkinWorse:  "More breakouts",
		prediction.SkinSame:   "No change",
	},
	"key": {
		prediction.KeyRound:  "The round end",
		prediction.KeyNarrow: "The narrow end",
	},
	"dreams": {
		prediction.DreamsGirl:    "Girls",
		prediction.DreamsBoy:     "Boys",
		prediction.DreamsNeither: "Neither",
	},
	"mood": {
		prediction.MoodMoody:  "Moody or irritable",
		prediction.MoodMellow: "Mellow and happy",
	},
	"chinese": {
		prediction.ChineseGirl:    "Girl",
		prediction.ChineseBoy:     "Boy",
		prediction.ChineseUnknown: "Haven't tried it",
	},
	"ring": {
		prediction.RingCircles:  "In circles",
		prediction.RingLine:     "In a line",
		prediction.RingNotTried: "Haven't tried it",
	},
	"breasts": {
		prediction.BreastsLeft:  "Left",
		prediction.BreastsRight: "Right",
		prediction.BreastsEqual: "About the same",
	},
}

func questionsFor(choices []prediction.Choices) []Question {
	out := make([]Question, 0, len(choices))
	for _, c := range choices {
		q := Question{Name: c.Question, Prompt: prompts[c.Question]}
		for _, answer := range c.Answers {
			label := labels[c.Question][answer]
			if label == "" {
				label = answer
			}
			q.Options = append(q.Options, Option{Value: answer, Label: label})
		}
		out = append(out, q)
	}
	return out
}

func months() []Month {
	out := make([]Month, 12)
	for i := range out {
		out[i] = Month{Number: i + 1, Name: time.Month(i + 1).String()}
	}
	return out
}
