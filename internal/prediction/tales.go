package prediction

import (
	"fmt"
	"math"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/errors"
)

// Old wives' tales quiz answers
const (
	KeyRound  = "round"
	KeyNarrow = "narrow"

	DreamsGirl    = "girl"
	DreamsBoy     = "boy"
	DreamsNeither = "neither"

	MoodMoody  = "moody"
	MoodMellow = "mellow"

	ChineseGirl    = "girl"
	ChineseBoy     = "boy"
	ChineseUnknown = "unknown"

	RingCircles  = "circles"
	RingLine     = "line"
	RingNotTried = "notried"

	BreastsLeft  = "left"
	BreastsRight = "right"
	BreastsEqual = "equal"
)

// WivesTalesQuiz names the old wives' tales quiz in errors and metrics
const WivesTalesQuiz = "wives-tales"

var talesQuestions = []question{
	{"key", []string{KeyRound, KeyNarrow}},
	{"dreams", []string{DreamsGirl, DreamsBoy, DreamsNeither}},
	{"mood", []string{MoodMoody, MoodMellow}},
	{"chinese", []string{ChineseGirl, ChineseBoy, ChineseUnknown}},
	{"ring", []string{RingCircles, RingLine, RingNotTried}},
	{"breasts", []string{BreastsLeft, BreastsRight, BreastsEqual}},
}

// TalesAnswers holds the old wives' tales quiz answers. An empty field is unanswered.
type TalesAnswers struct {
	Key     string `json:"key"`
	Dreams  string `json:"dreams"`
	Mood    string `json:"mood"`
	Chinese string `json:"chinese"`
	Ring    string `json:"ring"`
	Breasts string `json:"breasts"`
}

func (a TalesAnswers) values() []string {
	return []string{a.Key, a.Dreams, a.Mood, a.Chinese, a.Ring, a.Breasts}
}

// TalesChoices lists the old wives' tales questions and their answers
func TalesChoices() []Choices {
	return choicesOf(talesQuestions)
}

// Split holds the integer percentages of a decided tales quiz; Girl+Boy == 100.
type Split struct {
	Girl int `json:"girl"`
	Boy  int `json:"boy"`
}

// TalesResult is the old wives' tales outcome. Percentages is nil when the
// result is inconclusive. Explanations follow question order.
type TalesResult struct {
	Gender       Gender   `json:"gender"`
	Tally        Tally    `json:"tally"`
	Percentages  *Split   `json:"percentages,omitempty"`
	Headline     string   `json:"headline"`
	Summary      string   `json:"summary"`
	Explanations []string `json:"explanations"`
	Footnote     string   `json:"footnote"`
}

// tally walks the questions in order. Key and mood always count and always
// explain; the other questions explain only when they lean one way, and the
// neutral answer neither counts nor explains.
func (a TalesAnswers) tally() (Tally, []string) {
	var t Tally
	explanations := make([]string, 0, len(talesQuestions))

	if a.Key == KeyRound {
		explanations = append(explanations, "You picked up the key by the round end, which suggests a girl.")
	} else {
		explanations = append(explanations, "You picked up the key by the narrow end, which suggests a boy.")
	}
	t.vote(a.Key == KeyRound, true)

	switch a.Dreams {
	case DreamsGirl:
		explanations = append(explanations, "Dreaming about girls suggests you're having a girl.")
	case DreamsBoy:
		explanations = append(explanations, "Dreaming about boys suggests you're having a boy.")
	}
	t.vote(a.Dreams == DreamsGirl, a.Dreams != DreamsNeither)

	if a.Mood == MoodMoody {
		explanations = append(explanations, "Feeling moody or irritable suggests you're having a girl.")
	} else {
		explanations = append(explanations, "Feeling mellow and happy suggests you're having a boy.")
	}
	t.vote(a.Mood == MoodMoody, true)

	switch a.Chinese {
	case ChineseGirl:
		explanations = append(explanations, "The Chinese birth chart indicated a girl.")
	case ChineseBoy:
		explanations = append(explanations, "The Chinese birth chart indicated a boy.")
	}
	t.vote(a.Chinese == ChineseGirl, a.Chinese != ChineseUnknown)

	switch a.Ring {
	case RingCircles:
		explanations = append(explanations, "Your wedding ring moved in circles, suggesting a girl.")
	case RingLine:
		explanations = append(explanations, "Your wedding ring moved in a line, suggesting a boy.")
	}
	t.vote(a.Ring == RingCircles, a.Ring != RingNotTried)

	switch a.Breasts {
	case BreastsLeft:
		explanations = append(explanations, "Your left breast being larger suggests a girl.")
	case BreastsRight:
		explanations = append(explanations, "Your right breast being larger suggests a boy.")
	}
	t.vote(a.Breasts == BreastsLeft, a.Breasts != BreastsEqual)

	return t, explanations
}

// ScoreTales predicts from the old wives' tales answers. Unanswered questions
// yield an incomplete-input error instead of a guess.
func ScoreTales(a TalesAnswers) (TalesResult, error) {
	if missing := unanswered(talesQuestions, a.values()); len(missing) > 0 {
		return TalesResult{}, errors.NewIncompleteInputError(WivesTalesQuiz, missing)
	}

	tally, explanations := a.tally()
	return decideTales(tally, explanations), nil
}

// decideTales turns a tally into the final verdict. A zero total is
// inconclusive.
func decideTales(tally Tally, explanations []string) TalesResult {
	res := TalesResult{Tally: tally, Explanations: explanations}

	if tally.TotalPoints == 0 {
		res.Gender = Inconclusive
		res.Summary = "Based on your answers, we don't have enough information to make a prediction."
		res.Footnote = "Try answering more questions to get a prediction."
		res.Headline = res.Gender.Headline()
		return res
	}

	girlPct := int(math.Round(100 * float64(tally.GirlPoints) / float64(tally.TotalPoints)))
	boyPct := 100 - girlPct
	res.Percentages = &Split{Girl: girlPct, Boy: boyPct}

	switch {
	case girlPct > boyPct:
		res.Gender = Girl
		res.Summary = fmt.Sprintf("Based on old wives' tales, you're more likely to be having a girl! (%d%% girl / %d%% boy)", girlPct, boyPct)
		res.Footnote = "Remember, these are just old wives' tales and not scientifically accurate."
	case boyPct > girlPct:
		res.Gender = Boy
		res.Summary = fmt.Sprintf("Based on old wives' tales, you're more likely to be having a boy! (%d%% boy / %d%% girl)", boyPct, girlPct)
		res.Footnote = "Remember, these are just old wives' tales and not scientifically accurate."
	default:
		res.Gender = Tie
		res.Summary = "It's a tie! The old wives' tales are evenly split between boy and girl predictions."
		res.Footnote = "The old wives' tales are evenly split - maybe it's twins?"
	}
	res.Headline = res.Gender.Headline()

	return res
}
