package prediction

// Gender is the outcome of a prediction
type Gender string

const (
	Boy          Gender = "boy"
	Girl         Gender = "girl"
	Tie          Gender = "tie"
	Inconclusive Gender = "inconclusive"
)

// Headline returns the result line shown above a prediction
func (g Gender) Headline() string {
	switch g {
	case Boy:
		return "Boy! 👦"
	case Girl:
		return "Girl! 👧"
	case Tie:
		return "It's a tie! 👦👧"
	default:
		return "Inconclusive"
	}
}

// Tally accumulates one vote per answered question. A question that abstains
// adds to neither side; GirlPoints never exceeds TotalPoints.
type Tally struct {
	GirlPoints  int `json:"girl_points"`
	TotalPoints int `json:"total_points"`
}

func (t *Tally) vote(girl, counts bool) {
	if girl {
		t.GirlPoints++
	}
	if counts {
		t.TotalPoints++
	}
}

// BoyPoints is the number of counted answers that did not favor a girl
func (t Tally) BoyPoints() int {
	return t.TotalPoints - t.GirlPoints
}

// question is one multiple-choice question with its closed answer set
type question struct {
	name    string
	choices []string
}

func (q question) accepts(answer string) bool {
	for _, c := range q.choices {
		if c == answer {
			return true
		}
	}
	return false
}

// unanswered returns the names of the questions whose answer is empty or not
// one of the question's choices, in question order.
func unanswered(questions []question, answers []string) []string {
	var missing []string
	for i, q := range questions {
		if i >= len(answers) || !q.accepts(answers[i]) {
			missing = append(missing, q.name)
		}
	}
	return missing
}

// Choices lists the valid answers for each question of a quiz, in order
type Choices struct {
	Question string   `json:"question"`
	Answers  []string `json:"answers"`
}

func choicesOf(questions []question) []Choices {
	out := make([]Choices, len(questions))
	for i, q := range questions {
		out[i] = Choices{Question: q.name, Answers: append([]string(nil), q.choices...)}
	}
	return out
}
