package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/errors"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/frontend"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/ideas"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/prediction"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/random"
)

// newRootCmd builds the command tree. src feeds the heartbeat nudge and the
// idea draw.
func newRootCmd(src random.Source) *cobra.Command {
	var asJSON bool

	root := &cobra.Command{
		Use:          "predict",
		Short:        "Playful baby gender predictions",
		Long:         "Runs the site's gender prediction quizzes from the command line.\n" + frontend.SiteDisclaimer,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	out := func(cmd *cobra.Command, v interface{}, text func(io.Writer)) error {
		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		}
		text(cmd.OutOrStdout())
		return nil
	}

	root.AddCommand(
		newChartCmd(out),
		newHeartbeatCmd(src, out),
		newTalesCmd(out),
		newIdeaCmd(src, out),
	)
	return root
}

type printer func(cmd *cobra.Command, v interface{}, text func(io.Writer)) error

func newChartCmd(out printer) *cobra.Command {
	var age, month int

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Chinese gender chart from the mother's age and conception month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := prediction.ValidateChartInput(age, month); err != nil {
				return userError(err)
			}
			res := prediction.Chart(age, month)
			return out(cmd, res, func(w io.Writer) {
				fmt.Fprintln(w, res.Headline)
				fmt.Fprintln(w, res.Message)
				fmt.Fprintln(w, res.Disclaimer)
			})
		},
	}
	cmd.Flags().IntVar(&age, "age", 0, "mother's age at conception (18-50)")
	cmd.Flags().IntVar(&month, "month", 0, "conception month (1-12)")
	return cmd
}

func newHeartbeatCmd(src random.Source, out printer) *cobra.Command {
	var a prediction.SymptomAnswers

	cmd := &cobra.Command{
		Use:   "heartbeat",
		Short: "Heartbeat and symptoms quiz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := prediction.NewSymptomScorer(src).Score(a)
			if err != nil {
				return userError(err)
			}
			return out(cmd, res, func(w io.Writer) {
				fmt.Fprintln(w, res.Headline)
				fmt.Fprintln(w, res.Message)
				fmt.Fprintln(w, res.Summary)
				fmt.Fprintln(w, res.Explanation)
			})
		},
	}
	addChoiceFlags(cmd, prediction.SymptomChoices(), map[string]*string{
		"heartrate": &a.Heartrate,
		"sickness":  &a.Sickness,
		"cravings":  &a.Cravings,
		"carrying":  &a.Carrying,
		"skin":      &a.Skin,
	})
	return cmd
}

func newTalesCmd(out printer) *cobra.Command {
	var a prediction.TalesAnswers

	cmd := &cobra.Command{
		Use:   "tales",
		Short: "Old wives' tales quiz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := prediction.ScoreTales(a)
			if err != nil {
				return userError(err)
			}
			return out(cmd, res, func(w io.Writer) {
				fmt.Fprintln(w, res.Headline)
				fmt.Fprintln(w, res.Summary)
				if len(res.Explanations) > 0 && res.Gender != prediction.Tie {
					fmt.Fprintln(w, "How we determined this:")
					for _, e := range res.Explanations {
						fmt.Fprintf(w, "  - %s\n", e)
					}
				}
				fmt.Fprintln(w, res.Footnote)
			})
		},
	}
	addChoiceFlags(cmd, prediction.TalesChoices(), map[string]*string{
		"key":     &a.Key,
		"dreams":  &a.Dreams,
		"mood":    &a.Mood,
		"chinese": &a.Chinese,
		"ring":    &a.Ring,
		"breasts": &a.Breasts,
	})
	return cmd
}

func newIdeaCmd(src random.Source, out printer) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "idea",
		Short: "Suggest a gender reveal idea",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				catalog := ideas.Catalog()
				return out(cmd, catalog, func(w io.Writer) {
					for i, idea := range catalog {
						fmt.Fprintf(w, "%2d. %s: %s\n", i+1, idea.Title, idea.Description)
					}
					fmt.Fprintln(w, ideas.SafetyNote)
				})
			}

			idea := ideas.NewSelector(src).Next()
			return out(cmd, idea, func(w io.Writer) {
				fmt.Fprintln(w, idea.Title)
				fmt.Fprintln(w, idea.Description)
				fmt.Fprintln(w, idea.Extra)
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every idea instead of drawing one")
	return cmd
}

// addChoiceFlags registers one string flag per question, listing its answers
// in the usage text
func addChoiceFlags(cmd *cobra.Command, choices []prediction.Choices, targets map[string]*string) {
	for _, ch := range choices {
		target, ok := targets[ch.Question]
		if !ok {
			continue
		}
		cmd.Flags().StringVar(target, ch.Question, "", strings.Join(ch.Answers, "|"))
	}
}

// userError turns an AppError into the message the page would show
func userError(err error) error {
	appErr := errors.ToAppError(err)
	if errors.IsIncompleteInput(appErr) {
		return fmt.Errorf("%s (missing: %s)", appErr.UserMessage(), strings.Join(appErr.Missing, ", "))
	}
	return fmt.Errorf("%s", appErr.UserMessage())
}
