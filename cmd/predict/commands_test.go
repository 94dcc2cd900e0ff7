package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/ideas"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/prediction"
	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/random"
)

func run(t *testing.T, src random.Source, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(src)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestChartCommand(t *testing.T) {
	out, err := run(t, nil, "chart", "--age", "24", "--month", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Boy! 👦")
	assert.Contains(t, out, "you're likely having a boy!")

	_, err = run(t, nil, "chart", "--age", "60", "--month", "2")
	require.Error(t, err)
	assert.Equal(t, "Please enter a valid mother's age (18-50).", err.Error())

	_, err = run(t, nil, "chart", "--age", "30")
	require.Error(t, err)
	assert.Equal(t, "Please select a valid conception month.", err.Error())
}

func TestChartCommandJSON(t *testing.T) {
	out, err := run(t, nil, "chart", "--age", "25", "--month", "2", "--json")
	require.NoError(t, err)

	var res prediction.ChartResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, prediction.Girl, res.Gender)
}

func TestHeartbeatCommand(t *testing.T) {
	src := random.NewSequence([]float64{0.5}, nil)

	out, err := run(t, src, "heartbeat",
		"--heartrate", "slow", "--sickness", "mild", "--cravings", "salty", "--carrying", "low", "--skin", "better")
	require.NoError(t, err)
	assert.Contains(t, out, "100% of your answers suggest a boy.")

	_, err = run(t, src, "heartbeat", "--heartrate", "slow", "--skin", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Please answer all questions before seeing your results.")
	assert.Contains(t, err.Error(), "sickness, cravings, carrying, skin")
}

func TestTalesCommand(t *testing.T) {
	out, err := run(t, nil, "tales",
		"--key", "round", "--dreams", "girl", "--mood", "mellow", "--chinese", "boy", "--ring", "circles", "--breasts", "right")
	require.NoError(t, err)
	assert.Contains(t, out, "It's a tie!")
	assert.NotContains(t, out, "How we determined this:")

	out, err = run(t, nil, "tales",
		"--key", "round", "--dreams", "neither", "--mood", "moody", "--chinese", "unknown", "--ring", "notried", "--breasts", "equal")
	require.NoError(t, err)
	assert.Contains(t, out, "(100% girl / 0% boy)")
	assert.Contains(t, out, "How we determined this:")
}

func TestIdeaCommand(t *testing.T) {
	out, err := run(t, random.NewSequence(nil, []int{2}), "idea")
	require.NoError(t, err)
	assert.Contains(t, out, ideas.Catalog()[2].Title)
	assert.Contains(t, out, ideas.SafetyNote)

	out, err = run(t, nil, "idea", "--all", "--json")
	require.NoError(t, err)
	var all []ideas.RevealIdea
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	assert.Len(t, all, ideas.Len())
}
