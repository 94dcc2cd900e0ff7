package ideas

import (
	"testing"

	"github.com/ZanzyTHEbar/baby-gender-predictor/internal/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCatalog(t *testing.T) {
	all := Catalog()
	require.Len(t, all, 15)
	assert.Equal(t, 15, Len())

	titles := map[string]bool{}
	for _, idea := range all {
		assert.NotEmpty(t, idea.Title)
		assert.NotEmpty(t, idea.Description)
		assert.Equal(t, SafetyNote, idea.Extra)
		titles[idea.Title] = true
	}
	assert.Len(t, titles, 15, "titles should be unique")

	assert.Equal(t, "Balloon Box Surprise", all[0].Title)
	assert.Equal(t, "Pet Announcement", all[14].Title)
}

func TestCatalogIsImmutable(t *testing.T) {
	all := Catalog()
	all[0].Title = "changed"
	all[0].Extra = ""

	fresh := Catalog()
	assert.Equal(t, "Balloon Box Surprise", fresh[0].Title)
	assert.Equal(t, SafetyNote, fresh[0].Extra)
}

func TestSelectorUsesSource(t *testing.T) {
	sel := NewSelector(random.NewSequence(nil, []int{0, 14, 3, 3}))

	assert.Equal(t, "Balloon Box Surprise", sel.Next().Title)
	assert.Equal(t, "Pet Announcement", sel.Next().Title)
	assert.Equal(t, "Smoke Bomb Photography", sel.Next().Title)
	assert.Equal(t, "Smoke Bomb Photography", sel.Next().Title, "repeats are allowed")
}

func TestSelectorDrawsFromCatalog(t *testing.T) {
	sel := NewSelector(nil)
	all := Catalog()

	counts := make(map[string]int, len(all))
	for i := 0; i < 1000; i++ {
		idea := sel.Next()
		assert.Contains(t, all, idea)
		assert.Equal(t, SafetyNote, idea.Extra)
		counts[idea.Title]++
	}

	// with 1000 uniform draws over 15 entries a missing entry is vanishingly unlikely
	for _, idea := range all {
		assert.Positive(t, counts[idea.Title], "idea %q never selected", idea.Title)
	}
}

func TestSelectorReachesEveryEntry(t *testing.T) {
	ints := make([]int, Len())
	for i := range ints {
		ints[i] = i
	}
	sel := NewSelector(random.NewSequence(nil, ints))

	seen := map[string]bool{}
	for range ints {
		seen[sel.Next().Title] = true
	}
	assert.Len(t, seen, Len())
}
