package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectStrategy_NoInputs(t *testing.T) {
	assert.Equal(t, StrategyBrowse, SelectStrategy("", nil))
}

func TestSelectStrategy_TextOnly(t *testing.T) {
	assert.Equal(t, StrategySearch, SelectStrategy("alien", nil))
}

func TestSelectStrategy_GenreOnly(t *testing.T) {
	g := GenreHorror
	assert.Equal(t, StrategyTagScan, SelectStrategy("", &g))
}

func TestSelectStrategy_GenreWinsOverText(t *testing.T) {
	g := GenreHorror
	assert.Equal(t, StrategyTagScan, SelectStrategy("alien", &g))
}

func TestQueryState_Spec(t *testing.T) {
	g := GenreComedy
	q := QueryState{
		RawText:     "spa",
		SettledText: "space",
		Genre:       &g,
		Page:        3,
		PageSize:    12,
	}

	spec := q.Spec()

	assert.Equal(t, StrategyTagScan, spec.Strategy)
	assert.Equal(t, "space", spec.Text, "spec carries settled text, never raw text")
	assert.Equal(t, &g, spec.Genre)
	assert.Equal(t, 3, spec.Page)
	assert.Equal(t, 12, spec.PageSize)
}

func TestFetchStrategy_String(t *testing.T) {
	assert.Equal(t, "browse", StrategyBrowse.String())
	assert.Equal(t, "search", StrategySearch.String())
	assert.Equal(t, "tagscan", StrategyTagScan.String())
}
