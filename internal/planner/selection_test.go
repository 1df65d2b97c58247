package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleIsItsOwnInverse(t *testing.T) {
	s := NewSelectionState()

	s.TogglePlanned("BIBL101")
	assert.True(t, s.Planned["BIBL101"])
	s.TogglePlanned("BIBL101")
	assert.False(t, s.Planned["BIBL101"])

	s.ToggleCompleted("BIBL101")
	assert.True(t, s.Completed["BIBL101"])
	s.ToggleCompleted("BIBL101")
	assert.False(t, s.Completed["BIBL101"])
}

func TestDoubleToggleRestoresProgress(t *testing.T) {
	req := bibleRequirement()
	s := NewSelectionState()

	before := RequirementProgress(req, s.Completed)
	s.ToggleCompleted("BIBL101")
	assert.Equal(t, 50, RequirementProgress(req, s.Completed))
	s.ToggleCompleted("BIBL101")
	assert.Equal(t, before, RequirementProgress(req, s.Completed))
}

func TestToggleOnNilMaps(t *testing.T) {
	// Selections restored from persisted client state may arrive with nil
	// maps; the first toggle must still work.
	var s SelectionState
	s.TogglePlanned("SW501")
	assert.True(t, s.Planned["SW501"])
}

func TestRemoveFromPlanKeepsKey(t *testing.T) {
	s := NewSelectionState()
	s.TogglePlanned("THEO201")
	s.RemoveFromPlan("THEO201")

	val, ok := s.Planned["THEO201"]
	assert.True(t, ok)
	assert.False(t, val)

	// Removing an unknown code is legal and inert.
	s.RemoveFromPlan("GHOST999")
	assert.False(t, s.Planned["GHOST999"])
}

func TestCompletedCourseMayStayPlanned(t *testing.T) {
	s := NewSelectionState()
	s.TogglePlanned("BIBL101")
	s.ToggleCompleted("BIBL101")

	// Completing a course does not clear its planned flag.
	assert.True(t, s.Planned["BIBL101"])
	assert.True(t, s.Completed["BIBL101"])
}
