package mutation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solrange/fitsim/internal/domain/mutation"
)

func newStagedEditor(persisted map[int64]float64) *mutation.Editor {
	m := mutation.NewMutation()
	m.SelectMutaplasmid(47702, boundsTable())
	return mutation.NewEditorWithDelay(m, persisted, testDelay, nil)
}

func TestEditor_CommitSetsValue(t *testing.T) {
	e := newStagedEditor(nil)
	defer e.Close()

	require.NoError(t, e.Commit(6, "10"))

	overrides, changed := e.Result()
	assert.True(t, changed)
	require.Contains(t, overrides, int64(6))
	assert.InDelta(t, 1.10, overrides[6], 1e-12)
	assert.True(t, e.Mutation().IsApplied())
}

func TestEditor_CommitRejectsInvalidInput(t *testing.T) {
	e := newStagedEditor(nil)
	defer e.Close()

	var vErr *mutation.ValidationError

	err := e.Commit(6, "ten percent")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, mutation.KindInvalidFormat, vErr.Kind)

	err = e.Commit(6, "50")
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, mutation.KindOutOfRange, vErr.Kind)

	assert.Equal(t, mutation.StateStaged, e.Mutation().State(), "failed commits leave the overlay untouched")
}

func TestEditor_NoOpEditReportsUnchanged(t *testing.T) {
	// Persisted overrides match what the editor will commit: changed must be
	// false so no recomputation is triggered downstream.
	e := newStagedEditor(map[int64]float64{6: mutation.PercentToMultiplier(10)})
	defer e.Close()

	require.NoError(t, e.Commit(6, "10"))

	_, changed := e.Result()
	assert.False(t, changed)
}

func TestEditor_DifferentValueReportsChanged(t *testing.T) {
	e := newStagedEditor(map[int64]float64{6: mutation.PercentToMultiplier(10)})
	defer e.Close()

	require.NoError(t, e.Commit(6, "12"))

	_, changed := e.Result()
	assert.True(t, changed)
}

func TestEditor_ClearingPersistedValueReportsChanged(t *testing.T) {
	e := newStagedEditor(map[int64]float64{6: 1.1})
	defer e.Close()

	require.NoError(t, e.Commit(6, "10"))
	e.ClearValue(6)

	overrides, changed := e.Result()
	assert.Empty(t, overrides)
	assert.True(t, changed, "persisted store still holds a value")
}

func TestEditor_ValidateLive_ReportsAfterDebounce(t *testing.T) {
	e := newStagedEditor(nil)
	defer e.Close()

	results := make(chan mutation.LiveResult, 1)
	e.ValidateLive(6, "15", func(r mutation.LiveResult) { results <- r })

	select {
	case r := <-results:
		require.NoError(t, r.Err)
		assert.Equal(t, int64(6), r.AttributeID)
		assert.InDelta(t, 1.15, r.Multiplier, 1e-12)
	case <-time.After(time.Second):
		t.Fatal("live validation never fired")
	}

	// Live validation never commits.
	assert.Equal(t, mutation.StateStaged, e.Mutation().State())
}

func TestEditor_ValidateLive_KeystrokesCancelPending(t *testing.T) {
	e := newStagedEditor(nil)
	defer e.Close()

	results := make(chan mutation.LiveResult, 4)
	report := func(r mutation.LiveResult) { results <- r }

	// Simulated typing of "-10": only the final text validates.
	e.ValidateLive(6, "-", report)
	e.ValidateLive(6, "-1", report)
	e.ValidateLive(6, "-10", report)

	select {
	case r := <-results:
		require.NoError(t, r.Err)
		assert.InDelta(t, 0.90, r.Multiplier, 1e-12)
	case <-time.After(time.Second):
		t.Fatal("live validation never fired")
	}

	settle()
	assert.Empty(t, results, "intermediate keystrokes must not report")
}

func TestEditor_ValidateLive_UnknownAttribute(t *testing.T) {
	e := newStagedEditor(nil)
	defer e.Close()

	results := make(chan mutation.LiveResult, 1)
	e.ValidateLive(999, "10", func(r mutation.LiveResult) { results <- r })

	select {
	case r := <-results:
		require.Error(t, r.Err)
	case <-time.After(time.Second):
		t.Fatal("live validation never fired")
	}
}

func TestEditor_CloseSuppressesPendingValidation(t *testing.T) {
	e := newStagedEditor(nil)

	results := make(chan mutation.LiveResult, 1)
	e.ValidateLive(6, "10", func(r mutation.LiveResult) { results <- r })
	e.Close()

	settle()
	assert.Empty(t, results)
}
