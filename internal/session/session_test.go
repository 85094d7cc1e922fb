package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stitch-tracker/internal/engine"
	"stitch-tracker/internal/pattern"
	"stitch-tracker/internal/progress"
)

type fakeStore struct {
	progress  *progress.Progress
	updatedAt int64
	loadErr   error
	saves     int
}

func (f *fakeStore) Load(patternID string) (*progress.Progress, int64, error) {
	if f.loadErr != nil {
		return nil, 0, f.loadErr
	}
	return f.progress, f.updatedAt, nil
}

func (f *fakeStore) SaveAsync(p *progress.Progress) {
	f.saves++
}

type fakeRemote struct {
	progress  *progress.Progress
	updatedAt int64
	err       error
}

func (f *fakeRemote) LoadLatest(ctx context.Context, patternID string) (*progress.Progress, int64, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.progress, f.updatedAt, nil
}

func testPattern(t *testing.T) *pattern.Pattern {
	t.Helper()
	pat := &pattern.Pattern{
		ID:      "chart",
		Width:   3,
		Height:  3,
		Palette: make([]pattern.PaletteEntry, 3),
		Targets: []int32{0, 0, 0, 1, 1, 1, 2, 2, 2},
	}
	pat.RecountTargets()
	require.NoError(t, pat.Validate())
	return pat
}

func TestLoadPatternFresh(t *testing.T) {
	pat := testPattern(t)
	s := New(&fakeStore{}, nil)

	var loaded []interface{}
	s.On(EventPatternLoaded, func(data interface{}) { loaded = append(loaded, data) })

	complete, err := s.LoadPattern(context.Background(), pat)
	require.NoError(t, err)
	assert.False(t, complete)
	assert.Equal(t, []interface{}{"chart"}, loaded)

	assert.Same(t, pat, s.Pattern)
	assert.Equal(t, 3, s.IncompleteCount(0))
	assert.Equal(t, progress.StateNone, s.StitchStateAt(0, 0))
	assert.Equal(t, int32(1), s.TargetColorAt(0, 1))
}

func TestLoadPatternRejectsInvalid(t *testing.T) {
	pat := testPattern(t)
	pat.Width = 0
	s := New(&fakeStore{}, nil)
	_, err := s.LoadPattern(context.Background(), pat)
	assert.Error(t, err)
	assert.Nil(t, s.Pattern)
}

func TestLoadPatternPrefersBetterCandidate(t *testing.T) {
	pat := testPattern(t)

	ahead := progress.New(pat)
	ahead.States[0] = progress.StateCorrect
	ahead.Placed[0] = 0
	ahead.States[1] = progress.StateCorrect
	ahead.Placed[1] = 0

	behind := progress.New(pat)
	behind.States[0] = progress.StateCorrect
	behind.Placed[0] = 0

	s := New(
		&fakeStore{progress: behind, updatedAt: 9999},
		&fakeRemote{progress: ahead, updatedAt: 1},
	)
	_, err := s.LoadPattern(context.Background(), pat)
	require.NoError(t, err)

	assert.Same(t, ahead, s.Progress)
	// Counters are rebound from the chosen copy's cells.
	assert.Equal(t, 2, s.Progress.Counts[0].Correct)
	assert.Equal(t, 1, s.Progress.Counts[0].Remaining)
	assert.Equal(t, 1, s.IncompleteCount(0))
}

func TestLoadPatternSurvivesFailedSources(t *testing.T) {
	pat := testPattern(t)
	s := New(
		&fakeStore{loadErr: errors.New("disk gone")},
		&fakeRemote{err: errors.New("offline")},
	)
	complete, err := s.LoadPattern(context.Background(), pat)
	require.NoError(t, err)
	assert.False(t, complete)
	assert.Equal(t, 3, s.IncompleteCount(0))
}

func TestLoadPatternIgnoresForeignProgress(t *testing.T) {
	pat := testPattern(t)
	foreign := progress.New(pat)
	foreign.PatternID = "someone-else"
	foreign.States[0] = progress.StateCorrect

	s := New(&fakeStore{progress: foreign, updatedAt: 5}, nil)
	_, err := s.LoadPattern(context.Background(), pat)
	require.NoError(t, err)
	assert.NotSame(t, foreign, s.Progress)
	assert.Equal(t, progress.StateNone, s.StitchStateAt(0, 0))
}

func TestLoadPatternMigratesLegacy(t *testing.T) {
	pat := testPattern(t)

	snap := &progress.Snapshot{
		Version:   1,
		PatternID: "chart",
		Width:     3,
		Height:    3,
		Stitched:  []bool{true, true, false, false, false, false, false, false, false},
		Placed:    []int32{0, 2, -1, -1, -1, -1, -1, -1, -1},
	}
	legacy, err := progress.FromSnapshot(snap)
	require.NoError(t, err)
	require.True(t, legacy.Legacy)

	s := New(&fakeStore{progress: legacy, updatedAt: 100}, nil)
	_, err = s.LoadPattern(context.Background(), pat)
	require.NoError(t, err)

	assert.False(t, s.Progress.Legacy)
	assert.Equal(t, progress.StateCorrect, s.StitchStateAt(0, 0))
	// Cell 1 held colour 2 against a colour-0 target: reclassified wrong.
	assert.Equal(t, progress.StateWrong, s.StitchStateAt(1, 0))
	assert.Equal(t, 1, s.TotalWrongCount())
}

func TestSessionEventsAndDelegation(t *testing.T) {
	pat := testPattern(t)
	store := &fakeStore{}
	s := New(store, nil)

	events := map[EventType]int{}
	for _, ev := range []EventType{EventStitchPlaced, EventStitchRemoved, EventRegionFilled, EventPatternCompleted} {
		ev := ev
		s.On(ev, func(interface{}) { events[ev]++ })
	}

	_, err := s.LoadPattern(context.Background(), pat)
	require.NoError(t, err)

	require.True(t, s.PlaceStitch(0, 0, 0).Correct)
	require.True(t, s.PlaceStitch(1, 0, 2).Placed) // wrong
	require.True(t, s.RemoveWrongStitch(1, 0))
	require.Positive(t, s.FloodFillStitch(0, 1, 1).Cells)

	// No-op mutations emit nothing.
	s.PlaceStitch(-1, 0, 0)
	s.RemoveWrongStitch(0, 0)
	s.FloodFillStitch(0, 0, 0)

	assert.Equal(t, 2, events[EventStitchPlaced])
	assert.Equal(t, 1, events[EventStitchRemoved])
	assert.Equal(t, 1, events[EventRegionFilled])
	assert.Equal(t, 0, events[EventPatternCompleted])
	assert.Equal(t, 4, store.saves)
}

func TestSessionCompletionEvent(t *testing.T) {
	pat := testPattern(t)
	s := New(&fakeStore{}, nil)

	var completed int
	s.On(EventPatternCompleted, func(interface{}) { completed++ })

	_, err := s.LoadPattern(context.Background(), pat)
	require.NoError(t, err)

	s.FloodFillStitch(0, 0, 0)
	s.FloodFillStitch(0, 1, 1)
	assert.Zero(t, completed)
	res := s.FloodFillStitch(0, 2, 2)
	assert.True(t, res.JustCompleted)
	assert.Equal(t, 1, completed)
	assert.True(t, s.Complete())
}

func TestSessionBeforeLoadIsInert(t *testing.T) {
	s := New(&fakeStore{}, nil)

	assert.Equal(t, engine.PlaceResult{}, s.PlaceStitch(0, 0, 0))
	assert.False(t, s.RemoveWrongStitch(0, 0))
	assert.Equal(t, engine.FillResult{}, s.FloodFillStitch(0, 0, 0))
	assert.Equal(t, progress.StateNone, s.StitchStateAt(0, 0))
	assert.Equal(t, pattern.NoTarget, s.TargetColorAt(0, 0))
	_, ok := s.FindNearestIncomplete(0, 0, 0)
	assert.False(t, ok)
	assert.Zero(t, s.IncompleteCount(0))
	assert.Zero(t, s.TotalWrongCount())
	assert.False(t, s.Complete())
}
