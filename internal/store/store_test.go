package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stitch-tracker/internal/pattern"
	"stitch-tracker/internal/progress"
)

func testProgress(t *testing.T) *progress.Progress {
	t.Helper()
	pat := &pattern.Pattern{
		ID:      "chart-1",
		Width:   2,
		Height:  2,
		Palette: []pattern.PaletteEntry{{Name: "a"}},
		Targets: []int32{0, 0, pattern.NoTarget, 0},
	}
	pat.RecountTargets()
	require.NoError(t, pat.Validate())

	p := progress.New(pat)
	p.States[0] = progress.StateCorrect
	p.Placed[0] = 0
	return p
}

func TestNewCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	p := testProgress(t)
	require.NoError(t, s.Save(p))

	got, updatedAt, err := s.Load("chart-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Positive(t, updatedAt)
	assert.Equal(t, p.PatternID, got.PatternID)
	assert.Equal(t, p.States, got.States)
	assert.Equal(t, p.Placed, got.Placed)
	// Counters are rebound at load, not persisted.
	assert.Nil(t, got.Counts)
}

func TestLoadMissing(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	got, updatedAt, err := s.Load("never-saved")
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, updatedAt)
}

func TestLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.progress.json"), []byte("{not json"), 0o644))
	_, _, err = s.Load("bad")
	assert.Error(t, err)

	// Valid JSON, invalid snapshot shape.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "short.progress.json"),
		[]byte(`{"version":2,"pattern_id":"short","width":2,"height":2,"states":[0],"placed":[-1]}`), 0o644))
	_, _, err = s.Load("short")
	assert.Error(t, err)
}
