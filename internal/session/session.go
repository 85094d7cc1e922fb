// Package session owns the live pattern/progress pair and is the surface
// the UI talks to: loading a pattern reconciles local and remote progress,
// and every mutation flows through to the engine with events fanned out to
// listeners.
//
// A Session is single-threaded by contract. All calls must come from one
// logical thread; there is no internal locking.
package session

import (
	"context"

	"github.com/sirupsen/logrus"

	"stitch-tracker/internal/engine"
	"stitch-tracker/internal/index"
	"stitch-tracker/internal/pattern"
	"stitch-tracker/internal/progress"
	"stitch-tracker/internal/reconcile"
	"stitch-tracker/pkg/grid"
)

// EventType identifies session events.
type EventType int

const (
	EventPatternLoaded EventType = iota
	EventStitchPlaced
	EventStitchRemoved
	EventRegionFilled
	EventPatternCompleted
)

// Listener is called when an event occurs.
type Listener func(data interface{})

// Store is the local persistence collaborator.
type Store interface {
	// Load returns the saved progress and its snapshot time in Unix
	// milliseconds; (nil, 0, nil) when none exists.
	Load(patternID string) (*progress.Progress, int64, error)

	// SaveAsync persists the progress without blocking the caller.
	SaveAsync(p *progress.Progress)
}

// RemoteSource is the remote snapshot collaborator. May be nil.
type RemoteSource interface {
	LoadLatest(ctx context.Context, patternID string) (*progress.Progress, int64, error)
}

// Session holds the loaded pattern, its reconciled progress, and the engine
// mutating them.
type Session struct {
	Pattern  *pattern.Pattern
	Progress *progress.Progress

	eng       *engine.Engine
	store     Store
	remote    RemoteSource
	listeners map[EventType][]Listener
}

// New creates an empty session. remote may be nil when no sync service is
// configured.
func New(store Store, remote RemoteSource) *Session {
	return &Session{
		store:     store,
		remote:    remote,
		listeners: make(map[EventType][]Listener),
	}
}

// On registers an event listener.
func (s *Session) On(event EventType, l Listener) {
	s.listeners[event] = append(s.listeners[event], l)
}

func (s *Session) emit(event EventType, data interface{}) {
	for _, l := range s.listeners[event] {
		l(data)
	}
}

// LoadPattern loads the pattern, reconciles the local and remote progress
// copies, and builds the unstitched index. Any previously loaded pattern is
// replaced wholesale. Returns whether the chosen progress is already
// complete.
func (s *Session) LoadPattern(ctx context.Context, pat *pattern.Pattern) (bool, error) {
	if err := pat.Validate(); err != nil {
		return false, err
	}

	local := reconcile.Source{}
	if s.store != nil {
		p, updated, err := s.store.Load(pat.ID)
		if err != nil {
			logrus.WithError(err).WithField("pattern", pat.ID).
				Warn("local progress unreadable, starting without it")
		} else {
			local = reconcile.Source{Progress: p, UpdatedAt: updated}
		}
	}

	remote := reconcile.Source{IsRemote: true}
	if s.remote != nil {
		p, updated, err := s.remote.LoadLatest(ctx, pat.ID)
		if err != nil {
			logrus.WithError(err).WithField("pattern", pat.ID).
				Warn("remote progress unavailable")
		} else {
			remote = reconcile.Source{Progress: p, UpdatedAt: updated, IsRemote: true}
		}
	}

	migrate(pat, local.Progress)
	migrate(pat, remote.Progress)

	chosen := reconcile.ChooseBest(pat, local, remote)
	if chosen == nil {
		chosen = progress.New(pat)
	} else if err := chosen.RecomputeCounts(pat); err != nil {
		// Valid candidates always match the pattern's shape; treat a
		// failure here as no usable progress at all.
		logrus.WithError(err).Warn("discarding unusable progress")
		chosen = progress.New(pat)
	}

	s.Pattern = pat
	s.Progress = chosen
	s.eng = engine.New(pat, chosen, index.Build(pat, chosen), s.store)

	s.emit(EventPatternLoaded, pat.ID)
	return s.eng.Complete(), nil
}

func migrate(pat *pattern.Pattern, p *progress.Progress) {
	if p != nil && p.Legacy {
		p.MigrateV1(pat)
	}
}

// PlaceStitch places the selected colour at (col, row).
func (s *Session) PlaceStitch(col, row, selected int) engine.PlaceResult {
	if s.eng == nil {
		return engine.PlaceResult{}
	}
	res := s.eng.PlaceStitch(col, row, selected)
	if res.Placed {
		s.emit(EventStitchPlaced, grid.Coord{Col: col, Row: row})
	}
	if res.JustCompleted {
		s.emit(EventPatternCompleted, s.Pattern.ID)
	}
	return res
}

// RemoveWrongStitch undoes a wrong placement at (col, row).
func (s *Session) RemoveWrongStitch(col, row int) bool {
	if s.eng == nil {
		return false
	}
	removed := s.eng.RemoveWrongStitch(col, row)
	if removed {
		s.emit(EventStitchRemoved, grid.Coord{Col: col, Row: row})
	}
	return removed
}

// FloodFillStitch fills the connected unstitched region at (col, row) with
// the selected colour.
func (s *Session) FloodFillStitch(col, row, selected int) engine.FillResult {
	if s.eng == nil {
		return engine.FillResult{}
	}
	res := s.eng.FloodFillStitch(col, row, selected)
	if res.Cells > 0 {
		s.emit(EventRegionFilled, res.Cells)
	}
	if res.JustCompleted {
		s.emit(EventPatternCompleted, s.Pattern.ID)
	}
	return res
}

// StitchStateAt returns the stitch state at (col, row).
func (s *Session) StitchStateAt(col, row int) progress.StitchState {
	if s.eng == nil {
		return progress.StateNone
	}
	return s.eng.StateAt(col, row)
}

// TargetColorAt returns the target palette index at (col, row), or
// pattern.NoTarget.
func (s *Session) TargetColorAt(col, row int) int32 {
	if s.eng == nil {
		return pattern.NoTarget
	}
	return s.eng.TargetAt(col, row)
}

// FindNearestIncomplete returns the incomplete cell of the colour nearest
// to (fromCol, fromRow).
func (s *Session) FindNearestIncomplete(color, fromCol, fromRow int) (grid.Coord, bool) {
	if s.eng == nil {
		return grid.Coord{}, false
	}
	return s.eng.FindNearestIncomplete(color, fromCol, fromRow)
}

// IncompleteCount returns the colour's incomplete target count.
func (s *Session) IncompleteCount(color int) int {
	if s.eng == nil {
		return 0
	}
	return s.eng.IncompleteCount(color)
}

// TotalWrongCount returns the wrong placements summed over all colours.
func (s *Session) TotalWrongCount() int {
	if s.eng == nil {
		return 0
	}
	return s.eng.TotalWrongCount()
}

// Complete reports whether the loaded pattern is fully stitched.
func (s *Session) Complete() bool {
	return s.eng != nil && s.eng.Complete()
}
