package progress

import (
	"fmt"
	"time"

	"stitch-tracker/internal/pattern"
)

// Snapshot is the persisted/transferred form of a Progress. The record is
// versioned: migration from older layouts happens once at load, never ad hoc
// in the mutation logic.
type Snapshot struct {
	Version   int    `json:"version"`
	PatternID string `json:"pattern_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`

	// States is the tri-state cell array (v2+).
	States []uint8 `json:"states,omitempty"`

	// Stitched is the legacy v1 boolean cell array.
	Stitched []bool `json:"stitched,omitempty"`

	// Placed is the palette index placed at each cell, -1 where none.
	Placed []int32 `json:"placed"`

	// UpdatedAt is the snapshot time in Unix milliseconds. Zero means
	// unknown and reconciliation treats it as the oldest possible copy.
	UpdatedAt int64 `json:"updated_at,omitempty"`
}

// SnapshotVersion is the current snapshot layout.
const SnapshotVersion = 2

// Snapshot captures the progress for persistence.
func (p *Progress) Snapshot(now time.Time) *Snapshot {
	s := &Snapshot{
		Version:   SnapshotVersion,
		PatternID: p.PatternID,
		Width:     p.Width,
		Height:    p.Height,
		States:    make([]uint8, len(p.States)),
		Placed:    append([]int32(nil), p.Placed...),
		UpdatedAt: now.UnixMilli(),
	}
	for i, st := range p.States {
		s.States[i] = uint8(st)
	}
	return s
}

// FromSnapshot restores a Progress from a snapshot, migrating legacy
// layouts. The result carries no palette counters; callers bind it to a
// pattern with RecomputeCounts once reconciliation has picked it.
func FromSnapshot(s *Snapshot) (*Progress, error) {
	if s == nil {
		return nil, fmt.Errorf("nil snapshot")
	}
	n := s.Width * s.Height
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("snapshot %s: invalid dimensions %dx%d", s.PatternID, s.Width, s.Height)
	}
	if len(s.Placed) != n {
		return nil, fmt.Errorf("snapshot %s: %d placed entries for %d cells", s.PatternID, len(s.Placed), n)
	}

	p := &Progress{
		PatternID: s.PatternID,
		Width:     s.Width,
		Height:    s.Height,
		States:    make([]StitchState, n),
		Placed:    append([]int32(nil), s.Placed...),
	}

	switch s.Version {
	case 1:
		p.Legacy = true
		// Legacy layout knew only "stitched or not". A stitched cell whose
		// placed colour is recorded becomes Correct or Wrong when rebound to
		// a pattern; here we can only distinguish stitched from empty, so
		// migrate stitched cells to Correct and let RecomputeCounts and the
		// reconciler's placed-colour fallback settle correctness.
		if len(s.Stitched) != n {
			return nil, fmt.Errorf("snapshot %s: %d stitched entries for %d cells", s.PatternID, len(s.Stitched), n)
		}
		for i, st := range s.Stitched {
			if st {
				p.States[i] = StateCorrect
			} else {
				p.Placed[i] = pattern.NoTarget
			}
		}
	case 2:
		if len(s.States) != n {
			return nil, fmt.Errorf("snapshot %s: %d states for %d cells", s.PatternID, len(s.States), n)
		}
		for i, st := range s.States {
			switch StitchState(st) {
			case StateNone, StateCorrect, StateWrong:
				p.States[i] = StitchState(st)
			default:
				return nil, fmt.Errorf("snapshot %s: cell %d has unknown state %d", s.PatternID, i, st)
			}
			if p.States[i] == StateNone {
				p.Placed[i] = pattern.NoTarget
			}
		}
	default:
		return nil, fmt.Errorf("snapshot %s: unsupported version %d", s.PatternID, s.Version)
	}

	return p, nil
}

// MigrateV1 reclassifies migrated legacy cells against a pattern: a stitched
// cell whose recorded colour disagrees with the target becomes Wrong. Called
// once at load for v1 snapshots, before the progress is used.
func (p *Progress) MigrateV1(pat *pattern.Pattern) {
	p.Legacy = false
	if p.CellCount() != pat.CellCount() {
		return
	}
	for i, st := range p.States {
		if st != StateCorrect {
			continue
		}
		placed := p.Placed[i]
		if placed == pattern.NoTarget || placed != pat.Targets[i] {
			p.States[i] = StateWrong
		}
		if pat.Targets[i] == pattern.NoTarget {
			// No prescribed colour here; the legacy record was noise.
			p.States[i] = StateNone
			p.Placed[i] = pattern.NoTarget
		}
	}
}
