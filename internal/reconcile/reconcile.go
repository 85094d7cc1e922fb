// Package reconcile scores progress candidates against a pattern and picks
// one authoritative copy when a local and a remote snapshot both claim to
// represent the same chart.
package reconcile

import (
	"stitch-tracker/internal/pattern"
	"stitch-tracker/internal/progress"
)

// Score weights. Wrong placements cost more than correct ones earn: a wrong
// stitch is work that must be undone before progress can continue, not
// merely absent progress.
const (
	correctWeight = 2
	wrongWeight   = 3
)

// Evaluation is the per-candidate classification of every cell.
type Evaluation struct {
	Correct    int
	Wrong      int
	Unstitched int
	Score      int
}

// Source is one progress candidate with its provenance.
type Source struct {
	Progress *progress.Progress

	// UpdatedAt is the snapshot time in Unix milliseconds; zero (unknown)
	// is treated as the oldest possible copy.
	UpdatedAt int64

	IsRemote bool
}

// Evaluate scans every cell of the candidate once and scores it. A candidate
// whose arrays disagree with the pattern's cell count is scored as fully
// unstitched rather than indexed out of bounds.
func Evaluate(pat *pattern.Pattern, prog *progress.Progress) Evaluation {
	n := pat.CellCount()
	if prog == nil || len(pat.Targets) != n || len(prog.States) != n || len(prog.Placed) != n {
		return Evaluation{Unstitched: n}
	}

	var ev Evaluation
	for i, st := range prog.States {
		switch st {
		case progress.StateNone:
			ev.Unstitched++
		case progress.StateCorrect:
			ev.Correct++
		case progress.StateWrong:
			ev.Wrong++
		default:
			// Legacy state that does not map cleanly: derive correctness by
			// comparing the placed colour to the target directly.
			placed := prog.Placed[i]
			switch {
			case placed == pattern.NoTarget:
				ev.Unstitched++
			case placed == pat.Targets[i]:
				ev.Correct++
			default:
				ev.Wrong++
			}
		}
	}
	ev.Score = correctWeight*ev.Correct - wrongWeight*ev.Wrong
	return ev
}

// Compare orders two evaluated sources; negative means a wins. Applied in
// strict priority: higher score, then more correct, then fewer wrong, then
// newer UpdatedAt, then the remote-flagged candidate. Zero means the
// candidates are indistinguishable and the caller's default applies.
func Compare(a, b Source, ea, eb Evaluation) int {
	if ea.Score != eb.Score {
		return eb.Score - ea.Score
	}
	if ea.Correct != eb.Correct {
		return eb.Correct - ea.Correct
	}
	if ea.Wrong != eb.Wrong {
		return ea.Wrong - eb.Wrong
	}
	if a.UpdatedAt != b.UpdatedAt {
		if a.UpdatedAt > b.UpdatedAt {
			return -1
		}
		return 1
	}
	if a.IsRemote != b.IsRemote {
		if a.IsRemote {
			return -1
		}
		return 1
	}
	return 0
}

// valid reports whether the candidate may represent the pattern at all.
func valid(pat *pattern.Pattern, prog *progress.Progress) bool {
	return prog != nil &&
		prog.PatternID == pat.ID &&
		len(prog.States) == pat.CellCount() &&
		len(prog.Placed) == pat.CellCount()
}

// ChooseBest picks the authoritative progress from up to two candidates.
// Exactly one valid candidate wins by default; with both valid the scored
// comparison decides, and a full tie goes to the second-named (remote)
// candidate. Returns nil when neither candidate is valid.
func ChooseBest(pat *pattern.Pattern, local, remote Source) *progress.Progress {
	lv := valid(pat, local.Progress)
	rv := valid(pat, remote.Progress)

	switch {
	case lv && !rv:
		return local.Progress
	case rv && !lv:
		return remote.Progress
	case !lv && !rv:
		return nil
	}

	el := Evaluate(pat, local.Progress)
	er := Evaluate(pat, remote.Progress)
	if Compare(local, remote, el, er) < 0 {
		return local.Progress
	}
	return remote.Progress
}
