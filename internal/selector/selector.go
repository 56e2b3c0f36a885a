// Package selector turns the question bank into a study set: a mode
// picks the base subset, facet filters narrow it, and the result is
// shuffled (and truncated for Fast 10).
package selector

import (
	"strings"

	"github.com/abhisek/sprinklerprep/internal/bank"
)

// Mode selects the base subset of the bank before facet filters apply.
type Mode string

const (
	ModeAll          Mode = "ALL"
	ModeMNAmendments Mode = "MN_ONLY"
	ModeHydraulics   Mode = "HYDRAULICS"
	ModeNFPA25       Mode = "NFPA25"
	ModeFast10       Mode = "FAST_10"
	ModeMissed       Mode = "MISSED"
)

// Any is the sentinel value for facet filters that are not applied.
const Any = "Any"

// Fast10Count is the study set size for Fast 10 sessions.
const Fast10Count = 10

// Options are the selection parameters for one session.
type Options struct {
	Mode          Mode
	Difficulty    string // Any or a bank.Difficulty value
	SprinklerType string // Any or a bank.SprinklerType value
	Category      string // Any or an exact category
	MNOnly        bool   // restrict to MN amendment content regardless of mode
	Search        string // case-insensitive substring over question/topic/category/code text
	MissedIDs     []int  // consulted only for ModeMissed
}

// Select filters the bank per opts, shuffles the candidates, and
// truncates Fast 10 sets. An empty result is valid; callers decide
// whether to surface "no matches" and must not start empty sessions.
func Select(b *bank.Bank, opts Options) []bank.Question {
	out := Shuffle(Filter(b, opts))
	if opts.Mode == ModeFast10 && len(out) > Fast10Count {
		out = out[:Fast10Count]
	}
	return out
}

// Filter returns the candidate set without shuffling. For fixed inputs
// the result set is deterministic.
func Filter(b *bank.Bank, opts Options) []bank.Question {
	var out []bank.Question
	for _, q := range b.Questions() {
		if matchesMode(q, opts) && matchesFacets(q, opts) {
			out = append(out, q)
		}
	}
	return out
}

func matchesMode(q bank.Question, opts Options) bool {
	switch opts.Mode {
	case ModeMNAmendments:
		return isMNContent(q)
	case ModeHydraulics:
		return strings.Contains(q.Category, "Hydraulics") ||
			strings.Contains(q.Category, "Math") ||
			strings.Contains(q.Topic, "Calculations")
	case ModeNFPA25:
		return strings.Contains(q.Category, "NFPA 25") ||
			strings.Contains(q.Topic, "ITM")
	case ModeMissed:
		for _, id := range opts.MissedIDs {
			if q.ID == id {
				return true
			}
		}
		return false
	default:
		// ModeAll and ModeFast10 start from the whole bank.
		return true
	}
}

func matchesFacets(q bank.Question, opts Options) bool {
	if opts.Difficulty != "" && opts.Difficulty != Any && string(q.Difficulty) != opts.Difficulty {
		return false
	}
	if opts.SprinklerType != "" && opts.SprinklerType != Any && string(q.SprinklerType) != opts.SprinklerType {
		return false
	}
	if opts.Category != "" && opts.Category != Any && q.Category != opts.Category {
		return false
	}
	if opts.MNOnly && !isMNContent(q) {
		return false
	}

	term := strings.ToLower(strings.TrimSpace(opts.Search))
	if term != "" {
		if !strings.Contains(strings.ToLower(q.Question), term) &&
			!strings.Contains(strings.ToLower(q.Topic), term) &&
			!strings.Contains(strings.ToLower(q.Category), term) &&
			!strings.Contains(strings.ToLower(q.CodeText), term) {
			return false
		}
	}
	return true
}

func isMNContent(q bank.Question) bool {
	return q.IsMNAmendment || strings.Contains(q.Category, "MN")
}
