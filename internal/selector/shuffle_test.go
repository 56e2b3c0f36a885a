package selector

import (
	"testing"

	"github.com/abhisek/sprinklerprep/internal/bank"
)

func TestShuffle_PreservesMultiset(t *testing.T) {
	var qs []bank.Question
	for i := 1; i <= 50; i++ {
		qs = append(qs, bank.Question{ID: i})
	}

	got := Shuffle(qs)
	if len(got) != len(qs) {
		t.Fatalf("expected %d questions, got %d", len(qs), len(got))
	}

	seen := make(map[int]int)
	for _, q := range got {
		seen[q.ID]++
	}
	for _, q := range qs {
		if seen[q.ID] != 1 {
			t.Fatalf("question %d appears %d times", q.ID, seen[q.ID])
		}
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	qs := []bank.Question{{ID: 1}, {ID: 2}, {ID: 3}}
	orig := []int{1, 2, 3}

	// Shuffle repeatedly; the input slice must keep its order.
	for range 20 {
		Shuffle(qs)
	}
	for i, q := range qs {
		if q.ID != orig[i] {
			t.Fatal("input slice was mutated")
		}
	}
}

func TestShuffle_EmptyAndSingle(t *testing.T) {
	if got := Shuffle(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
	got := Shuffle([]bank.Question{{ID: 7}})
	if len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("unexpected single-element result: %v", got)
	}
}

func TestShuffleOptions_PreservesMultiset(t *testing.T) {
	opts := []string{"18 inches", "24 inches", "36 inches", "48 inches"}

	got := ShuffleOptions(opts)
	if len(got) != len(opts) {
		t.Fatalf("expected %d options, got %d", len(opts), len(got))
	}

	seen := make(map[string]int)
	for _, o := range got {
		seen[o]++
	}
	for _, o := range opts {
		if seen[o] != 1 {
			t.Fatalf("option %q appears %d times", o, seen[o])
		}
	}
}
