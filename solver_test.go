package main

import (
	"reflect"
	"testing"
)

func fb(word string, statuses ...string) GuessFeedback {
	return GuessFeedback{Word: word, Statuses: statuses}
}

// TestFilterEmptyLog checks that an empty guess log returns the full catalog.
func TestFilterEmptyLog(t *testing.T) {
	catalog := []string{"CRANE", "SLATE", "TRAIN"}
	got := filterCandidates(catalog, nil)
	if !reflect.DeepEqual(got, catalog) {
		t.Errorf("filterCandidates with empty log = %v, want full catalog %v", got, catalog)
	}
}

// TestFilterOverConstrained checks that contradictory feedback yields an
// empty set rather than an error.
func TestFilterOverConstrained(t *testing.T) {
	tests := []struct {
		name    string
		catalog []string
		guess   GuessFeedback
	}{
		{
			name:    "correct C plus absent R A N E",
			catalog: []string{"CRANE", "SLATE", "TRAIN"},
			guess:   fb("CRANE", StatusCorrect, StatusAbsent, StatusAbsent, StatusAbsent, StatusAbsent),
		},
		{
			name:    "correct T at 1 with absent S A E",
			catalog: []string{"STARE", "TRACE", "CRATE"},
			guess:   fb("STARE", StatusAbsent, StatusCorrect, StatusAbsent, StatusPresent, StatusAbsent),
		},
	}
	for _, tt := range tests {
		got := filterCandidates(tt.catalog, []GuessFeedback{tt.guess})
		if len(got) != 0 {
			t.Errorf("%s: got %v, want empty candidate set", tt.name, got)
		}
	}
}

// TestFilterStatuses checks each status rule against a small catalog.
func TestFilterStatuses(t *testing.T) {
	catalog := []string{"CRANE", "CRATE", "SLATE", "TRAIN", "GHOST"}
	tests := []struct {
		name  string
		guess GuessFeedback
		want  []string
	}{
		{
			// C pinned at 0; L, O, U, D excluded globally.
			name:  "correct pins the position",
			guess: fb("CLOUD", StatusCorrect, StatusAbsent, StatusAbsent, StatusAbsent, StatusAbsent),
			want:  []string{"CRANE", "CRATE"},
		},
		{
			// T somewhere but not first; O, N, I, C excluded globally.
			name:  "present requires the letter elsewhere",
			guess: fb("TONIC", StatusPresent, StatusAbsent, StatusAbsent, StatusAbsent, StatusAbsent),
			want:  []string{"SLATE"},
		},
		{
			// No evidence for A anywhere, so the exclusion is global.
			name:  "absent without evidence excludes globally",
			guess: fb("AAAAA", StatusAbsent, StatusAbsent, StatusAbsent, StatusAbsent, StatusAbsent),
			want:  []string{"GHOST"},
		},
	}
	for _, tt := range tests {
		got := filterCandidates(catalog, []GuessFeedback{tt.guess})
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

// TestFilterRepeatedLetterSameGuess checks the asymmetric absent rule when
// one copy of a doubled letter is absent and another is present in the same
// guess: a word holding a single copy must survive.
func TestFilterRepeatedLetterSameGuess(t *testing.T) {
	catalog := []string{"ROBIN"}
	// ERROR against a single-R word: the first R comes back present, the
	// second absent. ROBIN must not be thrown away over the absent R.
	guess := fb("ERROR", StatusAbsent, StatusPresent, StatusAbsent, StatusPresent, StatusAbsent)
	got := filterCandidates(catalog, []GuessFeedback{guess})
	if !reflect.DeepEqual(got, []string{"ROBIN"}) {
		t.Errorf("repeated-letter guess filtered out ROBIN: got %v", got)
	}
}

// TestFilterAbsentWithPriorEvidence checks that evidence from another guess
// in the log downgrades a global exclusion to a positional one.
func TestFilterAbsentWithPriorEvidence(t *testing.T) {
	catalog := []string{"ROBIN"}
	withEvidence := fb("RADIO", StatusCorrect, StatusAbsent, StatusAbsent, StatusCorrect, StatusPresent)
	allAbsent := fb("WRECK", StatusAbsent, StatusAbsent, StatusAbsent, StatusAbsent, StatusAbsent)

	// Alone, the all-absent guess rules out every word containing R.
	if got := filterCandidates(catalog, []GuessFeedback{allAbsent}); len(got) != 0 {
		t.Errorf("without evidence, expected empty set, got %v", got)
	}

	// With R confirmed by the other guess, its absent becomes positional.
	got := filterCandidates(catalog, []GuessFeedback{withEvidence, allAbsent})
	if !reflect.DeepEqual(got, []string{"ROBIN"}) {
		t.Errorf("with prior evidence, got %v, want [ROBIN]", got)
	}
}

// TestFilterOrderIndependent checks that guess order does not change the result.
func TestFilterOrderIndependent(t *testing.T) {
	catalog := []string{"GRAPE", "BRAVE", "CRANE", "SLATE", "TRACE", "CRATE"}
	a := fb("SLATE", StatusAbsent, StatusAbsent, StatusCorrect, StatusAbsent, StatusCorrect)
	b := fb("CRANE", StatusAbsent, StatusCorrect, StatusCorrect, StatusAbsent, StatusCorrect)

	forward := filterCandidates(catalog, []GuessFeedback{a, b})
	backward := filterCandidates(catalog, []GuessFeedback{b, a})
	if !reflect.DeepEqual(forward, backward) {
		t.Errorf("filter order dependent: [a,b]=%v [b,a]=%v", forward, backward)
	}
	want := []string{"GRAPE", "BRAVE"}
	if !reflect.DeepEqual(forward, want) {
		t.Errorf("combined filter = %v, want %v", forward, want)
	}
}

// TestFilterIdempotent checks that re-filtering an already filtered set by
// the same log changes nothing.
func TestFilterIdempotent(t *testing.T) {
	catalog := []string{"CRANE", "CRATE", "SLATE", "TRACE", "TRAIN"}
	log := []GuessFeedback{
		fb("TRAIN", StatusPresent, StatusCorrect, StatusCorrect, StatusAbsent, StatusAbsent),
	}
	once := filterCandidates(catalog, log)
	twice := filterCandidates(once, log)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filter not idempotent: once=%v twice=%v", once, twice)
	}
	if !reflect.DeepEqual(once, []string{"CRATE"}) {
		t.Errorf("filter = %v, want [CRATE]", once)
	}
}

// TestFilterMonotonic checks that appending a guess never grows the set.
func TestFilterMonotonic(t *testing.T) {
	catalog := []string{"CRANE", "CRATE", "SLATE", "TRACE", "TRAIN", "STARE", "GHOST"}
	var log []GuessFeedback
	prev := len(filterCandidates(catalog, log))
	guesses := []GuessFeedback{
		fb("GHOST", StatusAbsent, StatusAbsent, StatusAbsent, StatusAbsent, StatusPresent),
		fb("TRAIN", StatusPresent, StatusPresent, StatusPresent, StatusAbsent, StatusAbsent),
		fb("CRATE", StatusCorrect, StatusCorrect, StatusCorrect, StatusCorrect, StatusCorrect),
	}
	for _, g := range guesses {
		log = append(log, g)
		n := len(filterCandidates(catalog, log))
		if n > prev {
			t.Errorf("candidate set grew after appending %s: %d -> %d", g.Word, prev, n)
		}
		prev = n
	}
}
