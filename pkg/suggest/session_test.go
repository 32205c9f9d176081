package suggest

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func seededSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	s, err := New(
		[]string{"i enjoy programming", "ironman", "i enjoy learning", "island"},
		[]int{5, 2, 2, 3},
		opts...,
	)
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}
	return s
}

func feedAll(t *testing.T, s *Session, input string) [][]string {
	t.Helper()
	var out [][]string
	for _, r := range input {
		got, err := s.Feed(r)
		if err != nil {
			t.Fatalf("Feed(%q): %v", r, err)
		}
		out = append(out, got)
	}
	return out
}

func TestSessionFeedScenario(t *testing.T) {
	s := seededSession(t)

	steps := []struct {
		char     rune
		expected []string
	}{
		{'i', []string{"i enjoy programming", "island", "i enjoy learning"}},
		{' ', []string{"i enjoy programming", "i enjoy learning"}},
		{'a', []string{}},
		{'#', []string{}},
	}

	for _, step := range steps {
		got, err := s.Feed(step.char)
		if err != nil {
			t.Fatalf("Feed(%q): %v", step.char, err)
		}
		if !reflect.DeepEqual(got, step.expected) {
			t.Errorf("Feed(%q):\nExpected: %v\nGot:      %v", step.char, step.expected, got)
		}
	}

	if s.Buffer() != "" {
		t.Errorf("expected buffer reset, got %q", s.Buffer())
	}
	if freq, ok := s.Frequency("i a"); !ok || freq != 1 {
		t.Errorf("expected 'i a' recorded with frequency 1, got %d (present=%v)", freq, ok)
	}

	feedAll(t, s, "i a#")
	feedAll(t, s, "i a#")
	if freq, _ := s.Frequency("i a"); freq != 3 {
		t.Errorf("expected 'i a' frequency 3 after two replays, got %d", freq)
	}

	results := feedAll(t, s, "i ")
	expected := []string{"i enjoy programming", "i a", "i enjoy learning"}
	if !reflect.DeepEqual(results[1], expected) {
		t.Errorf("Expected: %v\nGot:      %v", expected, results[1])
	}
}

func TestSessionRecordIncrementsExisting(t *testing.T) {
	s := seededSession(t)
	nodes := s.Stats()["nodes"]

	feedAll(t, s, "island#")
	if freq, _ := s.Frequency("island"); freq != 4 {
		t.Errorf("expected island frequency 4, got %d", freq)
	}
	if s.Stats()["nodes"] != nodes {
		t.Errorf("re-recording an existing sentence grew the index")
	}

	// ironman climbs to 3 and pushes "i enjoy learning" out of the top three
	feedAll(t, s, "ironman#")
	got := feedAll(t, s, "i")[0]
	expected := []string{"i enjoy programming", "island", "ironman"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected: %v\nGot:      %v", expected, got)
	}
}

func TestSessionTerminatorAlwaysEmpty(t *testing.T) {
	s := seededSession(t)

	for _, input := range []string{"#", "i#", "island#", "zzz#", "##"} {
		results := feedAll(t, s, input)
		last := results[len(results)-1]
		if last == nil || len(last) != 0 {
			t.Errorf("input %q: terminator returned %v", input, last)
		}
	}
}

func TestSessionEmptySubmissionNotRecorded(t *testing.T) {
	s := seededSession(t)
	before := s.Stats()

	feedAll(t, s, "#")
	if _, ok := s.Frequency(""); ok {
		t.Error("empty sentence should not be recorded")
	}
	after := s.Stats()
	if after["sentences"] != before["sentences"] || after["submissions"] != before["submissions"] {
		t.Errorf("stats changed on empty submission: %v -> %v", before, after)
	}
}

func TestSessionInvalidCharacter(t *testing.T) {
	s := seededSession(t)
	feedAll(t, s, "i ")

	for _, r := range []rune{'I', '1', '.', '\n', 'é', '$'} {
		got, err := s.Feed(r)
		if !errors.Is(err, ErrInvalidCharacter) {
			t.Errorf("Feed(%q): expected ErrInvalidCharacter, got %v", r, err)
		}
		if got != nil {
			t.Errorf("Feed(%q): expected nil result, got %v", r, got)
		}
	}
	if s.Buffer() != "i " {
		t.Errorf("invalid input mutated the buffer: %q", s.Buffer())
	}

	// retry with a valid character continues where it left off
	got, err := s.Feed('e')
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"i enjoy programming", "i enjoy learning"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected: %v\nGot:      %v", expected, got)
	}
}

func TestNewInvalidSeedData(t *testing.T) {
	tests := []struct {
		name        string
		sentences   []string
		frequencies []int
	}{
		{"length mismatch", []string{"a", "b"}, []int{1}},
		{"zero frequency", []string{"a"}, []int{0}},
		{"negative frequency", []string{"a"}, []int{-3}},
		{"empty sentence", []string{""}, []int{1}},
		{"contains terminator", []string{"a#b"}, []int{1}},
		{"uppercase", []string{"Ironman"}, []int{1}},
		{"digit", []string{"r2d2"}, []int{1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := New(tc.sentences, tc.frequencies)
			if !errors.Is(err, ErrInvalidSeedData) {
				t.Fatalf("expected ErrInvalidSeedData, got %v", err)
			}
			if s != nil {
				t.Error("expected nil session on error")
			}
		})
	}
}

func TestNewEmptySeed(t *testing.T) {
	s, err := New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	got := feedAll(t, s, "a")[0]
	if len(got) != 0 {
		t.Errorf("expected no suggestions, got %v", got)
	}
	// the buffered "a" is recorded by the first terminator
	feedAll(t, s, "#abc#")
	got = feedAll(t, s, "a")[0]
	if !reflect.DeepEqual(got, []string{"a", "abc"}) {
		t.Errorf("expected [a abc], got %v", got)
	}
	for _, sentence := range []string{"a", "abc"} {
		if freq, _ := s.Frequency(sentence); freq != 1 {
			t.Errorf("expected %q frequency 1, got %d", sentence, freq)
		}
	}
}

func TestNewDuplicateSeedLastWriteWins(t *testing.T) {
	s, err := New([]string{"island", "island"}, []int{9, 2})
	if err != nil {
		t.Fatal(err)
	}
	if freq, _ := s.Frequency("island"); freq != 2 {
		t.Errorf("expected later frequency 2, got %d", freq)
	}
	if s.Stats()["sentences"] != 1 {
		t.Errorf("expected 1 sentence, got %d", s.Stats()["sentences"])
	}
}

func TestSessionOptions(t *testing.T) {
	s := seededSession(t, WithLimit(2), WithTerminator('.'))

	got := feedAll(t, s, "i")[0]
	expected := []string{"i enjoy programming", "island"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected: %v\nGot:      %v", expected, got)
	}

	if _, err := s.Feed('#'); !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("'#' should be invalid with a custom terminator, got %v", err)
	}
	feedAll(t, s, "x.")
	if _, ok := s.Frequency("ix"); !ok {
		t.Error("expected custom terminator to record 'ix'")
	}

	if _, err := New(nil, nil, WithLimit(0)); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption for limit 0, got %v", err)
	}
	if _, err := New(nil, nil, WithTerminator(' ')); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("expected ErrInvalidOption for space terminator, got %v", err)
	}
}

func TestSessionDeterminism(t *testing.T) {
	input := "i enjoy#i e#ir#i enjoy learning#i#is"
	first := feedAll(t, seededSession(t), input)
	second := feedAll(t, seededSession(t), input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("replays diverged:\n%v\n%v", first, second)
	}
}

func TestSessionResultInvariants(t *testing.T) {
	s := seededSession(t)
	input := "i a#i a#is#island#ir#i enjoy#i en#i enjoy programming#i"

	var buffer strings.Builder
	for _, r := range input {
		got, err := s.Feed(r)
		if err != nil {
			t.Fatal(err)
		}
		if r == '#' {
			buffer.Reset()
			continue
		}
		buffer.WriteRune(r)
		prefix := buffer.String()

		if len(got) > 3 {
			t.Fatalf("prefix %q returned %d results", prefix, len(got))
		}
		for i, sentence := range got {
			if !strings.HasPrefix(sentence, prefix) {
				t.Errorf("prefix %q returned non-matching %q", prefix, sentence)
			}
			if i == 0 {
				continue
			}
			prevFreq, _ := s.Frequency(got[i-1])
			freq, _ := s.Frequency(sentence)
			if prevFreq < freq || (prevFreq == freq && got[i-1] >= sentence) {
				t.Errorf("prefix %q: %q(%d) ranked before %q(%d)", prefix, got[i-1], prevFreq, sentence, freq)
			}
		}
	}
}

func TestSessionHistoryAndStats(t *testing.T) {
	s := seededSession(t)
	feedAll(t, s, "ab#ironman#")

	expected := []Entry{
		{Sentence: "ab", Frequency: 1},
		{Sentence: "i enjoy learning", Frequency: 2},
		{Sentence: "i enjoy programming", Frequency: 5},
		{Sentence: "ironman", Frequency: 3},
		{Sentence: "island", Frequency: 3},
	}
	if got := s.History(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected: %v\nGot:      %v", expected, got)
	}

	stats := s.Stats()
	if stats["sentences"] != 5 || stats["submissions"] != 2 || stats["limit"] != 3 {
		t.Errorf("unexpected stats: %v", stats)
	}
}

func TestSuggestDoesNotTouchBuffer(t *testing.T) {
	s := seededSession(t)
	feedAll(t, s, "is")

	got := s.Suggest("i ")
	if len(got) != 2 || got[0].Frequency != 5 {
		t.Errorf("unexpected suggestions: %v", got)
	}
	if s.Buffer() != "is" {
		t.Errorf("Suggest mutated buffer: %q", s.Buffer())
	}
}
