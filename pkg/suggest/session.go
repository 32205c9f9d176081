package suggest

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// DefaultTerminator closes the sentence being typed.
	DefaultTerminator = '#'
	// DefaultLimit is the number of suggestions returned per keystroke.
	DefaultLimit = 3
)

// Option configures a Session.
type Option func(*Session)

// WithTerminator replaces the end-of-sentence character.
func WithTerminator(r rune) Option {
	return func(s *Session) {
		s.terminator = r
	}
}

// WithLimit sets how many suggestions Feed returns.
func WithLimit(n int) Option {
	return func(s *Session) {
		s.limit = n
	}
}

// Session is a single autocomplete context: it owns the frequency table,
// the prefix index and the sentence being typed.
// A Session is not safe for concurrent use.
type Session struct {
	freqs       *FrequencyTable
	index       *PrefixIndex
	buffer      strings.Builder
	terminator  rune
	limit       int
	submissions int
}

// New builds a session from historical data. sentences and frequencies are parallel;
// a sentence appearing twice keeps the later frequency.
func New(sentences []string, frequencies []int, opts ...Option) (*Session, error) {
	s := &Session{
		freqs:      NewFrequencyTable(),
		index:      NewPrefixIndex(),
		terminator: DefaultTerminator,
		limit:      DefaultLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.limit < 1 {
		return nil, fmt.Errorf("%w: limit %d must be at least 1", ErrInvalidOption, s.limit)
	}
	if IsSentenceChar(s.terminator) {
		return nil, fmt.Errorf("%w: terminator %q collides with sentence characters", ErrInvalidOption, s.terminator)
	}

	if len(sentences) != len(frequencies) {
		return nil, fmt.Errorf("%w: %d sentences but %d frequencies", ErrInvalidSeedData, len(sentences), len(frequencies))
	}
	for i, sentence := range sentences {
		if err := s.validateSeed(sentence, frequencies[i]); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrInvalidSeedData, i, err)
		}
	}

	for i, sentence := range sentences {
		s.freqs.Set(sentence, frequencies[i])
		s.index.Insert(sentence)
	}

	log.Debugf("Seeded session with %d sentences (%d nodes)", s.index.Len(), s.index.Nodes())
	return s, nil
}

func (s *Session) validateSeed(sentence string, frequency int) error {
	if frequency <= 0 {
		return fmt.Errorf("frequency %d for %q is not positive", frequency, sentence)
	}
	if sentence == "" {
		return fmt.Errorf("empty sentence")
	}
	for _, r := range sentence {
		if r == s.terminator {
			return fmt.Errorf("sentence %q contains the terminator", sentence)
		}
		if !IsSentenceChar(r) {
			return fmt.Errorf("sentence %q contains %q", sentence, r)
		}
	}
	return nil
}

// IsSentenceChar reports whether r may appear inside a sentence: a lowercase
// ASCII letter or a space.
func IsSentenceChar(r rune) bool {
	return r == ' ' || (r >= 'a' && r <= 'z')
}

// Feed consumes one typed character.
// The terminator records the buffered sentence, resets the buffer and always
// returns an empty result. Any other character extends the buffer and returns
// the top ranked sentences sharing it as a prefix.
func (s *Session) Feed(c rune) ([]string, error) {
	if c == s.terminator {
		s.submit()
		return []string{}, nil
	}
	if !IsSentenceChar(c) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, c)
	}

	s.buffer.WriteRune(c)
	return Sentences(s.Suggest(s.buffer.String())), nil
}

func (s *Session) submit() {
	sentence := s.buffer.String()
	s.buffer.Reset()
	if sentence == "" {
		return
	}

	if _, ok := s.freqs.Get(sentence); !ok {
		s.index.Insert(sentence)
	}
	freq := s.freqs.Increment(sentence)
	s.submissions++
	log.Debugf("Recorded '%s' (freq: %d)", sentence, freq)
}

// Suggest ranks the sentences sharing prefix.
func (s *Session) Suggest(prefix string) []Suggestion {
	node := s.index.Resolve(prefix)
	if node == nil {
		return []Suggestion{}
	}
	return Rank(node.Sentences(), s.freqs, s.limit)
}

// Buffer returns the characters typed since the last terminator.
func (s *Session) Buffer() string {
	return s.buffer.String()
}

// Terminator returns the end-of-sentence character.
func (s *Session) Terminator() rune {
	return s.terminator
}

// Limit returns the maximum number of suggestions per keystroke.
func (s *Session) Limit() int {
	return s.limit
}

// Frequency returns the hot degree of sentence.
func (s *Session) Frequency(sentence string) (int, bool) {
	return s.freqs.Get(sentence)
}

// History returns every recorded sentence ordered by sentence.
func (s *Session) History() []Entry {
	return s.freqs.Entries()
}

// Stats returns counters about the session.
func (s *Session) Stats() map[string]int {
	return map[string]int{
		"sentences":   s.freqs.Len(),
		"nodes":       s.index.Nodes(),
		"submissions": s.submissions,
		"limit":       s.limit,
		"buffer":      len(s.buffer.String()),
	}
}
