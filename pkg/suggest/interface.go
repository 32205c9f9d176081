// Package suggest is the core: a prefix trie over recorded sentences, a frequency
// table of how often each was submitted, and the per-keystroke ranking query.
package suggest

// Autocompleter defines what the frontends (IPC server, CLI, TUI) need from a session.
type Autocompleter interface {
	// Feed consumes one typed character and returns the current top suggestions
	Feed(c rune) ([]string, error)

	// Suggest ranks the sentences sharing prefix without touching the buffer
	Suggest(prefix string) []Suggestion

	// Frequency returns the hot degree of a recorded sentence
	Frequency(sentence string) (int, bool)

	// Buffer returns the characters typed since the last terminator
	Buffer() string

	// Terminator returns the end-of-sentence character
	Terminator() rune

	// History returns the frequency table ordered by sentence
	History() []Entry

	// Stats returns counters about the loaded sentences
	Stats() map[string]int
}
