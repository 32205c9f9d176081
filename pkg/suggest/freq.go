package suggest

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// FrequencyReader is the read side of a frequency table, as used by Rank.
type FrequencyReader interface {
	Get(sentence string) (int, bool)
}

// Entry is a single sentence and its hot degree.
type Entry struct {
	Sentence  string
	Frequency int
}

// FrequencyTable maps every recorded sentence to the number of times it was submitted.
// Entries are never removed.
type FrequencyTable struct {
	trie  *patricia.Trie
	count int
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{trie: patricia.NewTrie()}
}

// Get returns the frequency of sentence and whether it is present.
func (ft *FrequencyTable) Get(sentence string) (int, bool) {
	item := ft.trie.Get(patricia.Prefix(sentence))
	if item == nil {
		return 0, false
	}
	freq, ok := item.(int)
	if !ok {
		log.Errorf("Unknown item type: %T for sentence %s", item, sentence)
		return 0, false
	}
	return freq, true
}

// Set overwrites the frequency of sentence.
func (ft *FrequencyTable) Set(sentence string, frequency int) {
	if ft.trie.Insert(patricia.Prefix(sentence), frequency) {
		ft.count++
		return
	}
	ft.trie.Set(patricia.Prefix(sentence), frequency)
}

// Increment adds one to the frequency of sentence, creating it at 1 when absent,
// and returns the new value.
func (ft *FrequencyTable) Increment(sentence string) int {
	freq, _ := ft.Get(sentence)
	freq++
	ft.Set(sentence, freq)
	return freq
}

// Len returns the number of distinct sentences.
func (ft *FrequencyTable) Len() int {
	return ft.count
}

// Entries returns every sentence with its frequency, ordered by sentence.
func (ft *FrequencyTable) Entries() []Entry {
	entries := make([]Entry, 0, ft.count)
	err := ft.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		freq, ok := item.(int)
		if !ok {
			log.Errorf("Unknown item type: %T for sentence %s", item, p)
			return nil
		}
		entries = append(entries, Entry{Sentence: string(p), Frequency: freq})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting frequency table: %v", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Sentence < entries[j].Sentence
	})
	return entries
}
