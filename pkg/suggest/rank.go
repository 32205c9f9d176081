package suggest

import "sort"

// Suggestion is a ranked candidate sentence.
type Suggestion struct {
	Sentence  string
	Frequency int
}

// Rank orders candidates by frequency (highest first) and then by sentence in
// ascending byte order, keeping at most limit results.
// Sentences are distinct, so the order is total.
func Rank(candidates []string, freqs FrequencyReader, limit int) []Suggestion {
	suggestions := make([]Suggestion, 0, len(candidates))
	for _, sentence := range candidates {
		freq, _ := freqs.Get(sentence)
		suggestions = append(suggestions, Suggestion{Sentence: sentence, Frequency: freq})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Frequency != suggestions[j].Frequency {
			return suggestions[i].Frequency > suggestions[j].Frequency
		}
		return suggestions[i].Sentence < suggestions[j].Sentence
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// Sentences strips the frequencies from ranked suggestions.
func Sentences(suggestions []Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Sentence
	}
	return out
}
