/*
Package server implements msgpack IPC for sentence autocompletion.

The server owns exactly one session and feeds it one character per request,
in the order requests arrive on stdin. Responses are written to stdout.

# IPC

Each message is a msgpack map with an ID and an optional action. Feeding a
character is the default action:

	{"id": "req_001", "c": "i"}

The server responds with the top ranked sentences for the updated buffer:

	{"id": "req_001", "s": ["i enjoy programming", "island", "i enjoy learning"], "n": 3, "b": "i", "t": 12}

Feeding the terminator records the buffered sentence and always answers with
an empty list:

	{"id": "req_004", "c": "#"}
	{"id": "req_004", "s": [], "n": 0, "b": "", "t": 8}

Other actions inspect the session without changing it:

	{"id": "s1", "a": "stats"}
	{"id": "h1", "a": "history"}
	{"id": "p1", "a": "health"}

Failures carry a message and a status code; the session is left untouched:

	{"id": "req_005", "e": "invalid character: 'A'", "c": 400}

# Codes

400 is returned for malformed requests and characters outside a-z, space and
the terminator. 413 is returned when the buffer already holds server.max_buffer
characters; feeding the terminator still works and clears it.
*/
package server

const (
	ActionFeed    = "feed"
	ActionStats   = "stats"
	ActionHistory = "history"
	ActionHealth  = "health"
)

// Request is a single client message
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"a,omitempty"`
	Char   string `msgpack:"c,omitempty"`
}

// FeedResponse - suggestions after one character
type FeedResponse struct {
	ID          string   `msgpack:"id"`
	Suggestions []string `msgpack:"s"`
	Count       int      `msgpack:"n"`
	Buffer      string   `msgpack:"b"`
	TimeTaken   int64    `msgpack:"t"`
}

// HistoryEntry - one recorded sentence
type HistoryEntry struct {
	Sentence  string `msgpack:"w"`
	Frequency int    `msgpack:"f"`
}

// HistoryResponse - the frequency table ordered by sentence
type HistoryResponse struct {
	ID      string         `msgpack:"id"`
	Entries []HistoryEntry `msgpack:"h"`
	Count   int            `msgpack:"n"`
}

// StatsResponse - session counters
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// StatusResponse - readiness and health replies
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
