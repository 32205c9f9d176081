package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/sentserve/internal/logger"
	"github.com/bastiangx/sentserve/internal/utils"
	"github.com/bastiangx/sentserve/pkg/config"
	"github.com/bastiangx/sentserve/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for sentence completions
type Server struct {
	session      suggest.Autocompleter
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	writer       *bufio.Writer
	logger       *log.Logger
	requestCount int
}

// NewServer creates a new completion server using stdin/stdout for IPC
func NewServer(session suggest.Autocompleter, cfg *config.Config) *Server {
	return NewServerWithIO(session, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams
func NewServerWithIO(session suggest.Autocompleter, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	writer := bufio.NewWriter(w)
	return &Server{
		session: session,
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		encoder: msgpack.NewEncoder(writer),
		writer:  writer,
		logger:  logger.New("ipc"),
	}
}

// Start announces readiness and serves requests until the input ends.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")

	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client closed input", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Reading request: %v", err)
			return err
		}

		s.requestCount++
		if err := s.handleRequest(raw); err != nil {
			return err
		}
	}
}

// handleRequest decodes one message and dispatches on its action
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	var request Request
	if err := msgpack.Unmarshal(raw, &request); err != nil {
		s.logger.Errorf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid msgpack request", 400)
	}

	switch request.Action {
	case "", ActionFeed:
		return s.handleFeed(request)
	case ActionStats:
		return s.send(StatsResponse{ID: request.ID, Stats: s.session.Stats()})
	case ActionHistory:
		return s.handleHistory(request)
	case ActionHealth:
		return s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		return s.sendError(request.ID, fmt.Sprintf("unknown action: %s", request.Action), 400)
	}
}

// handleFeed feeds a single character and replies with the ranked suggestions
func (s *Server) handleFeed(request Request) error {
	if utf8.RuneCountInString(request.Char) != 1 {
		s.logger.Debug("Rejected feed", "id", request.ID, "char", request.Char)
		return s.sendError(request.ID, "'c' must hold exactly one character", 400)
	}
	char, _ := utf8.DecodeRuneInString(request.Char)
	terminator := char == s.session.Terminator()

	if !terminator && !suggest.IsSentenceChar(char) {
		s.logger.Debugf("Rejected %s for '%s'", utils.DisplayRune(char), request.ID)
		return s.sendError(request.ID, fmt.Sprintf("%v: %q", suggest.ErrInvalidCharacter, char), 400)
	}
	if !terminator && len(s.session.Buffer()) >= s.config.Server.MaxBuffer {
		return s.sendError(request.ID,
			fmt.Sprintf("buffer exceeds maximum length of %d characters", s.config.Server.MaxBuffer), 413)
	}

	start := time.Now()
	suggestions, err := s.session.Feed(char)
	elapsed := time.Since(start)
	if err != nil {
		s.logger.Debugf("Feed %s failed: %v", utils.DisplayRune(char), err)
		return s.sendError(request.ID, err.Error(), 400)
	}

	s.logger.Debugf("Took [ %v ] for %s, buffer '%s'", elapsed, utils.DisplayRune(char), s.session.Buffer())
	return s.send(FeedResponse{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		Buffer:      s.session.Buffer(),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleHistory(request Request) error {
	history := s.session.History()
	entries := make([]HistoryEntry, len(history))
	for i, e := range history {
		entries[i] = HistoryEntry{Sentence: e.Sentence, Frequency: e.Frequency}
	}
	return s.send(HistoryResponse{ID: request.ID, Entries: entries, Count: len(entries)})
}

// send encodes a response and flushes it to the client
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return err
	}
	return s.writer.Flush()
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
