// Package cli handles cmd line input and suggestions for DBG and testing the session
package cli

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/sentserve/internal/logger"
	"github.com/bastiangx/sentserve/internal/utils"
	"github.com/bastiangx/sentserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var sentenceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))

// InputHandler reads lines and feeds them to the session one character at a time,
// printing the suggestions after every keystroke.
// Lines starting with ':' are commands (:stats, :history, :quit).
type InputHandler struct {
	session       suggest.Autocompleter
	reader        io.Reader
	out           *log.Logger
	showFrequency bool
	requestCount  int
}

// NewInputHandler creates a handler printing to w.
func NewInputHandler(session suggest.Autocompleter, r io.Reader, w io.Writer, showFrequency bool) *InputHandler {
	return &InputHandler{
		session:       session,
		reader:        r,
		out:           logger.NewWithWriter(w, ""),
		showFrequency: showFrequency,
	}
}

// Start begins the interface loop. It returns nil when the input ends or :quit is typed.
func (h *InputHandler) Start() error {
	h.out.Print("SentServe CLI [BETA]")
	h.out.Printf("type a sentence, end it with '%c' to record it (:quit to exit):", h.session.Terminator())

	scanner := bufio.NewScanner(h.reader)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if h.handleCommand(line) {
				return nil
			}
			continue
		}
		h.handleInput(line)
	}
	return scanner.Err()
}

// handleCommand runs a ':' command and reports whether the loop should stop.
func (h *InputHandler) handleCommand(line string) bool {
	switch strings.TrimSpace(line) {
	case ":quit", ":q":
		return true
	case ":stats":
		stats := h.session.Stats()
		h.out.Print("Stats",
			"sentences", stats["sentences"],
			"nodes", stats["nodes"],
			"submissions", stats["submissions"],
			"limit", stats["limit"])
	case ":history":
		history := h.session.History()
		h.out.Printf("%d recorded sentences:", len(history))
		for _, e := range history {
			h.out.Printf("  %-40s (freq: %8s)", e.Sentence, utils.FormatWithCommas(e.Frequency))
		}
	default:
		h.out.Errorf("Unknown command: %s", line)
	}
	return false
}

// handleInput feeds each character of line in order.
func (h *InputHandler) handleInput(line string) {
	for _, char := range line {
		h.requestCount++
		start := time.Now()
		results, err := h.session.Feed(char)
		elapsed := time.Since(start)
		if err != nil {
			h.out.Errorf("Skipped %s: %v", utils.DisplayRune(char), err)
			continue
		}
		log.Debugf("Took [ %v ] for %s", elapsed, utils.DisplayRune(char))

		if char == h.session.Terminator() {
			h.out.Print("Recorded, buffer cleared")
			continue
		}
		h.printSuggestions(results)
	}
}

func (h *InputHandler) printSuggestions(results []string) {
	buffer := h.session.Buffer()
	if len(results) == 0 {
		h.out.Printf("'%s': no suggestions", buffer)
		return
	}

	h.out.Printf("'%s': %d suggestions", buffer, len(results))
	for i, sentence := range results {
		if h.showFrequency {
			freq, _ := h.session.Frequency(sentence)
			h.out.Printf("%2d. %-40s (freq: %8s)", i+1, sentenceStyle.Render(sentence), utils.FormatWithCommas(freq))
			continue
		}
		h.out.Printf("%2d. %s", i+1, sentenceStyle.Render(sentence))
	}
}
