package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/sentserve/pkg/suggest"
	"github.com/charmbracelet/log"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newSession(t *testing.T) *suggest.Session {
	t.Helper()
	s, err := suggest.New(
		[]string{"i enjoy programming", "ironman", "i enjoy learning", "island"},
		[]int{5, 2, 2, 3},
	)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestInputHandlerFeedsEachCharacter(t *testing.T) {
	session := newSession(t)
	var out bytes.Buffer

	h := NewInputHandler(session, strings.NewReader("i a#\ni a#\n"), &out, true)
	if err := h.Start(); err != nil {
		t.Fatal(err)
	}

	if freq, _ := session.Frequency("i a"); freq != 2 {
		t.Errorf("expected 'i a' frequency 2, got %d", freq)
	}
	if h.requestCount != 8 {
		t.Errorf("expected 8 fed characters, got %d", h.requestCount)
	}

	output := out.String()
	for _, want := range []string{
		"'i': 3 suggestions",
		"i enjoy programming",
		"'i a': no suggestions",
		"Recorded, buffer cleared",
		"'i a': 1 suggestions",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestInputHandlerSkipsInvalidCharacters(t *testing.T) {
	session := newSession(t)
	var out bytes.Buffer

	h := NewInputHandler(session, strings.NewReader("Is1\n"), &out, false)
	if err := h.Start(); err != nil {
		t.Fatal(err)
	}

	if session.Buffer() != "s" {
		t.Errorf("expected only the valid character buffered, got %q", session.Buffer())
	}
	if !strings.Contains(out.String(), "invalid character") {
		t.Errorf("expected invalid character report:\n%s", out.String())
	}
}

func TestInputHandlerCommands(t *testing.T) {
	session := newSession(t)
	var out bytes.Buffer

	h := NewInputHandler(session, strings.NewReader(":history\n:stats\n:bogus\n:quit\nisland#\n"), &out, true)
	if err := h.Start(); err != nil {
		t.Fatal(err)
	}

	output := out.String()
	for _, want := range []string{"4 recorded sentences", "ironman", "sentences=4", "Unknown command: :bogus"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
	// :quit stops before the last line
	if freq, _ := session.Frequency("island"); freq != 3 {
		t.Errorf("input after :quit was processed (island=%d)", freq)
	}
}
