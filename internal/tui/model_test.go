package tui

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/bastiangx/sentserve/pkg/suggest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/exp/teatest"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testSession(t *testing.T) *suggest.Session {
	t.Helper()
	s, err := suggest.New(
		[]string{"i enjoy programming", "ironman", "i enjoy learning", "island"},
		[]int{5, 2, 2, 3},
	)
	if err != nil {
		t.Fatalf("failed to build session: %v", err)
	}
	return s
}

func TestUpdateFeedsKeys(t *testing.T) {
	session := testSession(t)
	model := NewModel(session)

	model.Update(keyRunes('i'))
	expected := []string{"i enjoy programming", "island", "i enjoy learning"}
	if !reflect.DeepEqual(model.suggestions, expected) {
		t.Fatalf("Expected: %v\nGot:      %v", expected, model.suggestions)
	}

	model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if session.Buffer() != "i " || len(model.suggestions) != 2 {
		t.Fatalf("space not fed: buffer=%q suggestions=%v", session.Buffer(), model.suggestions)
	}

	view := model.View()
	if !strings.Contains(view, "i enjoy learning") || !strings.Contains(view, "(5)") {
		t.Errorf("view missing suggestions: %q", view)
	}

	model.Update(keyRunes('a'))
	if !strings.Contains(model.View(), "no suggestions") {
		t.Errorf("expected empty state in view: %q", model.View())
	}

	model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if model.recorded != "i a" || session.Buffer() != "" {
		t.Errorf("enter did not submit: recorded=%q buffer=%q", model.recorded, session.Buffer())
	}
	if !strings.Contains(model.View(), `recorded "i a"`) {
		t.Errorf("view missing recorded status: %q", model.View())
	}
}

func TestUpdateRejectsInvalidKeys(t *testing.T) {
	session := testSession(t)
	model := NewModel(session)

	model.Update(keyRunes('i'))
	model.Update(keyRunes('Z'))
	if !errors.Is(model.err, suggest.ErrInvalidCharacter) {
		t.Fatalf("expected invalid character error, got %v", model.err)
	}
	if session.Buffer() != "i" {
		t.Errorf("invalid key changed buffer: %q", session.Buffer())
	}
	if model.keystrokes != 1 {
		t.Errorf("expected 1 accepted keystroke, got %d", model.keystrokes)
	}

	model.Update(keyRunes('s'))
	if model.err != nil {
		t.Errorf("error should clear after a valid key: %v", model.err)
	}
}

func TestProgramTypesAndRecords(t *testing.T) {
	session := testSession(t)
	tm := teatest.NewTestModel(t, NewModel(session), teatest.WithInitialTermSize(80, 24))

	for _, r := range "ironman#iro" {
		tm.Send(keyRunes(r))
	}

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("ironman"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second)).(*Model)

	if final.keystrokes != 11 {
		t.Errorf("expected 11 keystrokes, got %d", final.keystrokes)
	}
	if freq, _ := session.Frequency("ironman"); freq != 3 {
		t.Errorf("expected ironman frequency 3, got %d", freq)
	}
	if session.Buffer() != "iro" {
		t.Errorf("expected buffer 'iro', got %q", session.Buffer())
	}
	if !reflect.DeepEqual(final.suggestions, []string{"ironman"}) {
		t.Errorf("unexpected final suggestions: %v", final.suggestions)
	}
}
