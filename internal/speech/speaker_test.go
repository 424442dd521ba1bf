package speech

import (
	"bytes"
	"errors"
	"testing"
)

// recordingBackend captures what would be spoken.
type recordingBackend struct {
	spoken []string
	err    error
}

func (b *recordingBackend) Say(text string) error {
	if b.err != nil {
		return b.err
	}
	b.spoken = append(b.spoken, text)
	return nil
}

func TestSynth_Message(t *testing.T) {
	backend := &recordingBackend{}
	var out bytes.Buffer
	s := newSynthWithBackend(backend, &out)
	s.logf = func(string, ...any) {}

	s.Message("Page 5, Line 12, Column 3")

	if len(backend.spoken) != 1 || backend.spoken[0] != "Page 5, Line 12, Column 3" {
		t.Errorf("spoken = %v", backend.spoken)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed on success, got %q", out.String())
	}
}

func TestSynth_FailureFallsBackToPrinting(t *testing.T) {
	backend := &recordingBackend{err: errors.New("synthesizer missing")}
	var out bytes.Buffer
	s := newSynthWithBackend(backend, &out)
	s.logf = func(string, ...any) {}

	s.Message("Line 12")

	if got := out.String(); got != "Line 12\n" {
		t.Errorf("fallback output = %q, want %q", got, "Line 12\n")
	}
}

func TestSynth_EmptyMessageDropped(t *testing.T) {
	backend := &recordingBackend{}
	var out bytes.Buffer
	s := newSynthWithBackend(backend, &out)
	s.logf = func(string, ...any) {}

	s.Message("")

	if len(backend.spoken) != 0 || out.Len() != 0 {
		t.Errorf("empty message should be dropped, spoken=%v out=%q", backend.spoken, out.String())
	}
}

func TestDefaultCommand(t *testing.T) {
	if DefaultCommand() == "" {
		t.Error("every platform must have a default synthesizer command")
	}
}
