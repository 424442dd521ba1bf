package speech

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Speaker delivers a message to the end user (speech or braille device).
type Speaker interface {
	Message(text string)
}

// synthBackend abstracts the synthesizer invocation so tests can record
// what would be spoken.
type synthBackend interface {
	Say(text string) error
}

// Synth speaks through an external synthesizer command. When the command
// is missing or fails, the message is printed instead so it is never
// silently lost.
type Synth struct {
	backend synthBackend
	out     io.Writer
	logf    func(format string, args ...any)
}

// NewSynth returns a Synth using the given synthesizer command, or the
// platform default when command is empty.
func NewSynth(command string) *Synth {
	if command == "" {
		command = DefaultCommand()
	}
	return &Synth{
		backend: &execBackend{command: command},
		out:     os.Stdout,
		logf:    log.Printf,
	}
}

// newSynthWithBackend wires in a custom backend (tests only).
func newSynthWithBackend(b synthBackend, out io.Writer) *Synth {
	return &Synth{backend: b, out: out, logf: log.Printf}
}

// Message speaks text, falling back to printing it on synthesizer
// failure. Empty messages are dropped.
func (s *Synth) Message(text string) {
	if text == "" {
		return
	}
	if err := s.backend.Say(text); err != nil {
		s.logf("speech: synthesizer failed (%v), printing instead", err)
		fmt.Fprintln(s.out, text)
		return
	}
	s.logf("speech: spoke %d chars", len(text))
}

// DefaultCommand picks the platform speech synthesizer.
func DefaultCommand() string {
	if runtime.GOOS == "darwin" {
		return "say"
	}
	return "spd-say"
}

type execBackend struct {
	command string
}

func (b *execBackend) Say(text string) error {
	if b.command == "" {
		return fmt.Errorf("no synthesizer command configured")
	}
	cmd := exec.Command(b.command, text)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", b.command, err, strings.TrimSpace(string(out)))
	}
	return nil
}
