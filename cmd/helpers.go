package cmd

import (
	"log"

	"github.com/nrundek/duxburyInfo/internal/config"
	"github.com/nrundek/duxburyInfo/internal/model"
	"github.com/nrundek/duxburyInfo/internal/platform"
	"github.com/nrundek/duxburyInfo/internal/report"
	"github.com/nrundek/duxburyInfo/internal/speech"
)

// recordingSpeaker captures spoken messages so commands can echo them in
// structured output, forwarding to a real speaker when one is attached.
type recordingSpeaker struct {
	next     speech.Speaker
	messages []string
}

func (r *recordingSpeaker) Message(text string) {
	r.messages = append(r.messages, text)
	if r.next != nil {
		r.next.Message(text)
	}
}

// last returns the most recent message, or "".
func (r *recordingSpeaker) last() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

// newReporter builds a Reporter wired to the registered host backend and
// the configured speech synthesizer. A missing backend is not an error:
// every operation degrades to its "not available" message. With silent
// set, messages are recorded but not spoken.
func newReporter(silent bool) (*report.Reporter, *recordingSpeaker) {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
		cfg = config.Default()
	}

	provider, err := platform.NewProvider()
	if err != nil {
		log.Printf("platform: %v", err)
		provider = nil
	}

	rec := &recordingSpeaker{}
	if !silent {
		rec.next = speech.NewSynth(cfg.Speech.Command)
	}
	return report.New(provider, rec), rec
}

// statusResult is the structured output of the report commands.
type statusResult struct {
	OK      bool          `yaml:"ok"                json:"ok"`
	Op      string        `yaml:"op"                json:"op"`
	Message string        `yaml:"message,omitempty" json:"message,omitempty"`
	Status  *model.Status `yaml:"status,omitempty"  json:"status,omitempty"`
}
