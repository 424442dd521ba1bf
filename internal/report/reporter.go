package report

import (
	"log"
	"time"

	"github.com/nrundek/duxburyInfo/internal/model"
	"github.com/nrundek/duxburyInfo/internal/platform"
	"github.com/nrundek/duxburyInfo/internal/scan"
	"github.com/nrundek/duxburyInfo/internal/speech"
)

// Retry budget for the direct status accessor. The status bar often lags
// a keystroke by a frame or two, so a couple of short retries recover
// most transient misses.
const (
	statusRetries    = 3
	statusRetryDelay = 30 * time.Millisecond
)

// User-visible messages for total resolution failure, one per operation.
const (
	MsgStatusUnavailable = "Status bar not available."
	MsgLineUnavailable   = "Line number not available."
	MsgPageUnavailable   = "Page number not available."
	MsgNoCandidates      = "No status candidates found."
	MsgScanEmpty         = "UI scan did not find status information."
)

// debugCandidateLimit caps how many raw candidate texts the debug
// operation writes to the log.
const debugCandidateLimit = 30

// Reporter runs the user-triggered status operations. Every failure from
// a host collaborator is absorbed and logged at diagnostic level; the
// only user-visible failure state is the per-operation "not available"
// message. Nothing is cached between invocations.
type Reporter struct {
	Accessor platform.Accessor
	Delegate platform.StatusDelegate
	Speaker  speech.Speaker
	Logf     func(format string, args ...any)

	// ScanFn, when set, replaces the pipeline behind Scan. Hosts use it
	// to serve cached scan results; ScanPipeline always bypasses it.
	ScanFn func() ([]model.Candidate, model.Status)

	sleep func(time.Duration) // test hook
}

// New builds a Reporter over the given provider and speaker. A nil
// provider is accepted: every operation then degrades to its
// not-available message.
func New(p *platform.Provider, spk speech.Speaker) *Reporter {
	r := &Reporter{
		Speaker: spk,
		Logf:    log.Printf,
		sleep:   time.Sleep,
	}
	if p != nil {
		r.Accessor = p.Accessor
		r.Delegate = p.Delegate
	}
	return r
}

func (r *Reporter) logf(format string, args ...any) {
	if r.Logf != nil {
		r.Logf(format, args...)
	}
}

func (r *Reporter) say(text string) {
	if r.Speaker != nil {
		r.Speaker.Message(text)
	}
}

// statusText queries the direct status accessor with the retry budget,
// normalizing whitespace. An empty result means the text is absent.
func (r *Reporter) statusText() string {
	if r.Accessor == nil {
		return ""
	}
	for i := 0; i < statusRetries; i++ {
		if i > 0 {
			r.sleep(statusRetryDelay)
		}
		t, err := r.Accessor.StatusText()
		if err != nil {
			r.logf("report: status text query failed: %v", err)
			continue
		}
		if s := scan.NormalizeText(t); s != "" {
			return s
		}
	}
	return ""
}

// Candidates scans the current foreground window. A missing accessor or
// foreground window yields an empty list.
func (r *Reporter) Candidates() []model.Candidate {
	if r.Accessor == nil {
		return nil
	}
	root, err := r.Accessor.ForegroundWindow()
	if err != nil {
		r.logf("report: foreground window query failed: %v", err)
		return nil
	}
	return scan.Collect(root)
}

// Scan resolves the scan result, through ScanFn when one is set.
func (r *Reporter) Scan() ([]model.Candidate, model.Status) {
	if r.ScanFn != nil {
		return r.ScanFn()
	}
	return r.ScanPipeline()
}

// ScanPipeline runs the collector+parser pipeline unconditionally.
func (r *Reporter) ScanPipeline() ([]model.Candidate, model.Status) {
	cands := r.Candidates()
	return cands, scan.Parse(cands)
}

// FullStatus reads the whole status bar. The host's built-in reporter is
// preferred; then the direct status text spoken verbatim; then a summary
// composed from the UI scan.
func (r *Reporter) FullStatus() {
	if r.Delegate != nil {
		err := r.Delegate.ReportStatus()
		if err == nil {
			return
		}
		r.logf("report: built-in status report failed: %v", err)
	}

	if text := r.statusText(); text != "" {
		r.say(text)
		return
	}

	_, st := r.Scan()
	if !st.Empty() {
		r.say(st.Summary())
		return
	}
	r.say(MsgStatusUnavailable)
}

// LineOnly speaks just the current line number, e.g. "Line 12".
func (r *Reporter) LineOnly() {
	if text := r.statusText(); text != "" {
		n := scan.MatchNumber(text, scan.FieldLine)
		if n == "" {
			// Unlabelled combined text: with exactly three numbers the
			// middle one is the line by convention.
			if runs := scan.DigitRuns(text); len(runs) == 3 {
				n = runs[1]
			}
		}
		if n != "" {
			r.say("Line " + n)
			return
		}
	}

	_, st := r.Scan()
	if st.Line != "" {
		r.say("Line " + st.Line)
		return
	}
	r.say(MsgLineUnavailable)
}

// PageOnly speaks just the current page number, e.g. "Page 5".
func (r *Reporter) PageOnly() {
	if text := r.statusText(); text != "" {
		n := scan.MatchNumber(text, scan.FieldPage)
		if n == "" {
			if runs := scan.DigitRuns(text); len(runs) >= 1 {
				n = runs[0]
			}
		}
		if n != "" {
			r.say("Page " + n)
			return
		}
	}

	_, st := r.Scan()
	if st.Page != "" {
		r.say("Page " + st.Page)
		return
	}
	r.say(MsgPageUnavailable)
}

// DebugCandidates logs the first raw candidate texts with 1-based
// sequence numbers and speaks the best-found summary. The pipeline
// results are returned so callers rendering structured output need not
// rescan.
func (r *Reporter) DebugCandidates() ([]model.Candidate, model.Status) {
	cands, st := r.Scan()
	r.logf("debug: ----- candidate texts begin -----")
	for i, c := range cands {
		if i >= debugCandidateLimit {
			break
		}
		r.logf("debug: cand %02d: %q", i+1, c.Text)
	}
	r.logf("debug: ----- candidate texts end -----")
	if !st.Empty() {
		r.say(st.Summary())
	} else {
		r.say(MsgNoCandidates)
	}
	return cands, st
}

// DebugScanSummary forces a UI scan and speaks the summary only.
func (r *Reporter) DebugScanSummary() model.Status {
	_, st := r.Scan()
	if !st.Empty() {
		r.say(st.Summary())
	} else {
		r.say(MsgScanEmpty)
	}
	return st
}
