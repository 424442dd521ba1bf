package output

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/nrundek/duxburyInfo/internal/model"
	"gopkg.in/yaml.v3"
)

type sampleResult struct {
	OK     bool          `yaml:"ok"               json:"ok"`
	Status *model.Status `yaml:"status,omitempty" json:"status,omitempty"`
}

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	result := sampleResult{OK: true, Status: &model.Status{Page: "5", Line: "12", Col: "3"}}

	out := captureStdout(t, func() error { return PrintYAML(result) })

	var decoded sampleResult
	if err := yaml.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if !decoded.OK || decoded.Status == nil || decoded.Status.Page != "5" {
		t.Errorf("round-trip mismatch: %+v", decoded)
	}
}

func TestPrintYAML_OmitsEmptyFields(t *testing.T) {
	out := captureStdout(t, func() error { return PrintYAML(model.Status{Line: "12"}) })

	if strings.Contains(out, "page") || strings.Contains(out, "col") {
		t.Errorf("empty fields should be omitted, got:\n%s", out)
	}
	if !strings.Contains(out, "line") {
		t.Errorf("resolved field missing, got:\n%s", out)
	}
}

func TestPrintJSON_Compact(t *testing.T) {
	out := captureStdout(t, func() error {
		return PrintJSON(sampleResult{OK: true}, false)
	})
	if got := strings.TrimSpace(out); got != `{"ok":true}` {
		t.Errorf("compact JSON = %q", got)
	}
}

func TestPrintJSON_Pretty(t *testing.T) {
	out := captureStdout(t, func() error {
		return PrintJSON(sampleResult{OK: true}, true)
	})
	if strings.Count(out, "\n") <= 1 {
		t.Errorf("pretty JSON should be multi-line, got:\n%s", out)
	}
}

func TestPrint_RespectsFormat(t *testing.T) {
	origFormat, origPretty := OutputFormat, PrettyOutput
	defer func() { OutputFormat, PrettyOutput = origFormat, origPretty }()

	OutputFormat = FormatJSON
	PrettyOutput = false
	out := captureStdout(t, func() error { return Print(sampleResult{OK: true}) })
	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("expected JSON, got:\n%s", out)
	}

	OutputFormat = FormatYAML
	out = captureStdout(t, func() error { return Print(sampleResult{OK: true}) })
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Errorf("expected YAML, got:\n%s", out)
	}
}

func TestPrint_UnsupportedFormat(t *testing.T) {
	orig := OutputFormat
	defer func() { OutputFormat = orig }()

	OutputFormat = Format("xml")
	if err := Print(sampleResult{}); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}
