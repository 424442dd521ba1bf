package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/nrundek/duxburyInfo/internal/model"
	"github.com/nrundek/duxburyInfo/internal/report"
	"github.com/nrundek/duxburyInfo/internal/version"
)

// mcpServer wraps the MCP server with a silent reporter and scan cache.
// Tool calls never speak; the spoken message is returned as result text
// instead.
type mcpServer struct {
	reporter   *report.Reporter
	rec        *recordingSpeaker
	cache      *scanCache
	reporterMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with the report
// tools. A missing host backend is not fatal: each tool then returns
// its not-available message.
func newMCPServer(cfg MCPConfig) *mcpServer {
	r, rec := newReporter(true)

	// Every scan goes through the cache, including the fallback scan
	// inside FullStatus, so one tool call walks the UI at most once.
	cache := newScanCache(cfg.CacheTTL)
	r.ScanFn = func() ([]model.Candidate, model.Status) {
		return cache.Scan(r.ScanPipeline)
	}

	s := &mcpServer{
		reporter: r,
		rec:      rec,
		cache:    cache,
	}

	s.mcp = mcpserver.NewMCPServer(
		"duxburyinfo",
		version.Version,
	)

	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Report the full Duxbury cursor position: page, line, and column from the status bar, falling back to a UI scan"),
		),
		s.handleStatus,
	)

	s.mcp.AddTool(
		mcp.NewTool("line",
			mcp.WithDescription("Report only the current line number"),
		),
		s.handleLine,
	)

	s.mcp.AddTool(
		mcp.NewTool("page",
			mcp.WithDescription("Report only the current page number"),
		),
		s.handlePage,
	)

	s.mcp.AddTool(
		mcp.NewTool("candidates",
			mcp.WithDescription("Debug: list the raw candidate UI texts collected by the scan, with their priorities, plus the status parsed from them"),
			mcp.WithBoolean("fresh", mcp.Description("Bypass the scan cache")),
		),
		s.handleCandidates,
	)

	s.mcp.AddTool(
		mcp.NewTool("scan",
			mcp.WithDescription("Debug: run the UI scan pipeline and return the parsed status only"),
			mcp.WithBoolean("fresh", mcp.Description("Bypass the scan cache")),
		),
		s.handleScan,
	)
}

// boolParam extracts a bool parameter from MCP tool arguments.
func boolParam(params map[string]interface{}, key string, def bool) bool {
	if v, ok := params[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return def
}

// resultToText serializes a tool result to YAML for the MCP response.
func resultToText(v any) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("marshal failed: %v", err)
	}
	return string(b)
}

// runOp executes a reporter operation under the server mutex and
// returns the message it would have spoken.
func (s *mcpServer) runOp(op func()) string {
	s.reporterMu.Lock()
	defer s.reporterMu.Unlock()
	op()
	return s.rec.last()
}

func (s *mcpServer) handleStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	msg := s.runOp(s.reporter.FullStatus)

	res := statusResult{OK: true, Op: "status", Message: msg}

	s.reporterMu.Lock()
	_, st := s.reporter.Scan()
	s.reporterMu.Unlock()
	if !st.Empty() {
		res.Status = &st
	}

	return mcp.NewToolResultText(resultToText(res)), nil
}

func (s *mcpServer) handleLine(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	msg := s.runOp(s.reporter.LineOnly)
	res := statusResult{OK: true, Op: "line", Message: msg}
	return mcp.NewToolResultText(resultToText(res)), nil
}

func (s *mcpServer) handlePage(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	msg := s.runOp(s.reporter.PageOnly)
	res := statusResult{OK: true, Op: "page", Message: msg}
	return mcp.NewToolResultText(resultToText(res)), nil
}

func (s *mcpServer) handleCandidates(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if boolParam(request.GetArguments(), "fresh", false) {
		s.cache.Invalidate()
	}

	s.reporterMu.Lock()
	cands, st := s.reporter.Scan()
	s.reporterMu.Unlock()

	res := candidatesResult{
		OK:         true,
		Op:         "candidates",
		Candidates: cands,
		Total:      len(cands),
	}
	if res.Candidates == nil {
		res.Candidates = []model.Candidate{}
	}
	if !st.Empty() {
		res.Status = &st
		res.Message = st.Summary()
	} else {
		res.Message = report.MsgNoCandidates
	}

	return mcp.NewToolResultText(resultToText(res)), nil
}

func (s *mcpServer) handleScan(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if boolParam(request.GetArguments(), "fresh", false) {
		s.cache.Invalidate()
	}

	s.reporterMu.Lock()
	_, st := s.reporter.Scan()
	s.reporterMu.Unlock()

	res := statusResult{OK: true, Op: "scan"}
	if !st.Empty() {
		res.Status = &st
		res.Message = st.Summary()
	} else {
		res.Message = report.MsgScanEmpty
	}

	return mcp.NewToolResultText(resultToText(res)), nil
}
