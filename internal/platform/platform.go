package platform

// Node is a read-only view of one element in the host's accessibility
// tree. The host owns the tree and may mutate it concurrently with a
// scan, so every method returns an error when the underlying element can
// no longer be read; callers treat any error as "no value" and keep
// going.
type Node interface {
	// Role returns the compact role code for this node (see model.MapRole).
	Role() (string, error)

	// WindowClassName returns the native window class name, or "" when
	// the node has no backing window.
	WindowClassName() (string, error)

	// The four readable text attributes, probed in this fixed order by
	// the collector.
	Name() (string, error)
	Value() (string, error)
	WindowText() (string, error)
	Description() (string, error)

	// Children enumerates the node's child elements.
	Children() ([]Node, error)
}

// Accessor queries the host screen reader for status information.
type Accessor interface {
	// StatusText returns the status bar text the host resolves itself,
	// the same source as its own "read status bar" command.
	StatusText() (string, error)

	// ForegroundWindow returns the current foreground node, or nil when
	// there is none.
	ForegroundWindow() (Node, error)
}

// StatusDelegate is the host's built-in full-status-report action. When
// the host supports it, invoking it performs the complete report and
// nothing further needs to run.
type StatusDelegate interface {
	ReportStatus() error
}
