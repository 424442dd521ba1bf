package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the host accessibility backends.
type Provider struct {
	Accessor Accessor
	Delegate StatusDelegate
}

// ErrUnsupported is returned when no host integration has registered a
// backend for this process.
var ErrUnsupported = fmt.Errorf("no accessibility backend registered on %s/%s", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by host-integration packages via init(). The
// core never constructs a backend itself: the UI tree, the direct status
// accessor, and the built-in status delegate all belong to the host.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns the registered Provider. Callers treat an error as
// "backend absent" and degrade to their not-available messages rather
// than failing the operation.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
