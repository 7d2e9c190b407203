// Package errs defines the error kinds surfaced by the history loader.
package errs

// ErrorKind identifies a kind of loader error.
// Errors are tagged with errors.Mark, so errors.Is works through wrapping.
type ErrorKind string

const (
	// TransientRPC is a network or timeout failure talking to the node.
	TransientRPC = ErrorKind("transient rpc error")
	// InvalidBlock is a block the node returned that fails boundary validation.
	InvalidBlock = ErrorKind("invalid block")
	// StorageWrite is a failed write; the enclosing batch is rolled back.
	StorageWrite = ErrorKind("storage write error")
	// Configuration is an invalid startup setting.
	Configuration = ErrorKind("configuration error")
	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("not found")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
