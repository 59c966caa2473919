package errs

// Error kinds shared by every use case. Concrete errors are marked with one
// of these so the transport layer can pick a status without knowing them.
var (
	// caller must fix the request; never retried
	ErrInvalidInput = New("invalid input")
	// missing, or not reachable under the supplied path parameters
	ErrNotFound = New("not found")
	// caller does not own the target resource
	ErrForbidden = New("forbidden")
	// overlapping interval or duplicate natural key
	ErrConflict = New("conflict")
	// storage or upstream calendar failure
	ErrUnavailable = New("unavailable")
)

// KindOf returns the kind marker carried by err, or nil.
func KindOf(err error) error {
	for _, kind := range []error{ErrInvalidInput, ErrNotFound, ErrForbidden, ErrConflict, ErrUnavailable} {
		if Is(err, kind) {
			return kind
		}
	}
	return nil
}
