package inventory

import "fmt"

// NotFoundMessage is shown for any page or record that does not exist.
const NotFoundMessage = "There is nothing on this side of the internet"

const (
	msgProductNameExists  = "Product name exists"
	msgLocationNameExists = "Location name exists"
	msgNameHasSlash       = "Name must not contain /"
)

// MaxMovementQty caps a single movement so per-location sums stay within int64.
const MaxMovementQty = 1_000_000_000

// ValidationError is a rejected form submission. Handlers re-render the form
// with Message and nothing is persisted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
