package analysis

import "fmt"

// DataFormatError reports input that does not match the documented GitHub
// wire format, such as a malformed event timestamp. It is fatal for the
// request: the pipeline returns no partial report alongside it.
type DataFormatError struct {
	Field string
	Value string
	Err   error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("malformed %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}
