package report

import "fmt"

// ExportError is fatal to the export call that raised it. Exports are
// all-or-nothing: a partial CSV string or truncated PDF is never returned.
type ExportError struct {
	Code    string
	Message string
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewExportError(format string, args ...interface{}) error {
	return &ExportError{
		Code:    "exportError",
		Message: fmt.Sprintf(format, args...),
	}
}
