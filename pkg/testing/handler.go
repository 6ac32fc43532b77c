package testing

import "github.com/go-drift/forms/pkg/errors"

// RecordingHandler captures reported errors instead of logging them,
// keeping test output quiet while letting tests assert on reports.
type RecordingHandler struct {
	Errors []*errors.FormsError
	Panics []*errors.PanicError
}

// HandleError records the error.
func (h *RecordingHandler) HandleError(err *errors.FormsError) {
	h.Errors = append(h.Errors, err)
}

// HandlePanic records the panic.
func (h *RecordingHandler) HandlePanic(err *errors.PanicError) {
	h.Panics = append(h.Panics, err)
}
