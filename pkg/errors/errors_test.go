package errors_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/go-drift/forms/pkg/errors"
	formstest "github.com/go-drift/forms/pkg/testing"
)

func installRecorder(t *testing.T) *formstest.RecordingHandler {
	t.Helper()
	h := &formstest.RecordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func TestFormsError_Message(t *testing.T) {
	base := stderrors.New("boom")
	err := &errors.FormsError{Op: "theme.Style", Kind: errors.KindStyle, Err: base}

	if got := err.Error(); !strings.Contains(got, "theme.Style") || !strings.Contains(got, "boom") {
		t.Errorf("Error() = %q, want op and cause present", got)
	}
	if !stderrors.Is(err, base) {
		t.Error("FormsError must unwrap to its cause")
	}
}

func TestReport_DeliversToHandler(t *testing.T) {
	h := installRecorder(t)

	errors.Report(&errors.FormsError{Op: "test.Report", Kind: errors.KindAnimation,
		Err: stderrors.New("bad frame")})

	if len(h.Errors) != 1 {
		t.Fatalf("handler saw %d errors, want 1", len(h.Errors))
	}
	if h.Errors[0].Op != "test.Report" {
		t.Errorf("op = %q, want %q", h.Errors[0].Op, "test.Report")
	}
}

func TestUsagef_ReportsThenPanics(t *testing.T) {
	h := installRecorder(t)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Usagef must panic")
		}
		err, ok := r.(*errors.FormsError)
		if !ok {
			t.Fatalf("panic value %T, want *FormsError", r)
		}
		if err.Kind != errors.KindUsage {
			t.Errorf("kind = %v, want usage", err.Kind)
		}
		if !strings.Contains(err.Error(), "bad argument 7") {
			t.Errorf("message %q missing formatted detail", err.Error())
		}
		if len(h.Errors) != 1 {
			t.Errorf("handler saw %d errors, want the usage error reported before the panic", len(h.Errors))
		}
	}()
	errors.Usagef("test.Op", "bad argument %d", 7)
}

func TestRecover_CapturesPanic(t *testing.T) {
	h := installRecorder(t)

	func() {
		defer errors.Recover("test.Worker")
		panic("exploded")
	}()

	if len(h.Panics) != 1 {
		t.Fatalf("handler saw %d panics, want 1", len(h.Panics))
	}
	if got := h.Panics[0].Op; got != "test.Worker" {
		t.Errorf("panic op = %q, want %q", got, "test.Worker")
	}
}

func TestSetHandler_NilRestoresDefault(t *testing.T) {
	errors.SetHandler(&formstest.RecordingHandler{})
	errors.SetHandler(nil)

	if _, ok := errors.DefaultHandler.(*errors.LogHandler); !ok {
		t.Errorf("DefaultHandler = %T, want *LogHandler restored", errors.DefaultHandler)
	}
}
