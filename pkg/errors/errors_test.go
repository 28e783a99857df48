package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestHostErrorString(t *testing.T) {
	err := &HostError{
		Op:   "termui.Run",
		Kind: KindScreen,
		Err:  fmt.Errorf("init screen: no terminal"),
	}
	got := err.Error()
	if !strings.Contains(got, "termui.Run") || !strings.Contains(got, "[screen]") {
		t.Errorf("error string %q missing op or kind", got)
	}
}

func TestHostErrorUnwrap(t *testing.T) {
	inner := fmt.Errorf("boom")
	err := &HostError{Op: "config.Load", Kind: KindConfig, Err: inner}
	if err.Unwrap() != inner {
		t.Error("Unwrap must return the underlying error")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindScreen, "screen"},
		{KindCallback, "callback"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Op: "termui.dispatch", Value: "bad callback"}
	if got := err.Error(); !strings.Contains(got, "termui.dispatch") {
		t.Errorf("error string %q missing op", got)
	}
	anon := &PanicError{Value: 42}
	if got := anon.Error(); !strings.Contains(got, "42") {
		t.Errorf("error string %q missing panic value", got)
	}
}

// recordingHandler collects reports for inspection.
type recordingHandler struct {
	errors []*HostError
	panics []*PanicError
}

func (h *recordingHandler) HandleError(err *HostError)  { h.errors = append(h.errors, err) }
func (h *recordingHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestReportSetsTimestamp(t *testing.T) {
	rec := &recordingHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	Report(&HostError{Op: "x", Kind: KindConfig, Err: fmt.Errorf("e")})
	if len(rec.errors) != 1 {
		t.Fatalf("reported %d errors, want 1", len(rec.errors))
	}
	if rec.errors[0].Timestamp.IsZero() {
		t.Error("Report must stamp the error")
	}

	Report(nil)
	if len(rec.errors) != 1 {
		t.Error("nil report must be dropped")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	rec := &recordingHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("kaboom")
	}()

	if len(rec.panics) != 1 {
		t.Fatalf("recorded %d panics, want 1", len(rec.panics))
	}
	p := rec.panics[0]
	if p.Op != "test.op" || p.Value != "kaboom" {
		t.Errorf("panic report = %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("panic report missing stack trace")
	}
}

func TestRecoverWithCleanupRunsCleanupFirst(t *testing.T) {
	rec := &recordingHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	var order []string
	probe := &orderedHandler{rec: rec, order: &order}
	SetHandler(probe)

	func() {
		defer RecoverWithCleanup("test.op", func() {
			order = append(order, "cleanup")
		})
		panic("kaboom")
	}()

	if len(order) != 2 || order[0] != "cleanup" || order[1] != "report" {
		t.Errorf("order = %v, want cleanup before report", order)
	}
}

type orderedHandler struct {
	rec   *recordingHandler
	order *[]string
}

func (h *orderedHandler) HandleError(err *HostError) { h.rec.HandleError(err) }
func (h *orderedHandler) HandlePanic(err *PanicError) {
	*h.order = append(*h.order, "report")
	h.rec.HandlePanic(err)
}

func TestRecoverNoPanicIsNoOp(t *testing.T) {
	rec := &recordingHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
	}()

	if len(rec.panics) != 0 {
		t.Error("Recover reported without a panic")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&recordingHandler{})
	SetHandler(nil)
	if _, ok := getHandler().(*LogHandler); !ok {
		t.Errorf("handler after reset = %T, want *LogHandler", getHandler())
	}
}
