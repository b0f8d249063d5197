package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFortisErrorString(t *testing.T) {
	err := &FortisError{
		Op:   "props.View.Set",
		Kind: KindWriteNotAllowed,
		Err:  ErrWriteNotAllowed,
	}
	assert.Equal(t, "props.View.Set [write-not-allowed]: write not allowed", err.Error())
}

func TestFortisErrorWithKey(t *testing.T) {
	err := UnknownAttribute("props.View.Get", "colour")
	assert.Contains(t, err.Error(), "key=colour")
	assert.True(t, stderrors.Is(err, ErrUnknownAttribute))
}

func TestConstructorsWrapSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
		kind ErrorKind
	}{
		{"write", WriteNotAllowed("op", "children"), ErrWriteNotAllowed, KindWriteNotAllowed},
		{"unknown", UnknownAttribute("op", "x"), ErrUnknownAttribute, KindUnknownAttribute},
		{"mismatch", KindMismatch("op", "x", "not a number"), ErrKindMismatch, KindKindMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.want)
			var fe *FortisError
			require.ErrorAs(t, tt.err, &fe)
			assert.Equal(t, tt.kind, fe.Kind)
		})
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindWriteNotAllowed, "write-not-allowed"},
		{KindUnknownAttribute, "unknown-attribute"},
		{KindKindMismatch, "kind-mismatch"},
		{KindSchema, "schema"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindFactory, "factory"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String(), "ErrorKind(%d)", tt.kind)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	assert.Equal(t, "panic: test panic", err.Error())

	err.Op = "dom.DispatchSignal"
	assert.Equal(t, "panic in dom.DispatchSignal: test panic", err.Error())
}

func TestRenderErrorString(t *testing.T) {
	err := &RenderError{Component: "fortis-list", Recovered: "nil map"}
	assert.Equal(t, "panic in fortis-list.Render(): nil map", err.Error())

	wrapped := fmt.Errorf("boom")
	err2 := &RenderError{Component: "fortis-list", Err: wrapped}
	assert.Equal(t, "error in fortis-list.Render(): boom", err2.Error())
	assert.ErrorIs(t, err2, wrapped)

	err3 := &RenderError{Component: "fortis-list"}
	assert.Equal(t, "unknown error in fortis-list.Render()", err3.Error())
}

func TestReport(t *testing.T) {
	var captured *FortisError
	SetHandler(&testHandler{onError: func(err *FortisError) { captured = err }})
	defer SetHandler(nil)

	Report(&FortisError{Op: "test.op", Kind: KindSchema, Err: ErrInvalidSchema})

	require.NotNil(t, captured)
	assert.Equal(t, "test.op", captured.Op)
	assert.False(t, captured.Timestamp.IsZero())
}

func TestReportRenderError(t *testing.T) {
	var captured *RenderError
	SetHandler(&testHandler{onRender: func(err *RenderError) { captured = err }})
	defer SetHandler(nil)

	ReportRenderError(&RenderError{Component: "fortis-test", Recovered: "test panic"})

	require.NotNil(t, captured)
	assert.Equal(t, "fortis-test", captured.Component)
	assert.False(t, captured.Timestamp.IsZero())
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(nil)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	require.NotNil(t, captured)
	assert.Equal(t, "intentional test panic", captured.Value)
	assert.Equal(t, "test.recover", captured.Op)
	assert.NotEmpty(t, captured.StackTrace)
}

func TestRecoverWithCallback(t *testing.T) {
	SetHandler(&testHandler{})
	defer SetHandler(nil)

	var got any
	func() {
		defer RecoverWithCallback("test.callback", func(r any) { got = r })
		panic(42)
	}()
	assert.Equal(t, 42, got)
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	require.NotEmpty(t, stack)
	assert.True(t, bytes.Contains([]byte(stack), []byte("testing")) || bytes.Contains([]byte(stack), []byte("runtime")))
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	_, ok := DefaultHandler.(*LogHandler)
	assert.True(t, ok, "SetHandler(nil) should install LogHandler, got %T", DefaultHandler)
}

func TestLogHandlerWritesThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil))}

	h.HandleError(UnknownAttribute("props.View.Get", "colour"))
	h.HandlePanic(&PanicError{Op: "op", Value: "v"})
	h.HandleRenderError(&RenderError{Component: "fortis-x", Recovered: "bad"})

	out := buf.String()
	assert.Contains(t, out, "fortis error")
	assert.Contains(t, out, "key=colour")
	assert.Contains(t, out, "fortis panic")
	assert.Contains(t, out, "component=fortis-x")
}

type testHandler struct {
	onError  func(*FortisError)
	onPanic  func(*PanicError)
	onRender func(*RenderError)
}

func (h *testHandler) HandleError(err *FortisError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func (h *testHandler) HandleRenderError(err *RenderError) {
	if h.onRender != nil {
		h.onRender(err)
	}
}
