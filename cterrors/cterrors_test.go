package cterrors

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(StageSend, CodeTimeout, cause)

	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if se.Stage != StageSend || se.Code != CodeTimeout {
		t.Fatalf("unexpected stage/code: %s/%s", se.Stage, se.Code)
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to find the cause")
	}
	if !strings.Contains(err.Error(), "timeout") {
		t.Fatalf("message should carry the code: %q", err.Error())
	}
}

func TestErrorWithoutCause(t *testing.T) {
	err := &Error{Stage: StageConnect, Code: CodeNotConnected}
	if got := err.Error(); got != "connect (not_connected)" {
		t.Fatalf("unexpected message: %q", got)
	}
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatal("nil receiver should format as <nil>")
	}
}
