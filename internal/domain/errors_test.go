package domain

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{
		Op:   "csvstore.read",
		Kind: KindDataAccess,
		Path: "data/hosts.csv",
		Err:  root,
	}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}

	var got *OpError
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match OpError")
	}
	if got.Kind != KindDataAccess {
		t.Fatalf("expected kind %s", KindDataAccess)
	}
	if !strings.Contains(err.Error(), "path=data/hosts.csv") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestDataAccessMatchesSentinelAndCause(t *testing.T) {
	err := DataAccess("csvstore.write", "x.csv", os.ErrPermission)

	if !errors.Is(err, ErrDataAccess) {
		t.Fatalf("expected ErrDataAccess")
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Fatalf("expected cause to be preserved")
	}
	if !IsKind(err, KindDataAccess) {
		t.Fatalf("expected IsKind to match data access")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("did not expect not_found kind")
	}
}

func TestIsKindPlainError(t *testing.T) {
	if IsKind(errors.New("plain"), KindDataAccess) {
		t.Fatalf("plain errors have no kind")
	}
	var nilErr *OpError
	if nilErr.Error() != "<nil>" {
		t.Fatalf("expected <nil> for nil OpError")
	}
}
