package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestServiceError_StatusCodeAndKind(t *testing.T) {
	cases := []struct {
		err    error
		status int
		kind   string
	}{
		{UnAuthorizedError(nil, "not authenticated"), http.StatusUnauthorized, "unauthenticated"},
		{ResourceNotFoundError(nil, "not found"), http.StatusNotFound, "not_found"},
		{BadRequestError(nil, "bad"), http.StatusBadRequest, "invalid_input"},
		{InvalidStateError(nil, "wrong state", "PENDING", "BRIDGED"), http.StatusBadRequest, "invalid_state"},
		{NotSupportedError(nil, "unsupported"), http.StatusBadRequest, "unsupported_route"},
		{DependencyFailureError(nil, "quote", "upstream", "body"), http.StatusBadGateway, "upstream_failure"},
		{ConflictError(nil, "conflict"), http.StatusConflict, "conflict"},
		{UnavailableError(nil, "unavailable"), http.StatusServiceUnavailable, "unavailable"},
		{GeneralError(nil), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range cases {
		svcErr, ok := As(tc.err)
		if !ok {
			t.Fatalf("expected ServiceError, got %T", tc.err)
		}
		if svcErr.StatusCode() != tc.status {
			t.Fatalf("%s: expected status %d, got %d", svcErr.Category, tc.status, svcErr.StatusCode())
		}
		if svcErr.Category.Kind() != tc.kind {
			t.Fatalf("%s: expected kind %q, got %q", svcErr.Category, tc.kind, svcErr.Category.Kind())
		}
	}
}

func TestDependencyFailureError_TruncatesDetail(t *testing.T) {
	err := DependencyFailureError(nil, "bridge_quote_failed", "quote failed", strings.Repeat("x", 2000))

	svcErr, ok := As(err)
	if !ok {
		t.Fatal("expected ServiceError")
	}
	if len(svcErr.Detail) != MaxDetailLength {
		t.Fatalf("expected detail length %d, got %d", MaxDetailLength, len(svcErr.Detail))
	}
	if svcErr.Reason != "bridge_quote_failed" {
		t.Fatalf("expected reason bridge_quote_failed, got %q", svcErr.Reason)
	}
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	// 499 ASCII bytes then a 3 byte rune straddling the limit
	s := strings.Repeat("a", MaxDetailLength-1) + "€" + "tail"

	got := Truncate(s)
	if !utf8.ValidString(got) {
		t.Fatal("truncated detail is not valid UTF-8")
	}
	if got != strings.Repeat("a", MaxDetailLength-1) {
		t.Fatalf("expected cut before the rune, got length %d", len(got))
	}

	short := "déjà vu"
	if Truncate(short) != short {
		t.Fatal("short input must be unchanged")
	}
}

func TestIs_WrappedServiceError(t *testing.T) {
	sentinel := errors.New("execution not found")
	err := fmt.Errorf("get execution: %w", ResourceNotFoundError(sentinel, "not found"))

	if !Is(err, CategoryResourceNotFound) {
		t.Fatal("expected CategoryResourceNotFound")
	}
	if !errors.Is(err, sentinel) {
		t.Fatal("expected wrapped sentinel to be reachable")
	}
	if IsInternalError(err) {
		t.Fatal("not found must not be internal")
	}
	if !IsInternalError(errors.New("boom")) {
		t.Fatal("plain errors are internal")
	}
}

func TestInvalidStateError_EchoesStatuses(t *testing.T) {
	err := InvalidStateError(nil, "execution must be bridged before swap", "PENDING", "BRIDGED", "BRIDGING")

	svcErr, _ := As(err)
	if svcErr.CurrentStatus != "PENDING" {
		t.Fatalf("expected current PENDING, got %q", svcErr.CurrentStatus)
	}
	if len(svcErr.RequiredStatus) != 2 || svcErr.RequiredStatus[0] != "BRIDGED" {
		t.Fatalf("unexpected required statuses %v", svcErr.RequiredStatus)
	}
}
