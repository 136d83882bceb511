package testutil

import (
	"errors"
	"testing"

	apperrors "spendwise/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected code and
// returns it for further inspection.
func AssertAppError(t *testing.T, err error, expectedCode string) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
	return appErr
}

// AssertSentinel checks that err is, or wraps, the given sentinel.
func AssertSentinel(t *testing.T, err error, sentinel error) {
	t.Helper()

	if !errors.Is(err, sentinel) {
		t.Fatalf("expected %v, got %v", sentinel, err)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertOwnedBy fails the test if any item belongs to a user other than userID.
func AssertOwnedBy[T any](t *testing.T, userID string, items []T, owner func(T) string) {
	t.Helper()

	for i, item := range items {
		if got := owner(item); got != userID {
			t.Errorf("item %d belongs to %q, want %q", i, got, userID)
		}
	}
}
