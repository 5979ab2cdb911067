// Package testutil provides shared test utilities for the chess rules engine.
package testutil

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		reportf(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertSquares compares two square lists element by element, in order.
// A nil and an empty list are considered equal.
func AssertSquares(t *testing.T, got, want []chess.Square, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		reportf(t, msgAndArgs, "squares mismatch (-want +got):\n%s", diff)
	}
}

// AssertSameSquares compares two square lists ignoring order.
func AssertSameSquares(t *testing.T, got, want []chess.Square, msgAndArgs ...interface{}) {
	t.Helper()
	opts := cmp.Options{
		cmpopts.EquateEmpty(),
		cmpopts.SortSlices(func(a, b chess.Square) bool {
			if a.File != b.File {
				return a.File < b.File
			}
			return a.Rank < b.Rank
		}),
	}
	if diff := cmp.Diff(want, got, opts); diff != "" {
		reportf(t, msgAndArgs, "square set mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		reportf(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertErrorIs fails if err does not match target under errors.Is.
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		reportf(t, msgAndArgs, "error = %v, want %v", err, target)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		reportf(t, msgAndArgs, "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t *testing.T, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		reportf(t, msgAndArgs, "expected false but got true")
	}
}

// AssertNil fails if got is not nil.
// It handles both untyped nil and typed nil (e.g., (*chess.Piece)(nil)).
func AssertNil(t *testing.T, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if !isNil(got) {
		reportf(t, msgAndArgs, "expected nil but got %v", got)
	}
}

// AssertNotNil fails if got is nil.
func AssertNotNil(t *testing.T, got interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if isNil(got) {
		reportf(t, msgAndArgs, "expected non-nil value but got nil")
	}
}

func reportf(t *testing.T, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		t.Errorf("%s: %s", msg, text)
		return
	}
	t.Error(text)
}

// isNil checks if a value is nil, handling both untyped and typed nils.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
