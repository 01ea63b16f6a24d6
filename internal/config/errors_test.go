package config

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestConfigErrorMessage(t *testing.T) {
	err := NewIOError("/x/config.yaml", "failed to read config file", fs.ErrPermission)

	if !strings.Contains(err.Error(), "I/O Error: failed to read config file") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, fs.ErrPermission) {
		t.Error("Unwrap should expose the underlying error")
	}
	if !strings.Contains(Hint(err), "/x/config.yaml") {
		t.Errorf("Hint() should name the file, got %q", Hint(err))
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want func(error) bool
	}{
		{"io", NewIOError("", "m", nil), IsIOError},
		{"parse", NewParseError("", "m", nil), IsParseError},
		{"validation", NewValidationError("m", []error{errors.New("a")}), IsValidationError},
		{"not found", NewNotFoundError("x"), IsNotFoundError},
	}

	predicates := []func(error) bool{IsIOError, IsParseError, IsValidationError, IsNotFoundError}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := 0
			for _, p := range predicates {
				if p(tt.err) {
					matches++
				}
			}
			if !tt.want(tt.err) || matches != 1 {
				t.Errorf("%v matched %d predicates", tt.err, matches)
			}

			wrapped := errors.Join(errors.New("context"), tt.err)
			if !tt.want(wrapped) {
				t.Error("predicate should see through wrapping")
			}
		})
	}
}

func TestValidationErrorJoinsProblems(t *testing.T) {
	err := NewValidationError("bad", []error{errors.New("first"), errors.New("second")})
	msg := err.Error()
	if !strings.Contains(msg, "first") || !strings.Contains(msg, "second") {
		t.Errorf("Error() = %q, should list every problem", msg)
	}
}

func TestHintForForeignError(t *testing.T) {
	if got := Hint(errors.New("boom")); got == "" {
		t.Error("Hint() should never be empty")
	}
}
