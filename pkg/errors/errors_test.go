// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and detail helpers

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/unbrew/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "exec_error",
			code:    errors.ErrBrewExec,
			message: "brew list failed",
			wantStr: "[BREW_EXEC] brew list failed",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "no command specified",
			wantStr: "[INVALID_INPUT] no command specified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrBrewExec, "brew %s exited with status %d", "rm", 1)
	if err.Message != "brew rm exited with status 1" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("unexpected end of JSON input")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrBrewDecode, "unable to parse brew info result")

		if err.Code != errors.ErrBrewDecode {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrBrewDecode)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[BREW_DECODE] unable to parse brew info result: unexpected end of JSON input"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrBrewExec, "failed to run %s", "brew")
		if err.Message != "failed to run brew" {
			t.Errorf("Wrapf() message = %q", err.Message)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrBrewExec, "brew rm failed").
		WithDetail(errors.DetailCommand, "brew").
		WithDetail(errors.DetailExitCode, 1)

	if err.Details[errors.DetailCommand] != "brew" {
		t.Errorf("WithDetail() command = %v, want %v", err.Details[errors.DetailCommand], "brew")
	}

	if err.Details[errors.DetailExitCode] != 1 {
		t.Errorf("WithDetail() exit_code = %v, want %v", err.Details[errors.DetailExitCode], 1)
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		errors.DetailCommand:  "brew",
		errors.DetailExitCode: 1,
		errors.DetailStderr:   "Error: No such keg",
	}

	err := errors.New(errors.ErrBrewExec, "brew rm failed").
		WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrBrewExec, "error 1")
	err2 := errors.New(errors.ErrBrewExec, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with UnbrewError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrBrewDecode, "bad json"),
			code:     errors.ErrBrewDecode,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrBrewDecode, "bad json"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrConfigParse, "bad toml"),
			code:     errors.ErrConfigParse,
			expected: true,
		},
		{
			name:     "non_unbrew_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrBrewExec,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrBrewExec,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "unbrew_error",
			err:      errors.New(errors.ErrConfigLoad, "no config"),
			expected: errors.ErrConfigLoad,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStderr(t *testing.T) {
	t.Run("carries_stderr", func(t *testing.T) {
		err := errors.New(errors.ErrBrewExec, "brew rm failed").
			WithDetail(errors.DetailStderr, "Error: No such keg: /opt/homebrew/Cellar/foo\n")
		if got := errors.Stderr(err); got != "Error: No such keg: /opt/homebrew/Cellar/foo\n" {
			t.Errorf("Stderr() = %q", got)
		}
	})

	t.Run("wrapped_in_standard_error", func(t *testing.T) {
		inner := errors.New(errors.ErrBrewExec, "failed").WithDetail(errors.DetailStderr, "boom")
		outer := stderrors.Join(stderrors.New("context"), inner)
		if got := errors.Stderr(outer); got != "boom" {
			t.Errorf("Stderr() = %q, want boom", got)
		}
	})

	t.Run("no_details", func(t *testing.T) {
		if got := errors.Stderr(stderrors.New("plain")); got != "" {
			t.Errorf("Stderr() = %q, want empty", got)
		}
	})
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	decodeErr := errors.Wrap(rootCause, errors.ErrBrewDecode, "cannot decode")
	topErr := errors.Wrap(decodeErr, errors.ErrInternal, "orphan scan failed")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(topErr, errors.ErrInternal) {
			t.Error("Top level should have ErrInternal code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var unbrewErr *errors.UnbrewError
		if stderrors.As(topErr.Unwrap(), &unbrewErr) {
			if !errors.IsErrorCode(unbrewErr, errors.ErrBrewDecode) {
				t.Error("Middle error should have ErrBrewDecode code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(topErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
