package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorClass_String(t *testing.T) {
	tests := []struct {
		class    ErrorClass
		expected string
	}{
		{ErrorInvalid, "invalid"},
		{ErrorNotFound, "not_found"},
		{ErrorDomain, "domain"},
		{ErrorClass(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.class.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestIsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"invalid unit", ErrInvalidUnit, true},
		{"duplicate symbol", ErrDuplicateSymbol, true},
		{"duplicate base unit", ErrDuplicateBaseUnit, true},
		{"invalid config value", ErrInvalidConfigValue, true},
		{"unit not found", ErrUnitNotFound, false},
		{"no value", ErrNoValue, false},
		{"wrapped invalid unit", fmt.Errorf("register: %w", ErrInvalidUnit), true},
		{"classified invalid", &ClassifiedError{Class: ErrorInvalid, Err: fmt.Errorf("test")}, true},
		{"classified domain", &ClassifiedError{Class: ErrorDomain, Err: fmt.Errorf("test")}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsInvalid(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"unit not found", ErrUnitNotFound, true},
		{"no matching family", ErrNoMatchingFamily, true},
		{"invalid unit", ErrInvalidUnit, false},
		{"kind mismatch", ErrKindMismatch, false},
		{"wrapped not found", fmt.Errorf("lookup 'xyz': %w", ErrUnitNotFound), true},
		{"classified not found", &ClassifiedError{Class: ErrorNotFound, Err: fmt.Errorf("test")}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsNotFound(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestIsDomain(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"no value", ErrNoValue, true},
		{"zero factor", ErrZeroFactor, true},
		{"kind mismatch", ErrKindMismatch, true},
		{"unit not found", ErrUnitNotFound, false},
		{"invalid config value", ErrInvalidConfigValue, false},
		{"classified domain", &ClassifiedError{Class: ErrorDomain, Err: fmt.Errorf("test")}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsDomain(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v for error: %v", test.expected, result, test.err)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{"unit not found", ErrUnitNotFound, ErrorNotFound},
		{"no matching family", ErrNoMatchingFamily, ErrorNotFound},
		{"no value", ErrNoValue, ErrorDomain},
		{"zero factor", ErrZeroFactor, ErrorDomain},
		{"invalid unit", ErrInvalidUnit, ErrorInvalid},
		{"unknown error", fmt.Errorf("something else"), ErrorInvalid},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Classify(test.err)
			if result != test.expected {
				t.Errorf("expected %v, got %v", test.expected, result)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if Wrap(nil, "Registry", "Get", "lookup") != nil {
			t.Error("expected nil for nil error")
		}
	})

	t.Run("formats component context", func(t *testing.T) {
		err := Wrap(ErrUnitNotFound, "Registry", "Get", "symbol lookup")
		expected := "Registry.Get: symbol lookup failed: unit not found"
		if err.Error() != expected {
			t.Errorf("expected %q, got %q", expected, err.Error())
		}
		if !errors.Is(err, ErrUnitNotFound) {
			t.Error("wrapped error should match sentinel via errors.Is")
		}
	})
}

func TestWrapClassified(t *testing.T) {
	tests := []struct {
		name     string
		wrap     func(error, string, string, string) error
		expected ErrorClass
	}{
		{"WrapInvalid", WrapInvalid, ErrorInvalid},
		{"WrapNotFound", WrapNotFound, ErrorNotFound},
		{"WrapDomain", WrapDomain, ErrorDomain},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.wrap(nil, "C", "M", "a") != nil {
				t.Fatal("expected nil for nil error")
			}

			base := fmt.Errorf("boom")
			err := test.wrap(base, "Unit", "FromBase", "factor resolution")

			var ce *ClassifiedError
			if !errors.As(err, &ce) {
				t.Fatal("expected ClassifiedError in chain")
			}
			if ce.Class != test.expected {
				t.Errorf("expected class %v, got %v", test.expected, ce.Class)
			}
			if ce.Component != "Unit" || ce.Operation != "FromBase" {
				t.Errorf("unexpected context: %q %q", ce.Component, ce.Operation)
			}
			if !errors.Is(err, base) {
				t.Error("classified error should unwrap to the base error")
			}
		})
	}
}

func TestClassifiedError_Error(t *testing.T) {
	t.Run("message takes precedence", func(t *testing.T) {
		ce := &ClassifiedError{Err: fmt.Errorf("inner"), Message: "outer"}
		if ce.Error() != "outer" {
			t.Errorf("expected message, got %q", ce.Error())
		}
	})

	t.Run("falls back to wrapped error", func(t *testing.T) {
		ce := &ClassifiedError{Err: fmt.Errorf("inner")}
		if ce.Error() != "inner" {
			t.Errorf("expected inner error text, got %q", ce.Error())
		}
	})
}
