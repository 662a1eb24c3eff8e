package calculation

import (
	"errors"
	"fmt"
	"testing"
)

func TestTagRoundTrip(t *testing.T) {
	tests := []struct {
		err error
		tag string
	}{
		{ErrDivisionByZero, TagDivisionByZero},
		{ErrInvalidOperation, TagInvalidOperation},
		{ErrInvalidInput, TagInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := TagOf(tt.err); got != tt.tag {
				t.Errorf("TagOf(%v) = %q, want %q", tt.err, got, tt.tag)
			}
			if got := TagOf(fmt.Errorf("wrapped: %w", tt.err)); got != tt.tag {
				t.Errorf("TagOf(wrapped %v) = %q, want %q", tt.err, got, tt.tag)
			}
			if got := ErrorForTag(tt.tag); !errors.Is(got, tt.err) {
				t.Errorf("ErrorForTag(%q) = %v, want %v", tt.tag, got, tt.err)
			}
		})
	}
}

func TestTagOf_Unknown(t *testing.T) {
	if got := TagOf(nil); got != "" {
		t.Errorf("TagOf(nil) = %q, want empty", got)
	}
	if got := TagOf(errors.New("boom")); got != "" {
		t.Errorf("TagOf(other) = %q, want empty", got)
	}
	if got := ErrorForTag("nope"); got != nil {
		t.Errorf("ErrorForTag(unknown) = %v, want nil", got)
	}
}
