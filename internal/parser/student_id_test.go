package parser

import (
	"errors"
	"testing"
)

func TestExtractStudentID_Prefixed(t *testing.T) {
	t.Parallel()

	if got, err := ExtractStudentID("S4186054@rmit.edu.vn"); err != nil || got != "4186054" {
		t.Fatalf("S4186054@rmit.edu.vn: got=%q err=%v", got, err)
	}
	if got, err := ExtractStudentID("s3992383@rmit.edu.vn"); err != nil || got != "3992383" {
		t.Fatalf("s3992383@rmit.edu.vn: got=%q err=%v", got, err)
	}
}

func TestExtractStudentID_NoPrefix(t *testing.T) {
	t.Parallel()

	if got, err := ExtractStudentID("4019025@rmit.edu.vn"); err != nil || got != "4019025" {
		t.Fatalf("4019025@rmit.edu.vn: got=%q err=%v", got, err)
	}
}

func TestExtractStudentID_Invalid(t *testing.T) {
	t.Parallel()

	for _, email := range []string{
		"abc@x.com",
		"",
		"@x.com",
		"S@rmit.edu.vn",
		"S12a3@rmit.edu.vn",
	} {
		if _, err := ExtractStudentID(email); !errors.Is(err, ErrInvalidStudentID) {
			t.Fatalf("%q: expected ErrInvalidStudentID, got %v", email, err)
		}
	}
}

func TestCanonicalStudentID(t *testing.T) {
	t.Parallel()

	if got := CanonicalStudentID("4186054"); got != "4186054" {
		t.Fatalf("plain: got %q", got)
	}
	if got := CanonicalStudentID("4186054.0"); got != "4186054" {
		t.Fatalf("float rendering: got %q", got)
	}
	if got := CanonicalStudentID("  42.000 "); got != "42" {
		t.Fatalf("trailing zeros fraction: got %q", got)
	}
	if got := CanonicalStudentID("0042"); got != "42" {
		t.Fatalf("leading zeros: got %q", got)
	}
	if got := CanonicalStudentID("0"); got != "0" {
		t.Fatalf("zero: got %q", got)
	}
	if got := CanonicalStudentID("4186054.5"); got != "" {
		t.Fatalf("real fraction must not canonicalize: got %q", got)
	}
	if got := CanonicalStudentID("abc"); got != "" {
		t.Fatalf("non numeric: got %q", got)
	}
	if got := CanonicalStudentID(""); got != "" {
		t.Fatalf("empty: got %q", got)
	}
}
