package toml

import (
	"math"
	"strings"
	"testing"
)

func TestParseIntTokenBases(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"1_000", 1000},
		{"0xDEADBEEF", 0xDEADBEEF},
		{"0o755", 0o755},
		{"0b1010", 0b1010},
		{"-17", -17},
		{"+17", 17},
	}
	for _, c := range cases {
		got, err := parseIntToken(c.in)
		if err != nil {
			t.Fatalf("parseIntToken(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("parseIntToken(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseFloatTokenDecimalAndUnderscore(t *testing.T) {
	if f, err := parseFloatToken("3.14"); err != nil || f != 3.14 {
		t.Fatalf("parseFloatToken(3.14) = (%v, %v)", f, err)
	}
	if f, err := parseFloatToken("1_000.5"); err != nil || f != 1000.5 {
		t.Fatalf("parseFloatToken(1_000.5) = (%v, %v)", f, err)
	}
}

func TestParseValueTokenSpecialFloats(t *testing.T) {
	v, err := parseValueToken("+inf", 1)
	if err != nil {
		t.Fatalf("parseValueToken(+inf): %v", err)
	}
	f, ok := v.(*Scalar).AsFloat()
	if !ok || !math.IsInf(f, +1) {
		t.Fatalf("+inf parsed as %v", f)
	}

	v, err = parseValueToken("nan", 1)
	if err != nil {
		t.Fatalf("parseValueToken(nan): %v", err)
	}
	f, ok = v.(*Scalar).AsFloat()
	if !ok || !math.IsNaN(f) {
		t.Fatalf("nan parsed as %v", f)
	}
}

func TestParseDatetimeTokenOffset(t *testing.T) {
	dt, err := parseDatetimeToken("1979-05-27T07:32:00Z")
	if err != nil {
		t.Fatalf("parseDatetimeToken: %v", err)
	}
	want := Datetime{Year: 1979, Month: 5, Day: 27, Hour: 7, Minute: 32, Second: 0, HasOffset: true}
	if !dt.Equal(want) {
		t.Fatalf("parseDatetimeToken = %+v, want %+v", dt, want)
	}
}

func TestParseDatetimeTokenRejectsBareDate(t *testing.T) {
	if _, err := parseDatetimeToken("1979-05-27"); err == nil {
		t.Fatal("expected an error for a bare date with no time/offset")
	}
}

func TestParseDatetimeTokenRejectsBareTime(t *testing.T) {
	if _, err := parseDatetimeToken("07:32:00"); err == nil {
		t.Fatal("expected an error for a bare time")
	}
}

func TestParseDatetimeTokenRejectsMissingOffset(t *testing.T) {
	if _, err := parseDatetimeToken("1979-05-27T07:32:00"); err == nil {
		t.Fatal("expected an error for a datetime with no UTC offset")
	}
}

func TestParseValueTokenRejectsBareDate(t *testing.T) {
	// Too short to satisfy looksLikeDateShape's length >= 20 requirement,
	// so it falls through to the numeric dispatcher and fails there
	// instead: a bare date simply isn't a value this grammar accepts.
	if _, err := parseValueToken("1979-05-27", 1); err == nil {
		t.Fatal("expected an error for a bare date value")
	}
}

func TestParseValueTokenRejectsDatetimeMissingOffset(t *testing.T) {
	// Long enough (with a fractional-second part) to pass
	// looksLikeDateShape's length check and reach parseDatetimeToken,
	// which then rejects it for lacking an offset.
	_, err := parseValueToken("1979-05-27T07:32:00.5", 1)
	if err == nil {
		t.Fatal("expected an error for a datetime with no UTC offset")
	}
	if !strings.Contains(err.Error(), "malformed-date") {
		t.Fatalf("error = %v, want it to mention malformed-date", err)
	}
}

func TestParseDatetimeTokenFractionalSeconds(t *testing.T) {
	dt, err := parseDatetimeToken("1979-05-27T07:32:00.999999-07:00")
	if err != nil {
		t.Fatalf("parseDatetimeToken: %v", err)
	}
	if dt.Microsecond != 999999 {
		t.Fatalf("Microsecond = %d, want 999999", dt.Microsecond)
	}
	if !dt.HasOffset || dt.OffsetMinutes != -7*60 {
		t.Fatalf("offset = %d, want -420", dt.OffsetMinutes)
	}
}

func TestDecodeBasicStringEscapes(t *testing.T) {
	got, err := decodeBasicString(`a\tb\nc\"d`, false)
	if err != nil {
		t.Fatalf("decodeBasicString error: %v", err)
	}
	if want := "a\tb\nc\"d"; got != want {
		t.Fatalf("decodeBasicString = %q, want %q", got, want)
	}
}

func TestDecodeBasicStringRejectsUnicodeEscapes(t *testing.T) {
	if _, err := decodeBasicString("\\u00e9", false); err == nil {
		t.Fatal("expected an error for a \\u escape")
	}
	if _, err := decodeBasicString(`\U0001F600`, false); err == nil {
		t.Fatal("expected an error for a \\U escape")
	}
}

func TestParseIntTokenOverflowIsMalformedNumber(t *testing.T) {
	if _, err := parseIntToken("9999999999999999999"); err == nil {
		t.Fatal("expected an error for an integer literal that overflows int64")
	}
}

func TestParseValueTokenOverflowDoesNotFallBackToFloat(t *testing.T) {
	_, err := parseValueToken("9999999999999999999", 1)
	if err == nil {
		t.Fatal("expected an error, not a silent float conversion")
	}
	if !strings.Contains(err.Error(), "malformed-number") {
		t.Fatalf("error = %v, want it to mention malformed-number", err)
	}
}

func TestParseIntTokenRejectsBadUnderscorePlacement(t *testing.T) {
	for _, in := range []string{"_1", "1_", "1__2", "1_.0"} {
		if _, err := parseIntToken(in); err == nil {
			t.Fatalf("parseIntToken(%q): expected an error", in)
		}
	}
}

func TestParseFloatTokenRejectsBadUnderscorePlacement(t *testing.T) {
	for _, in := range []string{"_1.0", "1.0_", "1__000.0"} {
		if _, err := parseFloatToken(in); err == nil {
			t.Fatalf("parseFloatToken(%q): expected an error", in)
		}
	}
}

func TestDecodeBasicStringMultilineContinuation(t *testing.T) {
	got, err := decodeBasicString("first\\\n   second", true)
	if err != nil {
		t.Fatalf("decodeBasicString error: %v", err)
	}
	if want := "firstsecond"; got != want {
		t.Fatalf("decodeBasicString = %q, want %q", got, want)
	}
}

func TestParseArrayTokenRejectsMixedTypes(t *testing.T) {
	_, err := parseArrayToken(`[1, "two"]`, 1)
	if err == nil {
		t.Fatal("expected an error for a mixed-type array literal")
	}
}

func TestParseInlineTableToken(t *testing.T) {
	n, err := parseInlineTableToken(`{x = 1, y = 2}`, 1)
	if err != nil {
		t.Fatalf("parseInlineTableToken error: %v", err)
	}
	x, ok := n.Int("x")
	if !ok || x != 1 {
		t.Fatalf("x = (%d, %v), want (1, true)", x, ok)
	}
}
