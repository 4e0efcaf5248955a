package chartable

import "testing"

func TestIdentStart(t *testing.T) {
	for _, b := range []byte{'a', 'Z', '_', '$'} {
		if !IsIdentStart(b) {
			t.Errorf("IsIdentStart(%q) = false, want true", b)
		}
	}
	for _, b := range []byte{'0', ' ', '+', '('} {
		if IsIdentStart(b) {
			t.Errorf("IsIdentStart(%q) = true, want false", b)
		}
	}
}

func TestIdentCont(t *testing.T) {
	for _, b := range []byte{'a', '9', '_'} {
		if !IsIdentCont(b) {
			t.Errorf("IsIdentCont(%q) = false, want true", b)
		}
	}
	if IsIdentCont('-') {
		t.Error("IsIdentCont('-') = true, want false")
	}
}

func TestDelimiters(t *testing.T) {
	pairs := map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}
	for open, close_ := range pairs {
		if !IsOpenDelim(open) {
			t.Errorf("IsOpenDelim(%q) = false", open)
		}
		if !IsCloseDelim(close_) {
			t.Errorf("IsCloseDelim(%q) = false", close_)
		}
		got, ok := MatchOf(open)
		if !ok || got != close_ {
			t.Errorf("MatchOf(%q) = %q, %v; want %q, true", open, got, ok, close_)
		}
	}
	if _, ok := MatchOf(')'); ok {
		t.Error("MatchOf(')') should not report a match; closers are not openers")
	}
}

func TestNonASCIIRejected(t *testing.T) {
	if IsIdentStart(200) || IsIdentCont(200) || IsOpenDelim(200) {
		t.Error("bytes >= 128 must not classify via the ASCII table")
	}
}
