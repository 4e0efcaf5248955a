package source_test

import (
	"testing"

	"github.com/cwbudde/go-uncgo/internal/source"
)

func TestDetectPlainUTF8(t *testing.T) {
	enc, text, err := source.Detect([]byte("int x;"))
	if err != nil {
		t.Fatal(err)
	}
	if enc != source.UTF8 {
		t.Fatalf("enc = %v, want UTF8", enc)
	}
	if text != "int x;" {
		t.Fatalf("text = %q", text)
	}
	if enc.HasBOM() {
		t.Fatal("plain UTF-8 should report no BOM")
	}
}

func TestDetectUTF8BOMStripped(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("int x;")...)
	enc, text, err := source.Detect(raw)
	if err != nil {
		t.Fatal(err)
	}
	if enc != source.UTF8BOM {
		t.Fatalf("enc = %v, want UTF8BOM", enc)
	}
	if text != "int x;" {
		t.Fatalf("text = %q, BOM should be stripped", text)
	}
}

func TestEncodeRoundTripsUTF8BOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("int x;")...)
	enc, text, err := source.Detect(raw)
	if err != nil {
		t.Fatal(err)
	}
	out, err := source.Encode(enc, text)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != string(raw) {
		t.Fatalf("round trip mismatch:\n got  %q\n want %q", out, raw)
	}
}

func TestEncodeRoundTripsUTF16LE(t *testing.T) {
	orig := "int x;"
	enc16, err := source.Encode(source.UTF16LE, orig)
	if err != nil {
		t.Fatal(err)
	}
	enc, text, err := source.Detect(enc16)
	if err != nil {
		t.Fatal(err)
	}
	if enc != source.UTF16LE {
		t.Fatalf("enc = %v, want UTF16LE", enc)
	}
	if text != orig {
		t.Fatalf("text = %q, want %q", text, orig)
	}
}
