package norm

import (
	"errors"
	"testing"
)

const (
	cafeDecomposed = "cafe\u0301" // 'e' + combining acute
	cafeComposed   = "caf\u00e9"  // precomposed U+00E9
	silkRadical    = "\u2f77"     // KANGXI RADICAL SILK
	silkCharacter  = "\u7cf8"     // CJK UNIFIED IDEOGRAPH silk
)

func TestNormalizeComposesCombiningSequence(t *testing.T) {
	n := Default()
	got, err := n.Normalize(cafeDecomposed)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if got != cafeComposed {
		t.Fatalf("expected %q, got %q", cafeComposed, got)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	samples := []string{
		"",
		"hello",
		cafeDecomposed,
		silkRadical,
		"\uff28\uff45\uff4c\uff4c\uff4f", // fullwidth "Hello"
		"\ufb01le",                       // ligature fi + "le"
		"mixed: A\u030a and \u212b",      // A + ring, angstrom sign
	}
	n := Default()
	for _, s := range samples {
		once, err := n.Normalize(s)
		if err != nil {
			t.Fatalf("Normalize(%q) returned error: %v", s, err)
		}
		twice, err := n.Normalize(once)
		if err != nil {
			t.Fatalf("Normalize(Normalize(%q)) returned error: %v", s, err)
		}
		if once != twice {
			t.Errorf("normalization of %q is not idempotent: %q vs %q", s, once, twice)
		}
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	n := Default()
	first, err := n.Normalize(cafeDecomposed)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := n.Normalize(cafeDecomposed)
		if err != nil {
			t.Fatalf("Normalize returned error on repeat %d: %v", i, err)
		}
		if again != first {
			t.Fatalf("repeat %d differs: %q vs %q", i, again, first)
		}
	}
}

func TestNormalizeRejectsInvalidUTF8(t *testing.T) {
	n := Default()
	if _, err := n.Normalize("ok\xffbroken"); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestIsEquivalentCompatibilityRadical(t *testing.T) {
	// Радикал и обычный иероглиф совпадают только после NFKC.
	n := Default()
	ok, err := n.IsEquivalent(silkRadical, silkCharacter)
	if err != nil {
		t.Fatalf("IsEquivalent returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected %q and %q to be NFKC-equivalent", silkRadical, silkCharacter)
	}

	ok, err = New(NFC).IsEquivalent(silkRadical, silkCharacter)
	if err != nil {
		t.Fatalf("IsEquivalent returned error: %v", err)
	}
	if ok {
		t.Fatalf("radical must not be NFC-equivalent to the plain character")
	}
}

func TestIsEquivalentDistinctStrings(t *testing.T) {
	ok, err := Default().IsEquivalent("alpha", "beta")
	if err != nil {
		t.Fatalf("IsEquivalent returned error: %v", err)
	}
	if ok {
		t.Fatalf("distinct strings reported equivalent")
	}
}

func TestCheckLineReturnsIssueForDecomposedLine(t *testing.T) {
	issue, err := Default().CheckLine(5, cafeDecomposed)
	if err != nil {
		t.Fatalf("CheckLine returned error: %v", err)
	}
	if issue == nil {
		t.Fatal("expected an issue for a decomposed line")
	}
	if issue.Line != 5 {
		t.Errorf("expected line 5, got %d", issue.Line)
	}
	if issue.Original != cafeDecomposed || issue.Normalized != cafeComposed {
		t.Errorf("unexpected issue strings: %q -> %q", issue.Original, issue.Normalized)
	}
	if len(issue.Changes) != 1 {
		t.Fatalf("expected 1 change, got %v", issue.Changes)
	}
	if issue.Changes[0].Pos != 3 {
		t.Errorf("expected change at pos 3 (start of decomposed sequence), got %d", issue.Changes[0].Pos)
	}
}

func TestCheckLineReturnsNilForNormalizedLine(t *testing.T) {
	issue, err := Default().CheckLine(3, "hello")
	if err != nil {
		t.Fatalf("CheckLine returned error: %v", err)
	}
	if issue != nil {
		t.Fatalf("expected nil issue for ASCII line, got %+v", issue)
	}
}

func TestCheckLinePropagatesInvalidUTF8(t *testing.T) {
	_, err := Default().CheckLine(1, "\xf0\x28")
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestParseForm(t *testing.T) {
	cases := map[string]Form{
		"nfc":  NFC,
		"NFD":  NFD,
		"nfkc": NFKC,
		"NfKd": NFKD,
		"":     NFKC,
	}
	for in, want := range cases {
		got, err := ParseForm(in)
		if err != nil {
			t.Fatalf("ParseForm(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseForm(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseForm("nfx"); err == nil {
		t.Fatal("expected error for unknown form")
	}
}

func TestStableRune(t *testing.T) {
	if !NFKC.StableRune('A') {
		t.Error("ASCII must be stable under every form")
	}
	if NFKC.StableRune('\u2f77') {
		t.Error("Kangxi radical must not be NFKC-stable")
	}
	if !NFC.StableRune('\u2f77') {
		t.Error("Kangxi radical is NFC-stable (compatibility decomposition only)")
	}
	if NFD.StableRune('\u00e9') {
		t.Error("precomposed \u00e9 decomposes under NFD")
	}
}
