package norm

import "testing"

func TestToHexCodePoints(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"AB", "00410042"},
		{"café", "00630061006600E9"},
		{"⾷", "2FB7"},
		{"\U0001d49c", "1D49C"}, // above BMP: 5 digits, no truncation
	}
	for _, tc := range cases {
		if got := ToHexCodePoints(tc.in); got != tc.want {
			t.Errorf("ToHexCodePoints(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestToHexCodePointsLengthForBMP(t *testing.T) {
	// Для строк без символов за пределами 4 hex-цифр длина ровно 4×руны.
	for _, s := range []string{"hello", "café", "⾷糸"} {
		got := ToHexCodePoints(s)
		if want := 4 * len([]rune(s)); len(got) != want {
			t.Errorf("len(ToHexCodePoints(%q)) = %d, want %d", s, len(got), want)
		}
	}
}
