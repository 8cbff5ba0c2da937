package token

import "testing"

func TestUnquote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`""`, ""},
		{`"hello"`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb\rc"`, "a\tb\rc"},
		{`"\"\\\/"`, `"\/`},
		{`"\b\f"`, "\b\f"},
		{`"\u0041"`, "A"},
		{`"\u00e9"`, "é"},
		{`"\u20ac"`, "€"},
		{`"\u20AC"`, "€"},
		{`"\u0000"`, "\x00"},
		{`"héllo"`, "héllo"},
	}
	for _, tt := range tests {
		n, err := scanQuoted([]byte(tt.in))
		if err != nil {
			t.Errorf("scanQuoted(%s): %v", tt.in, err)
			continue
		}
		if n != len(tt.in) {
			t.Errorf("scanQuoted(%s) = %d, want %d", tt.in, n, len(tt.in))
		}
		if got := Unquote([]byte(tt.in)); got != tt.want {
			t.Errorf("Unquote(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", `""`},
		{"hello", `"hello"`},
		{"a\nb", `"a\nb"`},
		{"tab\there", `"tab\there"`},
		{`back\slash`, `"back\\slash"`},
		{`say "hi"`, `"say \"hi\""`},
		// \b and \f are escapes on input only; output passes the
		// raw bytes through.
		{"\b", "\"\b\""},
		{"é€", `"é€"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	for _, s := range []string{
		"", "plain", "with \"quotes\"", "line\nbreak", "mixed\t\r\n\\",
		"unicode é € 漢",
	} {
		q := Quote(s)
		if _, err := scanQuoted([]byte(q)); err != nil {
			t.Errorf("scanQuoted(Quote(%q)): %v", s, err)
			continue
		}
		if got := Unquote([]byte(q)); got != s {
			t.Errorf("Unquote(Quote(%q)) = %q", s, got)
		}
	}
}
