package config

import "testing"

func TestUnescapeFormat(t *testing.T) {
	cases := []struct{ in, want string }{
		{`%Y-%m-%d`, `%Y-%m-%d`},
		{`%Y-%m-%d\n`, "%Y-%m-%d\n"},
		{`a\tb`, "a\tb"},
		{`a\\b`, `a\b`},
		{`trailing\`, `trailing\`},
		{`\x`, `\x`},
	}
	for _, c := range cases {
		if got := UnescapeFormat(c.in); got != c.want {
			t.Errorf("UnescapeFormat(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestResolve_FlagsOverrideDefaults(t *testing.T) {
	flags := Options{OutputFormat: "%F", Quiet: true, Next: true}
	got := Resolve(flags)
	if got.OutputFormat != "%F" || !got.Quiet || !got.Next {
		t.Errorf("got %+v", got)
	}
}

func TestResolve_EmptyFlagsDoNotClobberDefaults(t *testing.T) {
	got := Resolve(Options{})
	if got.OutputFormat != "" {
		t.Errorf("expected no config file present in test environment, got format %q", got.OutputFormat)
	}
}
