package transport

import "testing"

func TestMatchPort(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"Launchpad X LPX MIDI", "launchpad", true},
		{"Launchpad X LPX MIDI", "LPX", true},
		{"IAC Driver Bus 1", "launchpad", false},
		{"Any Port", "", true},
		{"", "x", false},
	}
	for _, c := range cases {
		if got := MatchPort(c.name, c.pattern); got != c.want {
			t.Errorf("MatchPort(%q, %q) = %v want %v", c.name, c.pattern, got, c.want)
		}
	}
}
