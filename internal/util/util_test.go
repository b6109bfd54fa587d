package util

import "testing"

func TestNoun(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    int
		want string
	}{
		{0, "wins"}, {1, "win"}, {-1, "win"}, {2, "wins"}, {11, "wins"},
	}
	for _, c := range cases {
		if got := Noun(c.n, "win", "wins"); got != c.want {
			t.Errorf("Noun(%d): expected %q got %q", c.n, c.want, got)
		}
	}
}

func TestClamp01(t *testing.T) {
	t.Parallel()

	cases := map[float64]float64{-0.5: 0, 0: 0, 0.25: 0.25, 1: 1, 3: 1}
	for in, want := range cases {
		if got := Clamp01(in); got != want {
			t.Errorf("Clamp01(%v): expected %v got %v", in, want, got)
		}
	}
}
