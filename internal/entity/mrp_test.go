package entity

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{MRPStatusPlanned, MRPStatusOrdered, true},
		{MRPStatusPlanned, MRPStatusReceived, true},
		{MRPStatusOrdered, MRPStatusReceived, true},
		{MRPStatusOrdered, MRPStatusPlanned, false},
		{MRPStatusReceived, MRPStatusPlanned, false},
		{MRPStatusReceived, MRPStatusOrdered, false},
		{MRPStatusPlanned, MRPStatusPlanned, false},
		{MRPStatusReceived, MRPStatusReceived, false},
		{"unknown", MRPStatusOrdered, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%q, %q) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}
