package arith

import "testing"

func TestLCMAll(t *testing.T) {
	cases := []struct {
		name string
		in   []int64
		want int64
	}{
		{"single", []int64{5}, 5},
		{"pair", []int64{4, 6}, 12},
		{"three", []int64{5, 10, 6}, 30},
		{"coprime", []int64{7, 13}, 91},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := LCMAll(c.in)
			if got != c.want {
				t.Errorf("LCMAll(%v) = %d, want %d", c.in, got, c.want)
			}
		})
	}
}

func TestLCMAllPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty slice")
		}
	}()
	LCMAll(nil)
}

func TestCeilDiv(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, 5, 2},
	}
	for _, c := range cases {
		if got := CeilDiv(c.a, c.b); got != c.want {
			t.Errorf("CeilDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{0, 5, 0},
		{4, 5, 0},
		{5, 5, 1},
		{9, 5, 1},
		{10, 5, 2},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
