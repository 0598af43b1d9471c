package fraction

import (
	"math"
	"testing"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		x, y, want int64
	}{
		{10, 10, 10},
		{20, 13, 1},
		{5, 10, 5},
		{1071, 462, 21},
		{462, 1071, 21},
		{-12, 18, 6},
		{12, -18, 6},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{1, math.MaxInt64, 1},

		// Equal absolute values keep the sign of x
		{-4, 4, -4},
		{4, -4, 4},
		{-4, -4, -4},
	}
	for _, tt := range tests {
		got := GCD(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("GCD(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	t.Run("int32", func(t *testing.T) {
		got := GCD[int32](12, 8)
		if got != 4 {
			t.Errorf("GCD[int32](12, 8) = %v, want %v", got, 4)
		}
	})
}

func TestLCM(t *testing.T) {
	tests := []struct {
		x, y, want int64
	}{
		{2, 2, 2},
		{5, 3, 15},
		{4, 6, 12},
		{-4, 6, 12},
		{4, -6, 12},
		{21, 6, 42},
		{0, 5, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		got := LCM(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("LCM(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAdd64(t *testing.T) {
	tests := []struct {
		x, y, want int64
		wantOk     bool
	}{
		{1, 2, 3, true},
		{-1, -2, -3, true},
		{math.MaxInt64, -1, math.MaxInt64 - 1, true},
		{-math.MaxInt64, 1, -math.MaxInt64 + 1, true},
		{math.MaxInt64, 1, 0, false},
		{-math.MaxInt64, -1, 0, false},
		{-math.MaxInt64, -math.MaxInt64, 0, false},
	}
	for _, tt := range tests {
		got, ok := add64(tt.x, tt.y)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("add64(%v, %v) = %v, %v, want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestSub64(t *testing.T) {
	tests := []struct {
		x, y, want int64
		wantOk     bool
	}{
		{3, 2, 1, true},
		{-3, 2, -5, true},
		{0, math.MaxInt64, -math.MaxInt64, true},
		{-1, math.MaxInt64, 0, false},
		{0, math.MinInt64, 0, false},
	}
	for _, tt := range tests {
		got, ok := sub64(tt.x, tt.y)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("sub64(%v, %v) = %v, %v, want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestMul64(t *testing.T) {
	tests := []struct {
		x, y, want int64
		wantOk     bool
	}{
		{0, math.MinInt64, 0, true},
		{3, 4, 12, true},
		{-3, 4, -12, true},
		{-3, -4, 12, true},
		{math.MaxInt64, 1, math.MaxInt64, true},
		{math.MaxInt64, -1, -math.MaxInt64, true},
		{math.MaxInt64, 2, 0, false},
		{1 << 32, 1 << 31, 0, false},
		{-(1 << 32), 1 << 31, 0, false},
		{math.MinInt64, 1, 0, false},
	}
	for _, tt := range tests {
		got, ok := mul64(tt.x, tt.y)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("mul64(%v, %v) = %v, %v, want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestPow64(t *testing.T) {
	tests := []struct {
		x      int64
		n      int
		want   int64
		wantOk bool
	}{
		{7, 0, 1, true},
		{0, 0, 1, true},
		{0, 5, 0, true},
		{-3, 3, -27, true},
		{-3, 4, 81, true},
		{2, 62, 1 << 62, true},
		{10, 18, 1_000_000_000_000_000_000, true},
		{2, 63, 0, false},
		{-2, 63, 0, false},
		{10, 19, 0, false},
		{2, -1, 0, false},
	}
	for _, tt := range tests {
		got, ok := pow64(tt.x, tt.n)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("pow64(%v, %v) = %v, %v, want %v, %v", tt.x, tt.n, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestCmpMul(t *testing.T) {
	tests := []struct {
		a, b, c, d int64
		want       int
	}{
		{1, 2, 2, 1, 0},
		{0, 5, 0, 7, 0},
		{0, 5, 1, 7, -1},
		{-2, 3, -3, 2, 0},
		{-2, 3, -1, 3, -1},
		{-1, math.MaxInt64, 1, 1, -1},
		{math.MaxInt64, math.MaxInt64, math.MaxInt64 - 1, math.MaxInt64, 1},
		{-math.MaxInt64, math.MaxInt64, -math.MaxInt64 + 1, math.MaxInt64, -1},
		{math.MinInt64, 1, -math.MaxInt64, 1, -1},
	}
	for _, tt := range tests {
		got := cmpMul(tt.a, tt.b, tt.c, tt.d)
		if got != tt.want {
			t.Errorf("cmpMul(%v, %v, %v, %v) = %v, want %v", tt.a, tt.b, tt.c, tt.d, got, tt.want)
		}
	}
}
