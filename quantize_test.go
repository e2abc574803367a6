package digitbin

import (
	"math"
	"testing"
)

func TestQuantizeBasic(t *testing.T) {
	tests := []struct {
		name  string
		w     float64
		p     int
		units int64
	}{
		{"zero", 0.0, 3, 0},
		{"half", 0.5, 3, 500},
		{"exact p digits", 0.123, 3, 123},
		{"truncates beyond p", 0.12345, 3, 123},
		{"truncates beyond p, alt", 0.12300, 3, 123},
		{"small precision", 0.9, 1, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, units, err := quantize(tt.w, tt.p)
			if err != nil {
				t.Fatalf("quantize(%v, %d): unexpected error %v", tt.w, tt.p, err)
			}
			if units.Int64() != tt.units {
				t.Fatalf("quantize(%v, %d) units = %v, want %d", tt.w, tt.p, units, tt.units)
			}
			if len(path) != tt.p {
				t.Fatalf("quantize(%v, %d) path len = %d, want %d", tt.w, tt.p, len(path), tt.p)
			}
			if unitsFromDigits(path).Int64() != tt.units {
				t.Fatalf("unitsFromDigits(digitsFromUnits) roundtrip mismatch")
			}
		})
	}
}

func TestQuantizeClampsOneToAllNines(t *testing.T) {
	path, units, err := quantize(1.0, 3)
	if err != nil {
		t.Fatalf("quantize(1.0, 3): unexpected error %v", err)
	}
	if units.Int64() != 999 {
		t.Fatalf("quantize(1.0, 3) units = %v, want 999", units)
	}
	for _, d := range path {
		if d != 9 {
			t.Fatalf("quantize(1.0, 3) path = %v, want all nines", path)
		}
	}
}

func TestQuantizeRejectsInvalidWeights(t *testing.T) {
	bad := []float64{-0.1, 1.1, math.NaN(), math.Inf(1), math.Inf(-1)}
	for _, w := range bad {
		if _, _, err := quantize(w, 3); err != ErrInvalidWeight {
			t.Fatalf("quantize(%v, 3) err = %v, want ErrInvalidWeight", w, err)
		}
	}
}

func TestDigitsFromUnitsOrdering(t *testing.T) {
	// 0.123 at p=3 must decode to digits (1,2,3), most significant first.
	path, _, err := quantize(0.123, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := digitPath{1, 2, 3}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("digit path = %v, want %v", path, want)
		}
	}
}
