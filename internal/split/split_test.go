package split

import (
	"errors"
	"math"
	"testing"
)

func TestEven(t *testing.T) {
	cases := []struct {
		name  string
		total float64
		n     int
		want  []float64
	}{
		{"clean division", 1200, 4, []float64{300, 300, 300, 300}},
		{"remainder paise to first shares", 100, 3, []float64{33.34, 33.33, 33.33}},
		{"two way odd paise", 99.99, 2, []float64{50, 49.99}},
		{"single person", 450, 1, []float64{450}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Even(c.total, c.n)
			if err != nil {
				t.Fatalf("Even(%v, %d): %v", c.total, c.n, err)
			}
			if len(got) != len(c.want) {
				t.Fatalf("got %d shares, want %d", len(got), len(c.want))
			}
			var sum float64
			for i := range got {
				if math.Abs(got[i]-c.want[i]) > 1e-9 {
					t.Errorf("share %d = %v, want %v", i, got[i], c.want[i])
				}
				sum += got[i]
			}
			if math.Abs(sum-c.total) > 1e-9 {
				t.Errorf("shares sum to %v, want %v", sum, c.total)
			}
		})
	}
}

func TestEvenRejectsBadInput(t *testing.T) {
	if _, err := Even(0, 3); !errors.Is(err, ErrBadTotal) {
		t.Errorf("Even(0, 3) err = %v, want ErrBadTotal", err)
	}
	if _, err := Even(-10, 3); !errors.Is(err, ErrBadTotal) {
		t.Errorf("Even(-10, 3) err = %v, want ErrBadTotal", err)
	}
	if _, err := Even(100, 0); !errors.Is(err, ErrBadPeople) {
		t.Errorf("Even(100, 0) err = %v, want ErrBadPeople", err)
	}
}

func TestAmong(t *testing.T) {
	shares, err := Among(100, []string{"Asha", "Ravi", "Meera"})
	if err != nil {
		t.Fatalf("Among: %v", err)
	}
	if len(shares) != 3 {
		t.Fatalf("got %d shares, want 3", len(shares))
	}
	if shares[0].Name != "Asha" || shares[0].Amount != 33.34 {
		t.Errorf("first share = %+v, want Asha 33.34", shares[0])
	}
}
