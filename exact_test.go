package conic

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveExact(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		wantCos  string
		wantSin  string
		wantNone bool
	}{
		{name: "no cross term", a: 0, b: 0, wantCos: "1", wantSin: "0"},
		{name: "no cross term, unequal diagonal", a: 3, b: 0, wantCos: "1", wantSin: "0"},
		{name: "equal diagonal, positive", a: 0, b: 1, wantCos: "√2/2", wantSin: "√2/2"},
		{name: "equal diagonal, negative", a: 0, b: -7, wantCos: "√2/2", wantSin: "-√2/2"},
		{name: "3-4-5", a: 3, b: 4, wantCos: "2/√5", wantSin: "1/√5"},
		{name: "3-4-5 negative angle", a: -3, b: 4, wantCos: "2/√5", wantSin: "-1/√5"},
		{name: "4-3-5", a: 4, b: 3, wantCos: "3/√10", wantSin: "1/√10"},
		{name: "6-8-10 reduces", a: 6, b: 8, wantCos: "2/√5", wantSin: "1/√5"},
		{name: "12-5-13", a: 12, b: 5, wantCos: "5/√26", wantSin: "1/√26"},
		{name: "5-12-13", a: 5, b: -12, wantCos: "3/√13", wantSin: "-2/√13"},
		{name: "irrational hypotenuse", a: 1, b: 1, wantNone: true},
		{name: "scaled 3-4-5 from fractions", a: 0.6, b: 0.8, wantCos: "2/√5", wantSin: "1/√5"},
		{name: "scaled 3-4-5 from halves", a: 1.5, b: 2, wantCos: "2/√5", wantSin: "1/√5"},
		{name: "scaled 5-12-13, negative", a: -0.05, b: 0.12, wantCos: "3/√13", wantSin: "-2/√13"},
		{name: "rational ratio, irrational hypotenuse", a: 0.5, b: 0.5, wantNone: true},
		{name: "irrational ratio", a: 1, b: math.Sqrt2, wantNone: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theta := RotationAngle(Coefficients{A11: tt.a, A12: tt.b})
			got, ok := ResolveExact(theta, tt.a, tt.b)
			if tt.wantNone {
				if ok {
					t.Fatalf("ResolveExact(%v, %v) = %v, want absent", tt.a, tt.b, got)
				}
				return
			}
			if !ok {
				t.Fatalf("ResolveExact(%v, %v) absent, want %s, %s", tt.a, tt.b, tt.wantCos, tt.wantSin)
			}
			if got.Cos.String() != tt.wantCos || got.Sin.String() != tt.wantSin {
				t.Errorf("ResolveExact(%v, %v) = (%s, %s), want (%s, %s)",
					tt.a, tt.b, got.Cos, got.Sin, tt.wantCos, tt.wantSin)
			}
		})
	}
}

func TestResolveExactStructure(t *testing.T) {
	got, ok := ResolveExact(0.5*math.Atan(4.0/3.0), 3, 4)
	if !ok {
		t.Fatal("ResolveExact(3, 4) absent")
	}
	want := ExactForm{
		Cos: Term{Num: Radical{N: 2}, Den: Radical{N: 5, Root: true}},
		Sin: Term{Num: Radical{N: 1}, Den: Radical{N: 5, Root: true}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ResolveExact(3, 4) mismatch (-want +got):\n%s", diff)
	}
}

// Whenever a closed form is reported it must agree with the decimal values.
func TestResolveExactRoundTripDecimals(t *testing.T) {
	for a := -20; a <= 20; a++ {
		for b := -20; b <= 20; b++ {
			c := Coefficients{A11: float64(a) / 10, A12: float64(b) / 10}
			g := Analyze(c)
			exact, ok := ResolveExact(g.Theta, c.A11-c.A22, c.A12)
			if !ok {
				continue
			}
			if d := math.Abs(exact.Cos.Float() - g.Cos()); d > 1e-6 {
				t.Errorf("a=%v b=%v: cos %s = %v, decimal %v", c.A11, c.A12, exact.Cos, exact.Cos.Float(), g.Cos())
			}
			if d := math.Abs(exact.Sin.Float() - g.Sin()); d > 1e-6 {
				t.Errorf("a=%v b=%v: sin %s = %v, decimal %v", c.A11, c.A12, exact.Sin, exact.Sin.Float(), g.Sin())
			}
		}
	}
}

func TestResolveExactRoundTrip(t *testing.T) {
	found := 0
	for a := -15; a <= 15; a++ {
		for b := -15; b <= 15; b++ {
			c := Coefficients{A11: float64(a), A12: float64(b)}
			g := Analyze(c)
			exact, ok := ResolveExact(g.Theta, c.A11-c.A22, c.A12)
			if !ok {
				continue
			}
			found++
			if d := math.Abs(exact.Cos.Float() - g.Cos()); d > 1e-6 {
				t.Errorf("a=%d b=%d: cos %s = %v, decimal %v", a, b, exact.Cos, exact.Cos.Float(), g.Cos())
			}
			if d := math.Abs(exact.Sin.Float() - g.Sin()); d > 1e-6 {
				t.Errorf("a=%d b=%d: sin %s = %v, decimal %v", a, b, exact.Sin, exact.Sin.Float(), g.Sin())
			}
		}
	}
	// 31 axis-aligned and 30 diagonal cases, plus Pythagorean pairs.
	if found <= 61 {
		t.Errorf("only %d closed forms found, want Pythagorean pairs too", found)
	}
}

func TestResolveExactNeverPanics(t *testing.T) {
	inputs := []float64{0, 1e-12, -1e-12, 1e-7, 1, -1, 1e9, 1e300, math.Inf(1), math.NaN()}
	for _, a := range inputs {
		for _, b := range inputs {
			for _, theta := range []float64{0, math.Pi / 4, -0.3, math.NaN()} {
				if got, ok := ResolveExact(theta, a, b); ok {
					if math.IsNaN(got.Cos.Float()) || math.IsNaN(got.Sin.Float()) {
						t.Errorf("ResolveExact(%v, %v, %v) = %v, non-finite terms", theta, a, b, got)
					}
				}
			}
		}
	}
}

func TestTermString(t *testing.T) {
	tests := []struct {
		term Term
		want string
	}{
		{termZero, "0"},
		{Term{Neg: true, Num: Radical{N: 0}, Den: Radical{N: 1}}, "0"},
		{termOne, "1"},
		{Term{Neg: true, Num: Radical{N: 3, Root: true}, Den: Radical{N: 1}}, "-√3"},
		{termHalfRoot, "√2/2"},
		{Term{Num: Radical{N: 1}, Den: Radical{N: 2}}, "1/2"},
	}
	for _, tt := range tests {
		if got := tt.term.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.term, got, tt.want)
		}
	}
}

func TestSurdReduction(t *testing.T) {
	tests := []struct {
		n, d int
		want string
	}{
		{8, 10, "2/√5"},
		{9, 10, "3/√10"},
		{2, 8, "1/2"},
		{3, 4, "√3/2"},
		{6, 3, "√2"},
		{0, 10, "0"},
	}
	for _, tt := range tests {
		if got := surd(tt.n, tt.d, false).String(); got != tt.want {
			t.Errorf("surd(%d, %d) = %q, want %q", tt.n, tt.d, got, tt.want)
		}
	}
}
