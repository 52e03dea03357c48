package conic

import (
	"math"
	"strconv"
)

// Tolerances used by the exact-form resolver. The zero checks on A and B are
// tighter than Epsilon; the integer checks on H and the scaled A and B use
// Epsilon.
const (
	exactZero   = 1e-9
	maxExactInt = 1 << 30

	// maxExactScale bounds the search for an integer multiple of (a, b);
	// it covers inputs with up to three decimals.
	maxExactScale = 1000
)

// Radical is either a plain non-negative integer or the square root of one.
type Radical struct {
	N    int
	Root bool
}

// Float returns the numeric value of r.
func (r Radical) Float() float64 {
	if r.Root {
		return math.Sqrt(float64(r.N))
	}
	return float64(r.N)
}

// String renders r as "n" or "√n".
func (r Radical) String() string {
	if r.Root {
		return "√" + strconv.Itoa(r.N)
	}
	return strconv.Itoa(r.N)
}

// Term is a signed ratio of radicals: ±Num/Den.
type Term struct {
	Neg bool
	Num Radical
	Den Radical
}

// Float returns the numeric value of t.
func (t Term) Float() float64 {
	v := t.Num.Float() / t.Den.Float()
	if t.Neg {
		return -v
	}
	return v
}

// IsFraction reports whether t has a denominator other than 1.
func (t Term) IsFraction() bool {
	return t.Den.Root || t.Den.N != 1
}

// String renders t, e.g. "1", "-√3", "√2/2", "2/√5".
func (t Term) String() string {
	s := t.Num.String()
	if t.IsFraction() {
		s += "/" + t.Den.String()
	}
	if t.Neg && t.Num.N != 0 {
		s = "-" + s
	}
	return s
}

// ExactForm is the symbolic (cos θ, sin θ) pair of a principal rotation.
type ExactForm struct {
	Cos Term
	Sin Term
}

var (
	termZero     = Term{Num: Radical{N: 0}, Den: Radical{N: 1}}
	termOne      = Term{Num: Radical{N: 1}, Den: Radical{N: 1}}
	termHalfRoot = Term{Num: Radical{N: 2, Root: true}, Den: Radical{N: 2}}
)

// ResolveExact expresses (cos θ, sin θ) exactly, where a = a11 - a22 and
// b = a12. It reports false when no closed form exists, in which case
// callers fall back to decimal values of cos θ and sin θ.
//
// A closed form exists when b vanishes, when a vanishes, or when some
// integer multiple k·(a, b) with k <= 1000 is a pair of integers whose
// hypotenuse H is an integer too. The angle depends only on a:b, so with
// A = k·a:
//
//	cos θ = √((H+|A|)/(2H)),  |sin θ| = √((H-|A|)/(2H))
//
// with each ratio reduced by its GCD and perfect squares taken out of the
// radical. For example a = 0.6, b = 0.8 scales to (3, 4) and gives
// cos θ = 2/√5.
func ResolveExact(theta, a, b float64) (ExactForm, bool) {
	if !isFinite(a) || !isFinite(b) || !isFinite(theta) {
		return ExactForm{}, false
	}
	if math.Abs(b) < exactZero {
		return ExactForm{Cos: termOne, Sin: termZero}, true
	}
	if math.Abs(a) < exactZero {
		sin := termHalfRoot
		sin.Neg = b < 0
		return ExactForm{Cos: termHalfRoot, Sin: sin}, true
	}

	absA, h, ok := integerTriple(math.Abs(a), math.Abs(b))
	if !ok {
		return ExactForm{}, false
	}
	den := 2 * h
	return ExactForm{
		Cos: surd(h+absA, den, false),
		Sin: surd(h-absA, den, math.Sin(theta) < 0),
	}, true
}

// integerTriple finds the smallest k in [1, maxExactScale] for which k·a and
// k·b are integers with an integer hypotenuse, and returns k·a and that
// hypotenuse. a and b must be positive.
func integerTriple(a, b float64) (ka, h int, ok bool) {
	for k := 1.0; k <= maxExactScale; k++ {
		sa, sb := k*a, k*b
		if math.Hypot(sa, sb) > maxExactInt {
			return 0, 0, false
		}
		if !nearInteger(sa) || !nearInteger(sb) {
			continue
		}
		hyp := math.Hypot(math.Round(sa), math.Round(sb))
		if !nearInteger(hyp) {
			// Every further multiple scales the same irrational ratio.
			return 0, 0, false
		}
		ka, h = int(math.Round(sa)), int(math.Round(hyp))
		return ka, h, h > 0
	}
	return 0, 0, false
}

// surd builds ±√(n/d) after reducing n/d by their GCD.
func surd(n, d int, neg bool) Term {
	if g := gcd(n, d); g > 1 {
		n /= g
		d /= g
	}
	return Term{Neg: neg, Num: squareRadical(n), Den: squareRadical(d)}
}

// squareRadical returns √n, written as a plain integer when n is a perfect
// square.
func squareRadical(n int) Radical {
	r := int(math.Round(math.Sqrt(float64(n))))
	if r*r == n {
		return Radical{N: r}
	}
	return Radical{N: n, Root: true}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func nearInteger(x float64) bool {
	return math.Abs(x-math.Round(x)) < Epsilon
}
