package curve

import (
	"errors"
	"math/big"
)

// FieldBytes is the size of a big-endian encoded field element.
const FieldBytes = 56

var (
	// ErrInvalidSquareRoot is returned when no point exists for the given x.
	ErrInvalidSquareRoot = errors.New("curve: x has no matching y on the curve")
	// ErrNotOnCurve is returned when a coordinate pair fails the curve equation.
	ErrNotOnCurve = errors.New("curve: point is not on the curve")
)

var (
	one = big.NewInt(1)

	// P is the field prime 2^448 - 2^224 - 1.
	P = func() *big.Int {
		p := new(big.Int).Lsh(one, 448)
		p.Sub(p, new(big.Int).Lsh(one, 224))
		return p.Sub(p, one)
	}()

	// D is the Edwards curve constant -39081.
	D = big.NewInt(-39081)

	// R is the prime order of the subgroup generated by G.
	R = func() *big.Int {
		c, ok := new(big.Int).SetString("13818066809895115352007386748515426880336692474882178609894547503885", 10)
		if !ok {
			panic("curve: bad subgroup constant")
		}
		r := new(big.Int).Lsh(one, 446)
		return r.Sub(r, c)
	}()

	// N is the number of points on the curve, 4R.
	N = new(big.Int).Lsh(R, 2)

	// O is the neutral element (0, 1).
	O = Point{}

	// G is the public generator: x = 8 and the even y on the curve.
	G = func() Point {
		g, err := NewPoint(big.NewInt(8), false)
		if err != nil {
			panic(err)
		}
		return g
	}()

	// sqrtExp is (p+1)/4, valid because p = 3 (mod 4).
	sqrtExp = new(big.Int).Rsh(new(big.Int).Add(P, one), 2)
)
