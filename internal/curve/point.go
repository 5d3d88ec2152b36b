package curve

import (
	"fmt"
	"math/big"
)

// Point is an affine point on Ed448-Goldilocks. Points are immutable: every
// operation returns a new value. The zero Point is the neutral element O.
type Point struct {
	x, y *big.Int
}

func (p Point) coords() (x, y *big.Int) {
	if p.x == nil {
		return new(big.Int), one
	}
	return p.x, p.y
}

// NewPoint returns the point with the given x coordinate and the y whose least
// significant bit is yLSB. It fails with ErrInvalidSquareRoot when
// (1 - x^2) / (1 + 39081 x^2) is not a square mod P.
func NewPoint(x *big.Int, yLSB bool) (Point, error) {
	xr := new(big.Int).Mod(x, P)
	x2 := new(big.Int).Mul(xr, xr)
	x2.Mod(x2, P)

	num := new(big.Int).Sub(one, x2)
	num.Mod(num, P)

	den := new(big.Int).Mul(D, x2)
	den.Sub(one, den)
	den.Mod(den, P)

	v := num.Mul(num, new(big.Int).ModInverse(den, P))
	v.Mod(v, P)

	y, ok := sqrt(v, yLSB)
	if !ok {
		return Point{}, ErrInvalidSquareRoot
	}
	return Point{x: xr, y: y}, nil
}

// FromCoordinates validates (x, y) against the curve equation.
func FromCoordinates(x, y *big.Int) (Point, error) {
	if x.Sign() < 0 || y.Sign() < 0 || x.Cmp(P) >= 0 || y.Cmp(P) >= 0 {
		return Point{}, ErrNotOnCurve
	}
	p := Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
	if !p.IsOnCurve() {
		return Point{}, ErrNotOnCurve
	}
	return p, nil
}

// sqrt returns a square root of v mod P with the requested low bit.
func sqrt(v *big.Int, lsb bool) (*big.Int, bool) {
	if v.Sign() == 0 {
		return new(big.Int), true
	}
	r := new(big.Int).Exp(v, sqrtExp, P)
	if (r.Bit(0) == 1) != lsb {
		r.Sub(P, r)
	}
	check := new(big.Int).Mul(r, r)
	check.Mod(check, P)
	if check.Cmp(v) != 0 {
		return nil, false
	}
	return r, true
}

// X returns a copy of the x coordinate.
func (p Point) X() *big.Int {
	x, _ := p.coords()
	return new(big.Int).Set(x)
}

// Y returns a copy of the y coordinate.
func (p Point) Y() *big.Int {
	_, y := p.coords()
	return new(big.Int).Set(y)
}

// XBytes returns x as a FieldBytes-long big-endian buffer.
func (p Point) XBytes() []byte {
	x, _ := p.coords()
	return x.FillBytes(make([]byte, FieldBytes))
}

// IsOnCurve reports whether x^2 + y^2 = 1 + d x^2 y^2 (mod P).
func (p Point) IsOnCurve() bool {
	x, y := p.coords()
	x2 := new(big.Int).Mul(x, x)
	y2 := new(big.Int).Mul(y, y)

	lhs := new(big.Int).Add(x2, y2)
	lhs.Mod(lhs, P)

	rhs := x2.Mul(x2, y2)
	rhs.Mul(rhs, D)
	rhs.Add(rhs, one)
	rhs.Mod(rhs, P)

	return lhs.Cmp(rhs) == 0
}

// IsNeutral reports whether p is O.
func (p Point) IsNeutral() bool {
	x, y := p.coords()
	return x.Sign() == 0 && y.Cmp(one) == 0
}

// Equal reports whether p and q have the same coordinates.
func (p Point) Equal(q Point) bool {
	px, py := p.coords()
	qx, qy := q.coords()
	return px.Cmp(qx) == 0 && py.Cmp(qy) == 0
}

// Neg returns (-x, y).
func (p Point) Neg() Point {
	x, y := p.coords()
	nx := new(big.Int).Neg(x)
	return Point{x: nx.Mod(nx, P), y: new(big.Int).Set(y)}
}

// Add returns p + q using the complete Edwards addition law:
//
//	x3 = (x1 y2 + y1 x2) / (1 + d x1 x2 y1 y2)
//	y3 = (y1 y2 - x1 x2) / (1 - d x1 x2 y1 y2)
func (p Point) Add(q Point) Point {
	x1, y1 := p.coords()
	x2, y2 := q.coords()

	xx := new(big.Int).Mul(x1, x2)
	yy := new(big.Int).Mul(y1, y2)
	xy := new(big.Int).Mul(x1, y2)
	yx := new(big.Int).Mul(y1, x2)

	dxxyy := new(big.Int).Mul(xx, yy)
	dxxyy.Mul(dxxyy, D)
	dxxyy.Mod(dxxyy, P)

	numX := xy.Add(xy, yx)
	denX := new(big.Int).Add(one, dxxyy)
	numY := yy.Sub(yy, xx)
	denY := new(big.Int).Sub(one, dxxyy)

	return Point{
		x: div(numX, denX),
		y: div(numY, denY),
	}
}

// div returns num / den mod P.
func div(num, den *big.Int) *big.Int {
	den.Mod(den, P)
	inv := new(big.Int).ModInverse(den, P)
	if inv == nil {
		// Only reachable with coordinates that are not on the curve.
		panic("curve: non-invertible denominator")
	}
	out := num.Mul(num, inv)
	return out.Mod(out, P)
}

// Double returns p + p.
func (p Point) Double() Point {
	return p.Add(p)
}

// ScalarMult returns s*p by double-and-add over the bits of s, least
// significant first. A negative s multiplies -p by |s|.
func (p Point) ScalarMult(s *big.Int) Point {
	if s.Sign() < 0 {
		return p.Neg().ScalarMult(new(big.Int).Neg(s))
	}
	acc := O
	pow := p
	for i := 0; i < s.BitLen(); i++ {
		if s.Bit(i) == 1 {
			acc = acc.Add(pow)
		}
		if i+1 < s.BitLen() {
			pow = pow.Double()
		}
	}
	return acc
}

// ScalarBaseMult returns s*G.
func ScalarBaseMult(s *big.Int) Point {
	return G.ScalarMult(s)
}

func (p Point) String() string {
	x, y := p.coords()
	return fmt.Sprintf("(%s, %s)", x, y)
}
