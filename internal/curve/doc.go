// Package curve implements affine arithmetic on the Edwards curve
// Ed448-Goldilocks, x^2 + y^2 = 1 + d x^2 y^2 over GF(p) with
// p = 2^448 - 2^224 - 1 and d = -39081.
//
// Field and scalar arithmetic use math/big with an explicit reduction after
// every step. Nothing here is constant time.
package curve
