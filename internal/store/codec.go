package store

import (
	"encoding/hex"
	"fmt"
	"math/big"

	"kmacrypt/internal/curve"
	"kmacrypt/internal/domain"
)

// Byte buffers are stored as lowercase hex and integers in base 10.

func encodeBytes(b []byte) string { return hex.EncodeToString(b) }

func encodeInt(x *big.Int) string { return x.Text(10) }

func decodeBytes(field, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: field %s: %v", domain.ErrMalformedRecord, field, err)
	}
	return b, nil
}

func decodeInt(field, s string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(s, 10)
	if !ok || x.Sign() < 0 {
		return nil, fmt.Errorf("%w: field %s: not a non-negative integer", domain.ErrMalformedRecord, field)
	}
	return x, nil
}

func decodePoint(xs, ys string) (curve.Point, error) {
	x, err := decodeInt("x", xs)
	if err != nil {
		return curve.Point{}, err
	}
	y, err := decodeInt("y", ys)
	if err != nil {
		return curve.Point{}, err
	}
	p, err := curve.FromCoordinates(x, y)
	if err != nil {
		return curve.Point{}, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, err)
	}
	return p, nil
}
