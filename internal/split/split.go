// Package split divides a bill across people with paise-exact shares.
package split

import (
	"errors"
	"math"
)

// Share is one person's portion of a split bill.
type Share struct {
	Name   string
	Amount float64
}

// Errors returned by the split helpers.
var (
	ErrBadTotal  = errors.New("total must be positive")
	ErrBadPeople = errors.New("need at least one person")
)

// Even splits total across n people. Arithmetic happens in integer paise
// so the shares always add back up to the total; the remainder paise go
// to the first shares.
func Even(total float64, n int) ([]float64, error) {
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return nil, ErrBadTotal
	}
	if n < 1 {
		return nil, ErrBadPeople
	}

	totalPaise := int64(math.Round(total * 100))
	base := totalPaise / int64(n)
	remainder := totalPaise % int64(n)

	shares := make([]float64, n)
	for i := range shares {
		p := base
		if int64(i) < remainder {
			p++
		}
		shares[i] = float64(p) / 100
	}
	return shares, nil
}

// Among splits total across the named people. With no names it falls
// back to "Person 1..n" style labels via the caller.
func Among(total float64, names []string) ([]Share, error) {
	amounts, err := Even(total, len(names))
	if err != nil {
		return nil, err
	}
	shares := make([]Share, len(names))
	for i, name := range names {
		shares[i] = Share{Name: name, Amount: amounts[i]}
	}
	return shares, nil
}
