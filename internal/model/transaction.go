// Package model defines domain types for paisa transactions and budgets.
package model

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category classifies where a student's money went.
type Category string

// The fixed category set. Stored values are the short slugs; use Label
// for display.
const (
	CategoryMess       Category = "mess"
	CategoryMetro      Category = "metro"
	CategoryMobile     Category = "mobile"
	CategoryRent       Category = "rent"
	CategoryStationery Category = "stationery"
	CategorySocial     Category = "social"
	CategoryMisc       Category = "misc"
)

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryMess,
	CategoryMetro,
	CategoryMobile,
	CategoryRent,
	CategoryStationery,
	CategorySocial,
	CategoryMisc,
}

var categoryLabels = map[Category]string{
	CategoryMess:       "Mess/Food",
	CategoryMetro:      "Metro/Auto",
	CategoryMobile:     "Mobile/WiFi",
	CategoryRent:       "PG/Rent",
	CategoryStationery: "Photocopy/Stationery",
	CategorySocial:     "Social",
	CategoryMisc:       "Misc",
}

// Label returns the human-readable name for the category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory resolves user input (slug or label, any case) to a Category.
func ParseCategory(s string) (Category, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for c, label := range categoryLabels {
		if in == string(c) || in == strings.ToLower(label) {
			return c, nil
		}
	}
	// Accept either half of a compound label, e.g. "food" for "Mess/Food".
	for c, label := range categoryLabels {
		for _, part := range strings.Split(strings.ToLower(label), "/") {
			if in == part {
				return c, nil
			}
		}
	}
	return "", errors.New("unknown category: " + s)
}

// Method is how a payment was made.
type Method string

// Payment methods.
const (
	MethodUPI  Method = "upi"
	MethodCash Method = "cash"
	MethodCard Method = "card"
)

// Methods lists all payment methods in display order.
var Methods = []Method{MethodUPI, MethodCash, MethodCard}

var methodLabels = map[Method]string{
	MethodUPI:  "UPI",
	MethodCash: "Cash",
	MethodCard: "Card",
}

// Label returns the display name for the method.
func (m Method) Label() string {
	if l, ok := methodLabels[m]; ok {
		return l
	}
	return string(m)
}

// Valid reports whether m is a known payment method.
func (m Method) Valid() bool {
	_, ok := methodLabels[m]
	return ok
}

// ParseMethod resolves user input to a Method.
func ParseMethod(s string) (Method, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for m := range methodLabels {
		if in == string(m) {
			return m, nil
		}
	}
	return "", errors.New("unknown payment method: " + s)
}

// Transaction is one recorded expense. Never mutated after creation;
// removed only by a full-state reset.
type Transaction struct {
	ID       string
	Amount   float64
	Category Category
	Method   Method
	Date     time.Time
	Note     string
}

// Validation errors returned by NewTransaction.
var (
	ErrBadAmount   = errors.New("amount must be a positive number")
	ErrBadCategory = errors.New("invalid category")
	ErrBadMethod   = errors.New("invalid payment method")
)

// NewTransaction builds a Transaction from raw user input. The amount is
// free-form text; empty, unparseable, non-finite, zero, and negative values
// are all rejected. A zero `at` means "now". Each call assigns a fresh UUID.
func NewTransaction(rawAmount string, cat Category, method Method, note string, at time.Time) (Transaction, error) {
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return Transaction{}, err
	}
	if !cat.Valid() {
		return Transaction{}, ErrBadCategory
	}
	if !method.Valid() {
		return Transaction{}, ErrBadMethod
	}
	if at.IsZero() {
		at = time.Now()
	}
	return Transaction{
		ID:       uuid.NewString(),
		Amount:   amount,
		Category: cat,
		Method:   method,
		Date:     at,
		Note:     strings.TrimSpace(note),
	}, nil
}

func parseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, ErrBadAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrBadAmount
	}
	if v <= 0 {
		return 0, ErrBadAmount
	}
	return v, nil
}
