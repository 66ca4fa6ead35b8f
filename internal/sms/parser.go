// Package sms parses UPI-style debit SMS text into payment details.
// Input is pasted by the user; there is no real SMS integration.
package sms

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"paisa/internal/model"
)

// ParsedPayment holds the fields extracted from a debit SMS.
type ParsedPayment struct {
	RefID  string
	Amount float64
	Payee  string
	Date   time.Time
}

// Pattern notes, built up from observed bank SMS variants:
// - "Rs.45.00" / "Rs 45" / "INR 120.00" amount prefixes
// - "debited", "sent" or "paid" verbs, with optional account fragment between
// - payee as a VPA (no spaces) or a merchant name (may contain spaces)
// - date as dd-mm-yy or dd-mm-yyyy
// - optional "UPI Ref No 525169001234" style reference, digits only
// Money capture constrained so it does not swallow trailing punctuation.
var upiPattern = regexp.MustCompile(
	`(?i)(?:INR|Rs\.?)\s*([\d,]+(?:\.\d+)?)\s+(?:debited|sent|paid)\b.*?\bto\s+(?:VPA\s+)?([\w.@-]+(?:\s+[\w.@-]+)*?)\s+on\s+(\d{1,2}-\d{1,2}-\d{2,4})(?:.*?\bRef(?:\s*No)?\.?\s*:?\s*(\d+))?`,
)

// ParseUPIMessage extracts payment details from a UPI debit SMS.
func ParseUPIMessage(msg string) (*ParsedPayment, error) {
	matches := upiPattern.FindStringSubmatch(msg)
	if len(matches) < 4 {
		return nil, fmt.Errorf("not a recognizable UPI debit message")
	}

	amountStr := strings.ReplaceAll(matches[1], ",", "")
	amount, err := strconv.ParseFloat(amountStr, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %v", amount)
	}

	payee := strings.TrimSuffix(strings.TrimSpace(matches[2]), ".")
	payee = strings.Join(strings.Fields(payee), " ")

	date, err := parseSMSDate(matches[3])
	if err != nil {
		return nil, err
	}

	return &ParsedPayment{
		RefID:  matches[4],
		Amount: amount,
		Payee:  payee,
		Date:   date,
	}, nil
}

func parseSMSDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	if year < 100 {
		year += 2000
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("failed to parse date %q", s)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// payeeKeywords maps payee substrings to categories for the auto-guess.
var payeeKeywords = []struct {
	keyword string
	cat     model.Category
}{
	{"zomato", model.CategoryMess},
	{"swiggy", model.CategoryMess},
	{"dominos", model.CategoryMess},
	{"mess", model.CategoryMess},
	{"canteen", model.CategoryMess},
	{"chai", model.CategoryMess},
	{"cafe", model.CategoryMess},
	{"dhaba", model.CategoryMess},
	{"metro", model.CategoryMetro},
	{"uber", model.CategoryMetro},
	{"ola", model.CategoryMetro},
	{"rapido", model.CategoryMetro},
	{"irctc", model.CategoryMetro},
	{"redbus", model.CategoryMetro},
	{"jio", model.CategoryMobile},
	{"airtel", model.CategoryMobile},
	{"vodafone", model.CategoryMobile},
	{"recharge", model.CategoryMobile},
	{"broadband", model.CategoryMobile},
	{"rent", model.CategoryRent},
	{"hostel", model.CategoryRent},
	{"xerox", model.CategoryStationery},
	{"photocopy", model.CategoryStationery},
	{"stationery", model.CategoryStationery},
	{"bookmyshow", model.CategorySocial},
	{"pvr", model.CategorySocial},
}

// GuessCategory picks a category from payee keywords, defaulting to Misc.
func GuessCategory(payee string) model.Category {
	lower := strings.ToLower(payee)
	for _, pk := range payeeKeywords {
		if strings.Contains(lower, pk.keyword) {
			return pk.cat
		}
	}
	return model.CategoryMisc
}

// ToTransaction converts a parsed payment into a Transaction using the
// guessed category. The SMS text ends up as the note, truncated to the
// payee and reference.
func (p *ParsedPayment) ToTransaction() (model.Transaction, error) {
	note := p.Payee
	if p.RefID != "" {
		note += " (ref " + p.RefID + ")"
	}
	return model.NewTransaction(
		strconv.FormatFloat(p.Amount, 'f', -1, 64),
		GuessCategory(p.Payee),
		model.MethodUPI,
		note,
		p.Date,
	)
}
