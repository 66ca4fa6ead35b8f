package sms

import (
	"testing"
	"time"

	"paisa/internal/model"
)

func TestParseUPIVariants(t *testing.T) {
	cases := []struct {
		msg    string
		amount float64
		payee  string
		ref    string
	}{
		{
			`Rs.45.00 debited from A/c XX3014 to VPA chaiwala@okaxis on 17-09-25. UPI Ref No 525169001234. Not you? Call 1800xxxx - Axis Bank`,
			45, "chaiwala@okaxis", "525169001234",
		},
		{
			`INR 120.00 debited from HDFC Bank A/c **8821 to VPA swiggy.stores@ybl on 17-09-2025. UPI Ref 525169009876.`,
			120, "swiggy.stores@ybl", "525169009876",
		},
		{
			`Rs 60 sent to rapido@icici on 18-09-25 via UPI. Ref No. 4211`,
			60, "rapido@icici", "4211",
		},
		{
			`Rs.1,250.00 paid to SHARMA XEROX CENTER on 19-09-25. UPI Ref No 525169112233.`,
			1250, "SHARMA XEROX CENTER", "525169112233",
		},
	}

	for _, c := range cases {
		p, err := ParseUPIMessage(c.msg)
		if err != nil {
			t.Fatalf("expected parse ok for %q, got err: %v", c.msg, err)
		}
		if p.Amount != c.amount {
			t.Errorf("amount = %v, want %v", p.Amount, c.amount)
		}
		if p.Payee != c.payee {
			t.Errorf("payee = %q, want %q", p.Payee, c.payee)
		}
		if p.RefID != c.ref {
			t.Errorf("ref = %q, want %q", p.RefID, c.ref)
		}
	}
}

func TestParseUPIDate(t *testing.T) {
	p, err := ParseUPIMessage(`Rs.45.00 debited from A/c XX3014 to VPA chaiwala@okaxis on 17-09-25. UPI Ref No 525169001234.`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2025, 9, 17, 0, 0, 0, 0, time.Local)
	if !p.Date.Equal(want) {
		t.Errorf("date = %v, want %v", p.Date, want)
	}
}

func TestParseUPIRejectsJunk(t *testing.T) {
	bad := []string{
		"",
		"hello there",
		"Your OTP is 482913. Do not share it.",
		"Rs.500.00 credited to your A/c XX3014 on 17-09-25",     // credit, not debit
		"Rs.0 debited from A/c to VPA nobody@upi on 17-09-25",   // zero amount
		"Rs.45 debited from A/c to VPA someone@upi on 45-45-25", // nonsense date
	}
	for _, msg := range bad {
		if p, err := ParseUPIMessage(msg); err == nil {
			t.Errorf("ParseUPIMessage(%q) = %+v, want error", msg, p)
		}
	}
}

func TestGuessCategory(t *testing.T) {
	cases := []struct {
		payee string
		want  model.Category
	}{
		{"swiggy.stores@ybl", model.CategoryMess},
		{"CHAIWALA CORNER", model.CategoryMess},
		{"rapido@icici", model.CategoryMetro},
		{"DELHI METRO RAIL", model.CategoryMetro},
		{"jio.recharge@paytm", model.CategoryMobile},
		{"GUPTA PG RENT", model.CategoryRent},
		{"SHARMA XEROX CENTER", model.CategoryStationery},
		{"bookmyshow@hdfcbank", model.CategorySocial},
		{"someone@okaxis", model.CategoryMisc},
	}
	for _, c := range cases {
		if got := GuessCategory(c.payee); got != c.want {
			t.Errorf("GuessCategory(%q) = %q, want %q", c.payee, got, c.want)
		}
	}
}

func TestToTransaction(t *testing.T) {
	p, err := ParseUPIMessage(`Rs.45.00 debited from A/c XX3014 to VPA chaiwala@okaxis on 17-09-25. UPI Ref No 525169001234.`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	tx, err := p.ToTransaction()
	if err != nil {
		t.Fatalf("ToTransaction: %v", err)
	}
	if tx.Amount != 45 {
		t.Errorf("amount = %v, want 45", tx.Amount)
	}
	if tx.Method != model.MethodUPI {
		t.Errorf("method = %q, want upi", tx.Method)
	}
	if tx.Category != model.CategoryMess {
		t.Errorf("category = %q, want mess (chai keyword)", tx.Category)
	}
	if tx.ID == "" {
		t.Error("transaction has no ID")
	}
}
