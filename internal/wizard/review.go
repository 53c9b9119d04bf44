package wizard

import (
	"fmt"
	"strings"
)

const emptyReviewValue = "-"

// Review is the read-only summary shown on the final onboarding step.
type Review struct {
	BusinessName  string
	BusinessType  string
	BusinessReg   string
	ContactEmail  string
	AccountName   string
	BankName      string
	AccountNumber string
}

// Entries returns the summary in display order.
func (r Review) Entries() [][2]string {
	return [][2]string{
		{"Business Name", r.BusinessName},
		{"Business Type", r.BusinessType},
		{"Registration No.", r.BusinessReg},
		{"Contact Email", r.ContactEmail},
		{"Account Name", r.AccountName},
		{"Bank", r.BankName},
		{"Account Number", r.AccountNumber},
	}
}

func (w *Wizard) buildReview() Review {
	return Review{
		BusinessName:  orDash(w.values[FieldBusinessName].Text),
		BusinessType:  orDash(w.OptionLabel(FieldBusinessType)),
		BusinessReg:   orDash(w.values[FieldBusinessReg].Text),
		ContactEmail:  orDash(w.values[FieldContactEmail].Text),
		AccountName:   orDash(w.values[FieldAccountName].Text),
		BankName:      orDash(w.OptionLabel(FieldBankName)),
		AccountNumber: orDash(MaskAccount(w.values[FieldAccountNumber].Text)),
	}
}

// MaskAccount keeps only the last four characters: "****1234".
func MaskAccount(number string) string {
	number = strings.TrimSpace(number)
	if number == "" {
		return ""
	}
	if r := []rune(number); len(r) > 4 {
		number = string(r[len(r)-4:])
	}
	return "****" + number
}

func orDash(s string) string {
	if s == "" {
		return emptyReviewValue
	}
	return s
}

func fmtFileCount(n int) string {
	return fmt.Sprintf("%d file(s) selected", n)
}
