package wizard

import (
	_ "embed"
)

// Onboarding field ids.
const (
	FieldBusinessName   = "business-name"
	FieldBusinessType   = "business-type"
	FieldBusinessReg    = "business-reg"
	FieldContactEmail   = "contact-email"
	FieldContactPhone   = "contact-phone"
	FieldAccountName    = "account-name"
	FieldBankName       = "bank-name"
	FieldAccountNumber  = "account-number"
	FieldBankStatement  = "bank-statement"
	FieldBusinessCert   = "business-cert"
	FieldICPassport     = "ic-passport"
	FieldProofAddress   = "proof-address"
	FieldAdditionalDocs = "additional-docs"
	FieldTerms          = "terms"
)

//go:embed terms.md
var TermsMarkdown string

// OnboardingSteps is the four-step merchant onboarding form.
func OnboardingSteps() []Step {
	return []Step{
		{
			Number: 1,
			Title:  "Business Information",
			Fields: []Field{
				{ID: FieldBusinessName, Label: "Business Name", Kind: Text, Required: true},
				{ID: FieldBusinessType, Label: "Business Type", Kind: Select, Required: true, Options: []Option{
					{Value: "sole-proprietor", Label: "Sole Proprietorship"},
					{Value: "partnership", Label: "Partnership"},
					{Value: "sdn-bhd", Label: "Private Limited (Sdn Bhd)"},
					{Value: "bhd", Label: "Public Limited (Bhd)"},
					{Value: "ngo", Label: "Non-Profit Organisation"},
				}},
				{ID: FieldBusinessReg, Label: "Registration Number", Kind: Text, Required: true},
				{ID: FieldContactEmail, Label: "Contact Email", Kind: Email, Required: true},
				{ID: FieldContactPhone, Label: "Contact Phone", Kind: Text, Required: true},
			},
		},
		{
			Number: 2,
			Title:  "Bank Details",
			Fields: []Field{
				{ID: FieldAccountName, Label: "Account Holder Name", Kind: Text, Required: true},
				{ID: FieldBankName, Label: "Bank", Kind: Select, Required: true, Options: []Option{
					{Value: "maybank", Label: "Maybank"},
					{Value: "cimb", Label: "CIMB Bank"},
					{Value: "public-bank", Label: "Public Bank"},
					{Value: "rhb", Label: "RHB Bank"},
					{Value: "hong-leong", Label: "Hong Leong Bank"},
					{Value: "ambank", Label: "AmBank"},
				}},
				{ID: FieldAccountNumber, Label: "Account Number", Kind: Text, Required: true},
				{ID: FieldBankStatement, Label: "Bank Statement", Kind: File, Required: true},
			},
		},
		{
			Number: 3,
			Title:  "Documents",
			Fields: []Field{
				{ID: FieldBusinessCert, Label: "Business Registration Certificate", Kind: File, Required: true},
				{ID: FieldICPassport, Label: "Director IC / Passport", Kind: File, Required: true},
				{ID: FieldProofAddress, Label: "Proof of Business Address", Kind: File, Required: true},
				{ID: FieldAdditionalDocs, Label: "Additional Documents", Kind: File, Multiple: true},
			},
		},
		{
			Number: 4,
			Title:  "Review & Submit",
			Fields: []Field{
				{ID: FieldTerms, Label: "I accept the terms and conditions", Kind: Checkbox, Required: true},
			},
		},
	}
}

// Onboarding returns a wizard over OnboardingSteps.
func Onboarding() *Wizard {
	return New(OnboardingSteps())
}
