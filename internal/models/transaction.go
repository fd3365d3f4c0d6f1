package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType identifies which raw transaction schema a record uses
type AccountType string

const (
	AccountTypeBank AccountType = "bank_account"
	AccountTypeCard AccountType = "credit_card"
)

// Transaction type values for bank account records
const (
	TransactionTypeDebit  = "DEBIT"
	TransactionTypeCredit = "CREDIT"
)

var (
	// ErrMalformedRecord indicates a raw record is missing the amount
	// fields its schema requires
	ErrMalformedRecord = errors.New("malformed transaction record")
	// ErrNoInsight indicates no expense data exists to extract an insight from
	ErrNoInsight = errors.New("no insight available")
	// ErrUnknownAccountType indicates an account type outside the supported set
	ErrUnknownAccountType = errors.New("unknown account type")
)

// ParseAccountType validates an account type string
func ParseAccountType(s string) (AccountType, error) {
	switch AccountType(s) {
	case AccountTypeBank, AccountTypeCard:
		return AccountType(s), nil
	default:
		return "", ErrUnknownAccountType
	}
}

// BankTransaction represents one line of a bank account ledger.
// The sign of Amount is incidental; TransactionType decides direction.
type BankTransaction struct {
	Date            string          `json:"date"`
	Description     string          `json:"description"`
	Category        string          `json:"category,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transaction_type"`
}

// CardTransaction represents one line of a credit card statement.
// Exactly one of Debit/Credit carries the amount; nil means the column
// was absent, which is not the same as zero.
type CardTransaction struct {
	Date        string           `json:"date"`
	Description string           `json:"description"`
	Category    string           `json:"category,omitempty"`
	Debit       *decimal.Decimal `json:"debit,omitempty"`
	Credit      *decimal.Decimal `json:"credit,omitempty"`
}

// CanonicalTransaction is the normalized form shared by all account
// types: Amount is negative for money leaving the user and positive
// for money received, and Category is never empty unless the source
// record had no category and an empty description.
type CanonicalTransaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
}

// IsExpense reports whether the transaction is money leaving the user
func (t CanonicalTransaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// categorySeparator splits a description into "category - detail"
const categorySeparator = " - "

// DeriveCategory resolves the category label for a raw record: the
// explicit category when present, otherwise the description up to the
// first separator, otherwise the whole description.
func DeriveCategory(category, description string) string {
	if category != "" {
		return category
	}
	if left, _, found := strings.Cut(description, categorySeparator); found && left != "" {
		return left
	}
	return description
}
