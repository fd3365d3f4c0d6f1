package service

import (
	"fmt"
	"strings"

	"github.com/financialking/budget-service/internal/models"
	"github.com/financialking/budget-service/internal/repository"
)

// NormalizeBank converts a bank account record into canonical form.
// The stored amount sign is not trusted: CREDIT means money in,
// anything else means money out.
func NormalizeBank(tx models.BankTransaction) models.CanonicalTransaction {
	amount := tx.Amount.Abs()
	if !strings.EqualFold(tx.TransactionType, models.TransactionTypeCredit) {
		amount = amount.Neg()
	}
	return models.CanonicalTransaction{
		Date:        tx.Date,
		Description: tx.Description,
		Category:    models.DeriveCategory(tx.Category, tx.Description),
		Amount:      amount,
	}
}

// NormalizeCard converts a credit card record into canonical form.
// A debit column means money out, a credit column means money in;
// a record carrying neither is malformed.
func NormalizeCard(tx models.CardTransaction) (models.CanonicalTransaction, error) {
	canonical := models.CanonicalTransaction{
		Date:        tx.Date,
		Description: tx.Description,
		Category:    models.DeriveCategory(tx.Category, tx.Description),
	}

	switch {
	case tx.Debit != nil:
		canonical.Amount = tx.Debit.Neg()
	case tx.Credit != nil:
		canonical.Amount = *tx.Credit
	default:
		return models.CanonicalTransaction{}, fmt.Errorf(
			"%w: credit card record %q has neither debit nor credit amount",
			models.ErrMalformedRecord, tx.Description)
	}
	return canonical, nil
}

// NormalizeLedger flattens a ledger snapshot into the canonical set,
// bank records first, preserving upload order within each account
// type. Any malformed record fails the whole conversion.
func NormalizeLedger(ledger repository.Ledger) ([]models.CanonicalTransaction, error) {
	canonical := make([]models.CanonicalTransaction, 0, len(ledger.Bank)+len(ledger.Card))
	for _, tx := range ledger.Bank {
		canonical = append(canonical, NormalizeBank(tx))
	}
	for _, tx := range ledger.Card {
		c, err := NormalizeCard(tx)
		if err != nil {
			return nil, err
		}
		canonical = append(canonical, c)
	}
	return canonical, nil
}
