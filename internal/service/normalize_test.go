package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financialking/budget-service/internal/models"
	"github.com/financialking/budget-service/internal/repository"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestNormalizeBank(t *testing.T) {
	tests := []struct {
		name     string
		tx       models.BankTransaction
		expected string
	}{
		{
			name: "negative debit stays negative",
			tx: models.BankTransaction{
				Description:     "Grocery Shopping",
				Amount:          dec("-50.00"),
				TransactionType: "DEBIT",
			},
			expected: "-50",
		},
		{
			name: "positive debit is forced negative",
			tx: models.BankTransaction{
				Description:     "Electricity Bill",
				Amount:          dec("80.00"),
				TransactionType: "DEBIT",
			},
			expected: "-80",
		},
		{
			name: "credit is forced positive",
			tx: models.BankTransaction{
				Description:     "Salary Deposit",
				Amount:          dec("-2500.00"),
				TransactionType: "CREDIT",
			},
			expected: "2500",
		},
		{
			name: "lowercase credit is recognized",
			tx: models.BankTransaction{
				Description:     "Refund",
				Amount:          dec("15.00"),
				TransactionType: "credit",
			},
			expected: "15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeBank(tt.tx)
			assert.Equal(t, tt.expected, got.Amount.String())
			assert.Equal(t, tt.tx.Date, got.Date)
			assert.Equal(t, tt.tx.Description, got.Description)
		})
	}
}

func TestNormalizeCard(t *testing.T) {
	t.Run("debit becomes negative", func(t *testing.T) {
		got, err := NormalizeCard(models.CardTransaction{
			Description: "Shopping",
			Debit:       decPtr("120.00"),
		})
		require.NoError(t, err)
		assert.Equal(t, "-120", got.Amount.String())
	})

	t.Run("credit becomes positive", func(t *testing.T) {
		got, err := NormalizeCard(models.CardTransaction{
			Description: "Refund",
			Credit:      decPtr("40.00"),
		})
		require.NoError(t, err)
		assert.Equal(t, "40", got.Amount.String())
	})

	t.Run("debit wins when both are present", func(t *testing.T) {
		got, err := NormalizeCard(models.CardTransaction{
			Description: "Mixed",
			Debit:       decPtr("30.00"),
			Credit:      decPtr("10.00"),
		})
		require.NoError(t, err)
		assert.Equal(t, "-30", got.Amount.String())
	})

	t.Run("zero debit is still a debit, not absence", func(t *testing.T) {
		got, err := NormalizeCard(models.CardTransaction{
			Description: "Fee waiver",
			Debit:       decPtr("0"),
		})
		require.NoError(t, err)
		assert.True(t, got.Amount.IsZero())
	})

	t.Run("neither amount is malformed", func(t *testing.T) {
		_, err := NormalizeCard(models.CardTransaction{Description: "Broken"})
		assert.ErrorIs(t, err, models.ErrMalformedRecord)
	})
}

func TestNormalizeIsIdempotent(t *testing.T) {
	tx := models.BankTransaction{
		Date:            "2024-07-01",
		Description:     "Grocery Shopping - Migros",
		Amount:          dec("-50.00"),
		TransactionType: "DEBIT",
	}
	first := NormalizeBank(tx)
	second := NormalizeBank(tx)
	assert.Equal(t, first, second)
}

func TestCategoryDerivation(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		description string
		expected    string
	}{
		{"explicit category wins", "Food", "Grocery Shopping - Migros", "Food"},
		{"separator splits description", "", "Grocery Shopping - Migros", "Grocery Shopping"},
		{"first separator only", "", "Travel - Zurich - Geneva", "Travel"},
		{"no separator uses whole description", "", "Online Subscription", "Online Subscription"},
		{"hyphen without spaces is not a separator", "", "E-Bike Rental", "E-Bike Rental"},
		{"empty left portion falls back to description", "", " - Mystery", " - Mystery"},
		{"empty description stays empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, models.DeriveCategory(tt.category, tt.description))
		})
	}
}

func TestNormalizeLedgerOrderAndErrors(t *testing.T) {
	ledger := repository.Ledger{
		Bank: []models.BankTransaction{
			{Description: "Salary", Amount: dec("2500"), TransactionType: "CREDIT"},
		},
		Card: []models.CardTransaction{
			{Description: "Shopping", Debit: decPtr("120")},
		},
	}

	canonical, err := NormalizeLedger(ledger)
	require.NoError(t, err)
	require.Len(t, canonical, 2)
	assert.Equal(t, "Salary", canonical[0].Description)
	assert.Equal(t, "Shopping", canonical[1].Description)

	ledger.Card = append(ledger.Card, models.CardTransaction{Description: "Broken"})
	_, err = NormalizeLedger(ledger)
	assert.ErrorIs(t, err, models.ErrMalformedRecord)
}
