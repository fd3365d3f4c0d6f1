package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		input   string
		want    AccountType
		wantErr bool
	}{
		{"bank_account", AccountTypeBank, false},
		{"credit_card", AccountTypeCard, false},
		{"brokerage", "", true},
		{"", "", true},
		{"BANK_ACCOUNT", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAccountType(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownAccountType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCardTransactionAbsentFieldsDecodeAsNil(t *testing.T) {
	var tx CardTransaction
	require.NoError(t, json.Unmarshal([]byte(
		`{"date": "2024-07-02", "description": "Travel", "debit": 300.00}`), &tx))

	require.NotNil(t, tx.Debit)
	assert.Equal(t, "300", tx.Debit.String())
	assert.Nil(t, tx.Credit, "absent credit must decode as nil, not zero")
}

func TestCardTransactionZeroIsNotAbsent(t *testing.T) {
	var tx CardTransaction
	require.NoError(t, json.Unmarshal([]byte(`{"description": "Fee waiver", "debit": 0}`), &tx))

	require.NotNil(t, tx.Debit)
	assert.True(t, tx.Debit.IsZero())
}

func TestIsExpense(t *testing.T) {
	expense := CanonicalTransaction{Amount: dec(t, "-50")}
	income := CanonicalTransaction{Amount: dec(t, "2500")}
	zero := CanonicalTransaction{}

	assert.True(t, expense.IsExpense())
	assert.False(t, income.IsExpense())
	assert.False(t, zero.IsExpense())
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}
