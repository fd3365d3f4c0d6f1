package models

import "github.com/shopspring/decimal"

// BudgetSummary represents income and expense totals for a user
type BudgetSummary struct {
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetSavings    decimal.Decimal `json:"net_savings"` // TotalIncome - TotalExpenses
}

// CategorySpending represents aggregated expenses for one category
type CategorySpending struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"` // share of total expenses
}

// BudgetReport is the full budget view returned to clients
type BudgetReport struct {
	Summary   BudgetSummary      `json:"summary"`
	Breakdown []CategorySpending `json:"breakdown"`
	Message   string             `json:"message,omitempty"` // set when no data exists
}

// SpendingInsight represents the most significant spending category
type SpendingInsight struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Text     string          `json:"text"`
}

// ScreeningIntent represents parsed parameters of a bounded
// stock screening request
type ScreeningIntent struct {
	IsScreeningIntent bool `json:"is_screening_intent"`
	ResultCount       int  `json:"result_count"`
	PriceCeiling      int  `json:"price_ceiling"`
}

// Quote represents a market price for a ticker symbol
type Quote struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}
