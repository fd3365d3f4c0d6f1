package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/financialking/budget-service/internal/models"
)

// NoDataMessage is returned whenever a user has no transactions to analyze
const NoDataMessage = "No spending data available for analysis."

var hundred = decimal.NewFromInt(100)

// Aggregate computes the budget report for a canonical transaction
// set. It is total over well-formed input: an empty set yields a
// zeroed report carrying NoDataMessage, and income without expenses
// yields an empty breakdown.
//
// Breakdown entries appear in first-appearance order of their category
// among expense transactions.
func Aggregate(transactions []models.CanonicalTransaction) models.BudgetReport {
	report := models.BudgetReport{
		Summary: models.BudgetSummary{
			TotalIncome:   decimal.Zero,
			TotalExpenses: decimal.Zero,
			NetSavings:    decimal.Zero,
		},
		Breakdown: []models.CategorySpending{},
	}
	if len(transactions) == 0 {
		report.Message = NoDataMessage
		return report
	}

	byCategory := make(map[string]int)
	for _, tx := range transactions {
		if !tx.IsExpense() {
			report.Summary.TotalIncome = report.Summary.TotalIncome.Add(tx.Amount)
			continue
		}
		amount := tx.Amount.Abs()
		report.Summary.TotalExpenses = report.Summary.TotalExpenses.Add(amount)

		idx, seen := byCategory[tx.Category]
		if !seen {
			idx = len(report.Breakdown)
			byCategory[tx.Category] = idx
			report.Breakdown = append(report.Breakdown, models.CategorySpending{
				Category: tx.Category,
				Amount:   decimal.Zero,
			})
		}
		report.Breakdown[idx].Amount = report.Breakdown[idx].Amount.Add(amount)
	}

	if report.Summary.TotalExpenses.IsPositive() {
		for i := range report.Breakdown {
			share := report.Breakdown[i].Amount.Div(report.Summary.TotalExpenses).Mul(hundred)
			report.Breakdown[i].Percentage = share.InexactFloat64()
		}
	}

	report.Summary.NetSavings = report.Summary.TotalIncome.Sub(report.Summary.TotalExpenses)
	return report
}

// ExtractInsight returns the breakdown entry with the largest amount.
// Ties keep the earlier entry. An empty breakdown means there is no
// expense data, reported as ErrNoInsight.
func ExtractInsight(breakdown []models.CategorySpending) (models.SpendingInsight, error) {
	if len(breakdown) == 0 {
		return models.SpendingInsight{}, models.ErrNoInsight
	}

	top := breakdown[0]
	for _, entry := range breakdown[1:] {
		if entry.Amount.GreaterThan(top.Amount) {
			top = entry
		}
	}

	return models.SpendingInsight{
		Category: top.Category,
		Amount:   top.Amount,
		Text: fmt.Sprintf("Your top spending category is '%s' with a total of $%s.",
			top.Category, top.Amount.StringFixed(2)),
	}, nil
}
