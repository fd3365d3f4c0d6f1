package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/financialking/budget-service/internal/config"
	"github.com/financialking/budget-service/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendBudgetDigest sends a budget digest email for one user
func (s *Sender) SendBudgetDigest(to, userID string, report models.BudgetReport) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Your Budget Digest - %s", time.Now().Format("2006-01-02"))
	e.Text = []byte(BuildDigestBody(userID, report))

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send digest to %s: %v", to, err)
		return fmt.Errorf("failed to send digest: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}

// BuildDigestBody formats the plain-text digest for a budget report
func BuildDigestBody(userID string, report models.BudgetReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", userID)
	fmt.Fprintf(&b,
		"Here is your budget digest:\n"+
			"Total income: $%s\n"+
			"Total expenses: $%s\n"+
			"Net savings: $%s\n",
		report.Summary.TotalIncome.StringFixed(2),
		report.Summary.TotalExpenses.StringFixed(2),
		report.Summary.NetSavings.StringFixed(2),
	)

	if len(report.Breakdown) > 0 {
		b.WriteString("\nSpending by category:\n")
		for _, entry := range report.Breakdown {
			fmt.Fprintf(&b, "  %s: $%s (%.2f%%)\n", entry.Category, entry.Amount.StringFixed(2), entry.Percentage)
		}
	}

	b.WriteString("\nBest regards,\nFinancialKing")
	return b.String()
}
