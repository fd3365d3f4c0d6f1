package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/financialking/budget-service/internal/models"
	"github.com/financialking/budget-service/internal/service"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// uploadPayload keys other than user_id name account types; unknown
// ones are rejected before any record is stored
type uploadPayload map[string]json.RawMessage

// UploadData handles financial data uploads
func (h *Handler) UploadData(w http.ResponseWriter, r *http.Request) {
	var payload uploadPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var userID string
	if raw, ok := payload["user_id"]; ok {
		if err := json.Unmarshal(raw, &userID); err != nil {
			http.Error(w, "Invalid user_id", http.StatusBadRequest)
			return
		}
	}
	if userID == "" {
		http.Error(w, "User ID is required.", http.StatusBadRequest)
		return
	}

	var bank []models.BankTransaction
	var card []models.CardTransaction
	for key, raw := range payload {
		switch key {
		case "user_id":
		case string(models.AccountTypeBank):
			if err := json.Unmarshal(raw, &bank); err != nil {
				http.Error(w, "Invalid bank_account records", http.StatusBadRequest)
				return
			}
		case string(models.AccountTypeCard):
			if err := json.Unmarshal(raw, &card); err != nil {
				http.Error(w, "Invalid credit_card records", http.StatusBadRequest)
				return
			}
		default:
			if _, err := models.ParseAccountType(key); err != nil {
				http.Error(w, fmt.Sprintf("Unknown account type: %s", key), http.StatusBadRequest)
				return
			}
		}
	}

	if err := h.svc.UploadTransactions(userID, bank, card); err != nil {
		h.log.Warnf("Upload rejected for user %s: %v", userID, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.respond(w, map[string]string{"message": "Financial data uploaded successfully!"})
}

// BudgetSummary handles budget report requests
func (h *Handler) BudgetSummary(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	report, err := h.svc.BudgetReport(userID)
	if err != nil {
		h.log.Errorf("Failed to build budget report for user %s: %v", userID, err)
		http.Error(w, "Failed to build budget report", http.StatusInternalServerError)
		return
	}

	h.respond(w, report)
}

// Insight handles top spending category requests
func (h *Handler) Insight(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	insight, err := h.svc.Insight(userID)
	if errors.Is(err, models.ErrNoInsight) {
		h.respond(w, map[string]string{"insight": service.NoDataMessage})
		return
	}
	if err != nil {
		h.log.Errorf("Failed to extract insight for user %s: %v", userID, err)
		http.Error(w, "Failed to extract insight", http.StatusInternalServerError)
		return
	}

	h.respond(w, map[string]any{
		"insight":  insight.Text,
		"category": insight.Category,
		"amount":   insight.Amount,
	})
}

// Chatbot handles free-text requests with deterministic answers
func (h *Handler) Chatbot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID  string `json:"user_id"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == "" || req.Message == "" {
		http.Error(w, "Please provide a user ID and a message.", http.StatusBadRequest)
		return
	}

	answer, err := h.svc.Answer(r.Context(), req.UserID, req.Message)
	if err != nil {
		h.log.Errorf("Failed to answer message for user %s: %v", req.UserID, err)
		http.Error(w, "Failed to answer message", http.StatusInternalServerError)
		return
	}

	h.respond(w, map[string]string{"response": answer})
}

// ParseIntent classifies a free-text message without answering it
func (h *Handler) ParseIntent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "Text is required.", http.StatusBadRequest)
		return
	}

	h.respond(w, service.ParseIntent(req.Text))
}

// Transactions returns the raw stored records for one account type
func (h *Handler) Transactions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["user_id"]

	accountType, err := models.ParseAccountType(vars["account_type"])
	if err != nil {
		http.Error(w, fmt.Sprintf("Unknown account type: %s", vars["account_type"]), http.StatusBadRequest)
		return
	}

	records, err := h.svc.RawTransactions(userID, accountType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.respond(w, records)
}

// Health reports service liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]string{"status": "ok"})
}

func (h *Handler) respond(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}
