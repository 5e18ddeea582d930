package response

import (
	"time"

	"checkout_gateway/internal/domain/entities"
)

// InitResponse carries the processor token and hosted page URL. redirectUrl
// mirrors url for clients that read that key.
type InitResponse struct {
	Token       string `json:"token"`
	URL         string `json:"url"`
	RedirectURL string `json:"redirectUrl"`
}

func FromCheckoutSession(s entities.CheckoutSession) InitResponse {
	return InitResponse{Token: s.Token, URL: s.URL, RedirectURL: s.URL}
}

type ConfirmResponse struct {
	Status  string         `json:"status" example:"success"`
	Message string         `json:"message" example:"Transaction authorized"`
	Details map[string]any `json:"details"`
}

func FromConfirmationResult(r entities.ConfirmationResult) ConfirmResponse {
	return ConfirmResponse{
		Status:  string(r.Status),
		Message: r.Message,
		Details: r.Details,
	}
}

type HealthResponse struct {
	Status         string   `json:"status" example:"ok"`
	Environment    string   `json:"environment" example:"development"`
	AllowedOrigins []string `json:"allowedOrigins"`
	CORSOrigins    string   `json:"corsOrigins" example:"default origins"`
}

type TransactionRecordResponse struct {
	ID              string         `json:"id"`
	Token           string         `json:"token"`
	BuyOrder        string         `json:"buy_order,omitempty"`
	SessionID       string         `json:"session_id,omitempty"`
	Amount          int64          `json:"amount,omitempty"`
	Stage           string         `json:"stage"`
	Outcome         string         `json:"outcome,omitempty"`
	ProcessorStatus string         `json:"processor_status,omitempty"`
	Channel         string         `json:"channel,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	Details         map[string]any `json:"details,omitempty"`
}

func FromTransactionRecord(r entities.TransactionRecord) TransactionRecordResponse {
	return TransactionRecordResponse{
		ID:              r.ID,
		Token:           r.Token,
		BuyOrder:        r.BuyOrder,
		SessionID:       r.SessionID,
		Amount:          r.Amount,
		Stage:           string(r.Stage),
		Outcome:         string(r.Outcome),
		ProcessorStatus: r.ProcessorStatus,
		Channel:         string(r.Channel),
		CreatedAt:       r.CreatedAt,
		Details:         r.Details,
	}
}

func FromTransactionRecords(records []entities.TransactionRecord) []TransactionRecordResponse {
	out := make([]TransactionRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromTransactionRecord(r))
	}
	return out
}
