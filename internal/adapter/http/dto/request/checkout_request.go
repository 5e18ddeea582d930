package request

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"checkout_gateway/internal/domain/entities"
)

var (
	ErrInvalidAmount = errors.New("amount must be an integer")
)

// InitRequest is the body of POST /checkout/init.
//
// Amount is kept raw so that "1990", 19.9 or null are rejected instead of
// being coerced by the decoder.
type InitRequest struct {
	Amount    json.RawMessage `json:"amount" swaggertype:"integer" example:"1990"`
	BuyOrder  string          `json:"buyOrder" example:"ORD-1001"`
	SessionID string          `json:"sessionId" example:"session-42"`
	ReturnURL string          `json:"returnUrl" example:"https://api.example.com/checkout/return"`
}

// ResolveAmount returns the amount in minor units. 1990.0 is accepted.
func (r InitRequest) ResolveAmount() (int64, error) {
	raw := strings.TrimSpace(string(r.Amount))
	if raw == "" || raw == "null" || strings.HasPrefix(raw, "\"") {
		return 0, ErrInvalidAmount
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, ErrInvalidAmount
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, ErrInvalidAmount
	}
	return int64(f), nil
}

func (r InitRequest) ToEntity() (entities.CheckoutRequest, error) {
	amount, err := r.ResolveAmount()
	if err != nil {
		return entities.CheckoutRequest{}, err
	}
	return entities.CheckoutRequest{
		Amount:    amount,
		BuyOrder:  strings.TrimSpace(r.BuyOrder),
		SessionID: strings.TrimSpace(r.SessionID),
		ReturnURL: strings.TrimSpace(r.ReturnURL),
	}, nil
}

// ConfirmRequest is the body of POST /checkout/confirm.
type ConfirmRequest struct {
	Token string `json:"token" example:"01ab23cd"`
}
