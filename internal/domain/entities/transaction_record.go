package entities

import (
	"time"
)

// TransactionStage identifies which step of the checkout flow produced a record.

type TransactionStage string

const (
	StageInitiated TransactionStage = "initiated"
	StageConfirmed TransactionStage = "confirmed"
	StageReturned  TransactionStage = "returned"
)

// TransactionRecord is an audit entry of a checkout step.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (buy_order-index): buy_order
//
// Records are diagnostic only. The gateway never reads them to decide a
// payment outcome; the processor and its token remain the source of truth.

type TransactionRecord struct {
	ID              string             `json:"id"`
	Token           string             `json:"token"`
	BuyOrder        string             `json:"buy_order"`
	SessionID       string             `json:"session_id,omitempty"`
	Amount          int64              `json:"amount,omitempty"`
	Stage           TransactionStage   `json:"stage"`
	Outcome         TransactionOutcome `json:"outcome,omitempty"`
	ProcessorStatus string             `json:"processor_status,omitempty"`
	Channel         ClientChannel      `json:"channel,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`

	Details map[string]any `json:"details,omitempty"`
}
