package entities

import "strings"

// CheckoutRequest is a payment-initiation request.
//
// Amount is expressed in currency minor units (CLP has no decimals).
type CheckoutRequest struct {
	Amount    int64  `json:"amount"`
	BuyOrder  string `json:"buy_order"`
	SessionID string `json:"session_id"`
	ReturnURL string `json:"return_url"`
}

// CheckoutSession is what the payment processor issues for a new transaction:
// an opaque token and the hosted payment page the buyer must be sent to.
type CheckoutSession struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// Processor statuses relevant to outcome classification.
const (
	ProcessorStatusAuthorized = "AUTHORIZED"
	ProcessorStatusFailed     = "FAILED"
	ProcessorStatusCanceled   = "CANCELED"
)

// ProcessorCommit is the processor response to a commit/confirm call.
//
// Details keeps the full response body so callers can inspect authorization
// codes, card details, etc. without the gateway declaring every field.
type ProcessorCommit struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

type TransactionOutcome string

const (
	OutcomeSuccess   TransactionOutcome = "success"
	OutcomeRejected  TransactionOutcome = "rejected"
	OutcomeCancelled TransactionOutcome = "cancelled"
	OutcomeError     TransactionOutcome = "error"
)

// OutcomeFromProcessorStatus maps a processor status to a gateway outcome.
// Unknown statuses are errors.
func OutcomeFromProcessorStatus(status string) TransactionOutcome {
	switch status {
	case ProcessorStatusAuthorized:
		return OutcomeSuccess
	case ProcessorStatusFailed:
		return OutcomeRejected
	case ProcessorStatusCanceled:
		return OutcomeCancelled
	default:
		return OutcomeError
	}
}

// Message returns the human readable description sent back to API callers.
func (o TransactionOutcome) Message() string {
	switch o {
	case OutcomeSuccess:
		return "Transaction authorized"
	case OutcomeRejected:
		return "Transaction rejected by the payment processor"
	case OutcomeCancelled:
		return "Transaction cancelled"
	default:
		return "Transaction finished with an unexpected status"
	}
}

// ConfirmationResult is the classified result of a commit.
type ConfirmationResult struct {
	Status  TransactionOutcome `json:"status"`
	Message string             `json:"message"`
	Details map[string]any     `json:"details,omitempty"`
}

type ClientChannel string

const (
	ChannelMobile  ClientChannel = "mobile"
	ChannelDesktop ClientChannel = "desktop"
)

var mobileKeywords = []string{"iphone", "ipad", "ipod", "android"}

// ClassifyUserAgent derives the client channel from a User-Agent header.
func ClassifyUserAgent(userAgent string) ClientChannel {
	ua := strings.ToLower(userAgent)
	for _, kw := range mobileKeywords {
		if strings.Contains(ua, kw) {
			return ChannelMobile
		}
	}
	return ChannelDesktop
}

// ReturnRedirect is the decision taken when the buyer's browser comes back
// from the processor's hosted page.
//
// URL is the destination for the caller's channel. FallbackURL is the web
// destination for the same outcome; it differs from URL only for mobile
// callers and is used by the HTML page when the deep link does not open.
type ReturnRedirect struct {
	Channel     ClientChannel      `json:"channel"`
	Outcome     TransactionOutcome `json:"outcome,omitempty"`
	Token       string             `json:"token,omitempty"`
	URL         string             `json:"url"`
	FallbackURL string             `json:"fallback_url"`
	Confirmed   bool               `json:"confirmed"`
}
