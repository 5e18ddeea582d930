//go:generate mockgen -source=payment_processor_interface.go -destination=mocks/payment_processor_interface.go -package=mock_interfaces

package interfaces

import (
	"context"
	"errors"

	"checkout_gateway/internal/domain/entities"
)

// IPaymentProcessor abstracts the external payment processor (e.g. Transbank Webpay Plus).
//
// Both calls are remote and fallible. Implementations must validate that the
// fields the gateway relies on (token/url on create, status on commit) are
// present before returning.
type IPaymentProcessor interface {
	Create(ctx context.Context, buyOrder, sessionID string, amount int64, returnURL string) (entities.CheckoutSession, error)
	Commit(ctx context.Context, token string) (entities.ProcessorCommit, error)
}

// ErrMalformedProcessorResponse is returned by processors when a response
// lacks a field the gateway relies on.
var ErrMalformedProcessorResponse = errors.New("malformed payment processor response")
