package payments

import (
	"fmt"

	"checkout_gateway/internal/config"
	"checkout_gateway/internal/usecase/interfaces"
)

// NewProcessor returns the processor selected by PAYMENT_PROCESSOR.
// On error the returned interface is nil, never a typed nil pointer.
func NewProcessor(cfg *config.Config) (interfaces.IPaymentProcessor, error) {
	switch cfg.Processor.Provider {
	case config.ProcessorMock:
		return NewMockGateway(), nil
	case config.ProcessorMercadoPago:
		gw, err := NewMercadoPagoGateway(cfg.MercadoPago)
		if err != nil {
			return nil, err
		}
		return gw, nil
	case config.ProcessorTransbank, "":
		gw, err := NewTransbankGateway(cfg.Transbank)
		if err != nil {
			return nil, err
		}
		return gw, nil
	default:
		return nil, fmt.Errorf("unknown payment processor %q", cfg.Processor.Provider)
	}
}
