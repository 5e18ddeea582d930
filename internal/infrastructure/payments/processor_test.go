package payments

import (
	"testing"

	"checkout_gateway/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessor(t *testing.T) {
	t.Run("Mock", func(t *testing.T) {
		p, err := NewProcessor(&config.Config{Processor: config.ProcessorConfig{Provider: config.ProcessorMock}})
		require.NoError(t, err)
		assert.IsType(t, &MockGateway{}, p)
	})

	t.Run("Transbank", func(t *testing.T) {
		p, err := NewProcessor(&config.Config{
			Processor: config.ProcessorConfig{Provider: config.ProcessorTransbank},
			Transbank: config.TransbankConfig{
				CommerceCode: config.TransbankIntegrationCommerceCode,
				APIKey:       config.TransbankIntegrationAPIKey,
				BaseURL:      config.TransbankIntegrationURL,
			},
		})
		require.NoError(t, err)
		assert.IsType(t, &TransbankGateway{}, p)
	})

	t.Run("Mercado Pago without token", func(t *testing.T) {
		p, err := NewProcessor(&config.Config{Processor: config.ProcessorConfig{Provider: config.ProcessorMercadoPago}})
		assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
		assert.Nil(t, p)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := NewProcessor(&config.Config{Processor: config.ProcessorConfig{Provider: "paypal"}})
		assert.Error(t, err)
	})
}
