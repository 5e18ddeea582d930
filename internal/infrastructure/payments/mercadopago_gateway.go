package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	appconfig "checkout_gateway/internal/config"
	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"
	"checkout_gateway/pkg/logger"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// Mercado Pago amounts are in major units; the gateway works in minor units.
var currencyExponent = map[string]int{
	"CLP": 0,
	"COP": 0,
	"ARS": 2,
	"BRL": 2,
	"MXN": 2,
	"PEN": 2,
	"UYU": 2,
}

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type paymentSearcher interface {
	Search(ctx context.Context, request payment.SearchRequest) (*payment.SearchResponse, error)
}

// MercadoPagoGateway implements the processor port on Checkout Pro.
//
// The token handed to callers is the preference external_reference (a fresh
// UUID). Commit looks up the latest payment made against that reference.
type MercadoPagoGateway struct {
	preferences preferenceCreator
	payments    paymentSearcher
	currencyID  string
	itemTitle   string
	sandbox     bool
}

var _ interfaces.IPaymentProcessor = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.MercadoPagoConfig) (*MercadoPagoGateway, error) {
	if cfg.AccessToken == "" {
		logger.L().Error("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		logger.L().Error("[payment][mercadopago] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.L().Info("[payment][mercadopago] client initialized", zap.Bool("sandbox", cfg.Sandbox))

	return &MercadoPagoGateway{
		preferences: preference.NewClient(sdkCfg),
		payments:    payment.NewClient(sdkCfg),
		currencyID:  cfg.CurrencyID,
		itemTitle:   cfg.ItemTitle,
		sandbox:     cfg.Sandbox,
	}, nil
}

func (g *MercadoPagoGateway) Create(ctx context.Context, buyOrder, sessionID string, amount int64, returnURL string) (entities.CheckoutSession, error) {
	reference := uuid.NewString()
	log := logger.FromCtx(ctx).With(
		zap.String("buy_order", buyOrder),
		zap.Int64("amount", amount),
		zap.String("external_reference", reference),
	)
	log.Info("[payment][mercadopago] create preference start")

	req := preference.Request{
		ExternalReference: reference,
		Items: []preference.ItemRequest{
			{
				ID:          buyOrder,
				Title:       strings.TrimSpace(g.itemTitle + " " + buyOrder),
				Description: "session " + sessionID,
				CurrencyID:  g.currencyID,
				Quantity:    1,
				UnitPrice:   toMajorUnits(amount, g.currencyID),
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: returnURL,
			Pending: returnURL,
			Failure: returnURL,
		},
		AutoReturn: "approved",
	}

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Error("[payment][mercadopago] sdk create preference failed", zap.Error(err))
		return entities.CheckoutSession{}, err
	}

	checkoutURL := resp.InitPoint
	if g.sandbox && resp.SandboxInitPoint != "" {
		checkoutURL = resp.SandboxInitPoint
	}
	if resp.ID == "" || checkoutURL == "" {
		log.Error("[payment][mercadopago] preference response missing id or init point")
		return entities.CheckoutSession{}, fmt.Errorf("%w: preference without id or init point", interfaces.ErrMalformedProcessorResponse)
	}

	log.Info("[payment][mercadopago] create preference success", zap.String("preference_id", resp.ID))
	return entities.CheckoutSession{Token: reference, URL: checkoutURL}, nil
}

func (g *MercadoPagoGateway) Commit(ctx context.Context, token string) (entities.ProcessorCommit, error) {
	log := logger.FromCtx(ctx).With(zap.String("external_reference", token))
	log.Info("[payment][mercadopago] search payment start")

	resp, err := g.payments.Search(ctx, payment.SearchRequest{
		Limit: 1,
		Filters: map[string]string{
			"external_reference": token,
			"sort":               "date_created",
			"criteria":           "desc",
		},
	})
	if err != nil {
		log.Error("[payment][mercadopago] sdk search failed", zap.Error(err))
		return entities.ProcessorCommit{}, err
	}
	if resp == nil {
		return entities.ProcessorCommit{}, fmt.Errorf("%w: empty search response", interfaces.ErrMalformedProcessorResponse)
	}

	if len(resp.Results) == 0 {
		log.Info("[payment][mercadopago] no payment for reference yet")
		return entities.ProcessorCommit{
			Status:  "PENDING",
			Details: map[string]any{"status": "PENDING", "external_reference": token, "payments": 0},
		}, nil
	}

	latest := resp.Results[0]
	if latest.Status == "" {
		return entities.ProcessorCommit{}, fmt.Errorf("%w: payment without status", interfaces.ErrMalformedProcessorResponse)
	}

	details := map[string]any{}
	if b, err := json.Marshal(latest); err == nil {
		_ = json.Unmarshal(b, &details)
	}
	status := normalizeMercadoPagoStatus(latest.Status)
	details["provider_status"] = latest.Status
	details["status"] = status

	log.Info("[payment][mercadopago] search payment success",
		zap.Any("payment_id", latest.ID),
		zap.String("provider_status", latest.Status),
		zap.String("status", status),
	)
	return entities.ProcessorCommit{Status: status, Details: details}, nil
}

// normalizeMercadoPagoStatus maps Mercado Pago statuses onto the processor
// vocabulary the gateway classifies (AUTHORIZED, FAILED, CANCELED).
func normalizeMercadoPagoStatus(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved":
		return entities.ProcessorStatusAuthorized
	case "rejected":
		return entities.ProcessorStatusFailed
	case "cancelled":
		return entities.ProcessorStatusCanceled
	default:
		return strings.ToUpper(strings.TrimSpace(status))
	}
}

func toMajorUnits(amount int64, currencyID string) float64 {
	exp, ok := currencyExponent[strings.ToUpper(currencyID)]
	if !ok {
		exp = 2
	}
	return float64(amount) / math.Pow10(exp)
}
