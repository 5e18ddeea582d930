package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"checkout_gateway/internal/config"
	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"
	"checkout_gateway/pkg/logger"

	"go.uber.org/zap"
)

const webpayTransactionsPath = "/rswebpaytransaction/api/webpay/v1.2/transactions"

var ErrMissingTransbankCredentials = errors.New("missing TRANSBANK_COMMERCE_CODE or TRANSBANK_API_KEY")

// TransbankAPIError is a non-2xx answer from Webpay Plus.
type TransbankAPIError struct {
	StatusCode int
	Message    string
}

func (e *TransbankAPIError) Error() string {
	return fmt.Sprintf("transbank api error status=%d: %s", e.StatusCode, e.Message)
}

// TransbankGateway talks to the Webpay Plus REST API.
type TransbankGateway struct {
	baseURL      string
	commerceCode string
	apiKey       string
	httpClient   *http.Client
}

var _ interfaces.IPaymentProcessor = (*TransbankGateway)(nil)

func NewTransbankGateway(cfg config.TransbankConfig) (*TransbankGateway, error) {
	if cfg.CommerceCode == "" || cfg.APIKey == "" {
		logger.L().Error("[payment][transbank] missing credentials", zap.String("environment", cfg.Environment))
		return nil, ErrMissingTransbankCredentials
	}
	logger.L().Info("[payment][transbank] client initialized",
		zap.String("environment", cfg.Environment),
		zap.String("base_url", cfg.BaseURL),
		zap.String("commerce_code", cfg.CommerceCode),
	)
	return &TransbankGateway{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		commerceCode: cfg.CommerceCode,
		apiKey:       cfg.APIKey,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type webpayCreateRequest struct {
	BuyOrder  string `json:"buy_order"`
	SessionID string `json:"session_id"`
	Amount    int64  `json:"amount"`
	ReturnURL string `json:"return_url"`
}

type webpayCreateResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

type webpayErrorResponse struct {
	ErrorMessage string `json:"error_message"`
}

func (g *TransbankGateway) Create(ctx context.Context, buyOrder, sessionID string, amount int64, returnURL string) (entities.CheckoutSession, error) {
	log := logger.FromCtx(ctx).With(zap.String("buy_order", buyOrder), zap.Int64("amount", amount))
	log.Info("[payment][transbank] create start")

	body, err := json.Marshal(webpayCreateRequest{
		BuyOrder:  buyOrder,
		SessionID: sessionID,
		Amount:    amount,
		ReturnURL: returnURL,
	})
	if err != nil {
		return entities.CheckoutSession{}, err
	}

	raw, err := g.do(ctx, http.MethodPost, g.baseURL+webpayTransactionsPath, body)
	if err != nil {
		log.Error("[payment][transbank] create failed", zap.Error(err))
		return entities.CheckoutSession{}, err
	}

	var res webpayCreateResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		log.Error("[payment][transbank] create response decode failed", zap.Error(err))
		return entities.CheckoutSession{}, fmt.Errorf("%w: %v", interfaces.ErrMalformedProcessorResponse, err)
	}
	if res.Token == "" || res.URL == "" {
		log.Error("[payment][transbank] create response missing token or url", zap.ByteString("response", raw))
		return entities.CheckoutSession{}, fmt.Errorf("%w: create response missing token or url", interfaces.ErrMalformedProcessorResponse)
	}

	log.Info("[payment][transbank] create success", zap.String("token", res.Token))
	return entities.CheckoutSession{Token: res.Token, URL: res.URL}, nil
}

func (g *TransbankGateway) Commit(ctx context.Context, token string) (entities.ProcessorCommit, error) {
	log := logger.FromCtx(ctx).With(zap.String("token", token))
	log.Info("[payment][transbank] commit start")

	raw, err := g.do(ctx, http.MethodPut, g.baseURL+webpayTransactionsPath+"/"+url.PathEscape(token), nil)
	if err != nil {
		log.Error("[payment][transbank] commit failed", zap.Error(err))
		return entities.ProcessorCommit{}, err
	}

	details := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&details); err != nil {
		log.Error("[payment][transbank] commit response decode failed", zap.Error(err))
		return entities.ProcessorCommit{}, fmt.Errorf("%w: %v", interfaces.ErrMalformedProcessorResponse, err)
	}
	status, _ := details["status"].(string)
	if status == "" {
		log.Error("[payment][transbank] commit response missing status", zap.ByteString("response", raw))
		return entities.ProcessorCommit{}, fmt.Errorf("%w: commit response missing status", interfaces.ErrMalformedProcessorResponse)
	}

	log.Info("[payment][transbank] commit success",
		zap.String("status", status),
		zap.Any("response_code", details["response_code"]),
	)
	return entities.ProcessorCommit{Status: status, Details: details}, nil
}

func (g *TransbankGateway) do(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Tbk-Api-Key-Id", g.commerceCode)
	req.Header.Set("Tbk-Api-Key-Secret", g.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read transbank response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(raw))
		var apiErr webpayErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.ErrorMessage != "" {
			msg = apiErr.ErrorMessage
		}
		return nil, &TransbankAPIError{StatusCode: resp.StatusCode, Message: msg}
	}
	return raw, nil
}
