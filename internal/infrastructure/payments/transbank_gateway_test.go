package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"checkout_gateway/internal/config"
	"checkout_gateway/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper lets tests answer HTTP calls without a server.
type MockRoundTripper func(req *http.Request) (*http.Response, error)

func (f MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func newTestTransbankGateway(t *testing.T, rt MockRoundTripper) *TransbankGateway {
	t.Helper()
	gw, err := NewTransbankGateway(config.TransbankConfig{
		Environment:  "integration",
		CommerceCode: config.TransbankIntegrationCommerceCode,
		APIKey:       config.TransbankIntegrationAPIKey,
		BaseURL:      config.TransbankIntegrationURL + "/",
		Timeout:      time.Second,
	})
	require.NoError(t, err)
	gw.httpClient.Transport = rt
	return gw
}

func TestNewTransbankGateway_MissingCredentials(t *testing.T) {
	_, err := NewTransbankGateway(config.TransbankConfig{BaseURL: config.TransbankProductionURL})
	assert.ErrorIs(t, err, ErrMissingTransbankCredentials)
}

func TestTransbankGateway_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		gw := newTestTransbankGateway(t, func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "https://webpay3gint.transbank.cl/rswebpaytransaction/api/webpay/v1.2/transactions", req.URL.String())
			assert.Equal(t, config.TransbankIntegrationCommerceCode, req.Header.Get("Tbk-Api-Key-Id"))
			assert.Equal(t, config.TransbankIntegrationAPIKey, req.Header.Get("Tbk-Api-Key-Secret"))
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "ORD1", body["buy_order"])
			assert.Equal(t, "S1", body["session_id"])
			assert.Equal(t, float64(1990), body["amount"])
			assert.Equal(t, "https://x/return", body["return_url"])

			return jsonResponse(http.StatusOK, `{"token":"01ab23","url":"https://webpay3gint.transbank.cl/webpayserver/initTransaction"}`), nil
		})

		session, err := gw.Create(context.Background(), "ORD1", "S1", 1990, "https://x/return")
		require.NoError(t, err)
		assert.Equal(t, "01ab23", session.Token)
		assert.Equal(t, "https://webpay3gint.transbank.cl/webpayserver/initTransaction", session.URL)
	})

	t.Run("API error carries the message", func(t *testing.T) {
		gw := newTestTransbankGateway(t, func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusUnprocessableEntity, `{"error_message":"Invalid value for parameter: amount"}`), nil
		})

		_, err := gw.Create(context.Background(), "ORD1", "S1", 1990, "https://x/return")
		var apiErr *TransbankAPIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
		assert.Equal(t, "Invalid value for parameter: amount", apiErr.Message)
	})

	t.Run("Missing token is malformed", func(t *testing.T) {
		gw := newTestTransbankGateway(t, func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"url":"https://pay"}`), nil
		})

		_, err := gw.Create(context.Background(), "ORD1", "S1", 1990, "https://x/return")
		assert.ErrorIs(t, err, interfaces.ErrMalformedProcessorResponse)
	})

	t.Run("Non JSON body is malformed", func(t *testing.T) {
		gw := newTestTransbankGateway(t, func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `<html>maintenance</html>`), nil
		})

		_, err := gw.Create(context.Background(), "ORD1", "S1", 1990, "https://x/return")
		assert.ErrorIs(t, err, interfaces.ErrMalformedProcessorResponse)
	})

	t.Run("Transport error", func(t *testing.T) {
		gw := newTestTransbankGateway(t, func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection reset")
		})

		_, err := gw.Create(context.Background(), "ORD1", "S1", 1990, "https://x/return")
		assert.Error(t, err)
	})
}

func TestTransbankGateway_Commit(t *testing.T) {
	t.Run("Success keeps the full response", func(t *testing.T) {
		gw := newTestTransbankGateway(t, func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPut, req.Method)
			assert.Equal(t, "/rswebpaytransaction/api/webpay/v1.2/transactions/T1", req.URL.Path)
			return jsonResponse(http.StatusOK, `{
				"vci": "TSY",
				"amount": 1990,
				"status": "AUTHORIZED",
				"buy_order": "ORD1",
				"session_id": "S1",
				"card_detail": {"card_number": "6623"},
				"authorization_code": "1213",
				"response_code": 0
			}`), nil
		})

		commit, err := gw.Commit(context.Background(), "T1")
		require.NoError(t, err)
		assert.Equal(t, "AUTHORIZED", commit.Status)
		assert.Equal(t, "ORD1", commit.Details["buy_order"])
		assert.Equal(t, json.Number("1990"), commit.Details["amount"])
		assert.Contains(t, commit.Details, "card_detail")
	})

	t.Run("Token is path escaped", func(t *testing.T) {
		gw := newTestTransbankGateway(t, func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "/rswebpaytransaction/api/webpay/v1.2/transactions/a%2Fb", req.URL.EscapedPath())
			return jsonResponse(http.StatusOK, `{"status":"FAILED"}`), nil
		})

		commit, err := gw.Commit(context.Background(), "a/b")
		require.NoError(t, err)
		assert.Equal(t, "FAILED", commit.Status)
	})

	t.Run("Missing status is malformed", func(t *testing.T) {
		gw := newTestTransbankGateway(t, func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"buy_order":"ORD1"}`), nil
		})

		_, err := gw.Commit(context.Background(), "T1")
		assert.ErrorIs(t, err, interfaces.ErrMalformedProcessorResponse)
	})

	t.Run("Plain text error body", func(t *testing.T) {
		gw := newTestTransbankGateway(t, func(req *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusInternalServerError, "boom"), nil
		})

		_, err := gw.Commit(context.Background(), "T1")
		var apiErr *TransbankAPIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "boom", apiErr.Message)
	})
}
