package payments

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"
	"checkout_gateway/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// mockMaxSessions caps how many uncommitted sessions the mock remembers.
// The oldest is forgotten first.
const mockMaxSessions = 1024

// MockGateway stands in for a real processor when PAYMENT_GATEWAY_MOCK is on.
//
// Tokens prefixed with "FAILED-" or "CANCELED-" commit with that status, which
// lets a frontend walk every branch without a sandbox account. Everything else
// is authorized.
//
// There is no hosted page: the checkout URL points straight back at the
// caller's return URL with token_ws set, as if the buyer had paid.
type MockGateway struct {
	mu          sync.Mutex
	sessions    map[string]mockSession
	order       []string
	maxSessions int
	now         func() time.Time
}

type mockSession struct {
	buyOrder  string
	sessionID string
	amount    int64
}

var _ interfaces.IPaymentProcessor = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	logger.L().Info("[payment][mock] mock mode enabled")
	return &MockGateway{
		sessions:    map[string]mockSession{},
		maxSessions: mockMaxSessions,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (g *MockGateway) Create(ctx context.Context, buyOrder, sessionID string, amount int64, returnURL string) (entities.CheckoutSession, error) {
	target, err := url.Parse(returnURL)
	if err != nil {
		return entities.CheckoutSession{}, fmt.Errorf("mock: invalid return url: %w", err)
	}
	token := strings.ReplaceAll(uuid.NewString(), "-", "")

	g.remember(token, mockSession{buyOrder: buyOrder, sessionID: sessionID, amount: amount})

	q := target.Query()
	q.Set("token_ws", token)
	target.RawQuery = q.Encode()
	checkoutURL := target.String()
	logger.FromCtx(ctx).Info("[payment][mock] create success",
		zap.String("token", token),
		zap.String("buy_order", buyOrder),
		zap.Int64("amount", amount),
	)
	return entities.CheckoutSession{Token: token, URL: checkoutURL}, nil
}

func (g *MockGateway) Commit(ctx context.Context, token string) (entities.ProcessorCommit, error) {
	status := entities.ProcessorStatusAuthorized
	switch {
	case strings.HasPrefix(token, "FAILED-"):
		status = entities.ProcessorStatusFailed
	case strings.HasPrefix(token, "CANCELED-"):
		status = entities.ProcessorStatusCanceled
	}

	g.mu.Lock()
	s := g.sessions[token]
	delete(g.sessions, token)
	g.mu.Unlock()

	details := map[string]any{
		"status":           status,
		"buy_order":        s.buyOrder,
		"session_id":       s.sessionID,
		"amount":           s.amount,
		"transaction_date": g.now().Format(time.RFC3339Nano),
		"response_code":    0,
	}
	if status == entities.ProcessorStatusAuthorized {
		details["authorization_code"] = "1213"
	} else {
		details["response_code"] = -1
	}

	logger.FromCtx(ctx).Info("[payment][mock] commit success",
		zap.String("token", token),
		zap.String("status", status),
	)
	return entities.ProcessorCommit{Status: status, Details: details}, nil
}

func (g *MockGateway) remember(token string, s mockSession) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for len(g.sessions) >= g.maxSessions && len(g.order) > 0 {
		oldest := g.order[0]
		g.order = g.order[1:]
		delete(g.sessions, oldest)
	}
	// committed tokens linger in order; compact once it doubles
	if len(g.order) >= 2*g.maxSessions {
		live := g.order[:0]
		for _, t := range g.order {
			if _, ok := g.sessions[t]; ok {
				live = append(live, t)
			}
		}
		g.order = live
	}
	g.sessions[token] = s
	g.order = append(g.order, token)
}
