package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase/interfaces"
	"checkout_gateway/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrValidation           = errors.New("validation error")
	ErrInvalidAmount        = fmt.Errorf("%w: amount must be a positive integer", ErrValidation)
	ErrInvalidCheckoutField = fmt.Errorf("%w: buyOrder, sessionId and returnUrl are required", ErrValidation)
	ErrMissingToken         = fmt.Errorf("%w: token is required", ErrValidation)
	ErrInvalidBuyOrder      = fmt.Errorf("%w: invalid buy order", ErrValidation)

	ErrUpstream               = errors.New("payment processor error")
	ErrProcessorNotConfigured = errors.New("payment processor not configured")
	ErrAuditDisabled          = errors.New("transaction audit disabled")
)

// UpstreamError reports a failed call to the payment processor.
// It matches ErrUpstream with errors.Is and unwraps to the cause.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("payment processor %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// Destinations are the URLs a browser return can land on for one channel.
// Base is used when there is nothing to confirm.
type Destinations struct {
	Base    string
	Success string
	Failure string
	Error   string
}

// ReturnPolicy drives HandleReturnRedirect.
type ReturnPolicy struct {
	ConfirmOnReturn bool
	Mobile          Destinations
	Web             Destinations
}

func (p ReturnPolicy) destinationsFor(channel entities.ClientChannel) Destinations {
	if channel == entities.ChannelMobile {
		return p.Mobile
	}
	return p.Web
}

// ReturnInput is what the browser brings back from the processor's hosted page.
// Aborted is set when the buyer cancelled on the processor page; there is
// nothing to commit in that case.
type ReturnInput struct {
	Token     string
	UserAgent string
	Aborted   bool
}

//go:generate mockgen -source=checkout_usecase.go -destination=../adapter/http/handlers/mocks/mock_checkout_usecase.go -package=mocks

// ICheckoutUseCase exposes the checkout flow:
//   - InitiateCheckout => processor create
//   - HandleReturnRedirect => optional processor commit + redirect decision
//   - ConfirmTransaction => processor commit + outcome classification
//   - ListTransactions => audit trail lookup

type ICheckoutUseCase interface {
	InitiateCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error)
	HandleReturnRedirect(ctx context.Context, in ReturnInput) entities.ReturnRedirect
	ConfirmTransaction(ctx context.Context, token string) (entities.ConfirmationResult, error)
	ListTransactions(ctx context.Context, buyOrder string) ([]entities.TransactionRecord, error)
}

type CheckoutUseCase struct {
	processor interfaces.IPaymentProcessor
	records   interfaces.ITransactionRecordRepository
	policy    ReturnPolicy
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

// NewCheckoutUseCase wires the use case. records may be nil, which disables
// the audit trail.
func NewCheckoutUseCase(processor interfaces.IPaymentProcessor, records interfaces.ITransactionRecordRepository, policy ReturnPolicy) *CheckoutUseCase {
	return &CheckoutUseCase{processor: processor, records: records, policy: policy}
}

func (u *CheckoutUseCase) InitiateCheckout(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("amount", req.Amount),
		zap.String("buy_order", req.BuyOrder),
		zap.String("session_id", req.SessionID),
		zap.String("return_url", req.ReturnURL),
	)
	log.Info("[checkout][usecase] init start")

	if req.Amount <= 0 {
		log.Warn("[checkout][usecase] invalid amount")
		return entities.CheckoutSession{}, ErrInvalidAmount
	}
	if strings.TrimSpace(req.BuyOrder) == "" || strings.TrimSpace(req.SessionID) == "" || strings.TrimSpace(req.ReturnURL) == "" {
		log.Warn("[checkout][usecase] missing checkout fields")
		return entities.CheckoutSession{}, ErrInvalidCheckoutField
	}
	if u.processor == nil {
		log.Error("[checkout][usecase] payment processor not configured")
		return entities.CheckoutSession{}, &UpstreamError{Op: "create", Err: ErrProcessorNotConfigured}
	}

	session, err := u.processor.Create(ctx, req.BuyOrder, req.SessionID, req.Amount, req.ReturnURL)
	if err != nil {
		log.Error("[checkout][usecase] processor create failed", zap.Error(err))
		return entities.CheckoutSession{}, &UpstreamError{Op: "create", Err: err}
	}
	log.Info("[checkout][usecase] processor create success",
		zap.String("token", session.Token),
		zap.String("url", session.URL),
	)

	u.record(ctx, entities.TransactionRecord{
		Token:     session.Token,
		BuyOrder:  req.BuyOrder,
		SessionID: req.SessionID,
		Amount:    req.Amount,
		Stage:     entities.StageInitiated,
		Details:   map[string]any{"url": session.URL, "return_url": req.ReturnURL},
	})

	return session, nil
}

func (u *CheckoutUseCase) HandleReturnRedirect(ctx context.Context, in ReturnInput) entities.ReturnRedirect {
	token := strings.TrimSpace(in.Token)
	channel := entities.ClassifyUserAgent(in.UserAgent)
	dest := u.policy.destinationsFor(channel)
	log := logger.FromCtx(ctx).With(
		zap.String("token", token),
		zap.String("channel", string(channel)),
		zap.Bool("aborted", in.Aborted),
	)
	log.Info("[checkout][usecase] return start")

	if token == "" {
		log.Info("[checkout][usecase] return without token; redirecting to base")
		return entities.ReturnRedirect{
			Channel:     channel,
			URL:         dest.Base,
			FallbackURL: u.policy.Web.Base,
		}
	}

	redirect := entities.ReturnRedirect{Channel: channel, Token: token}
	record := entities.TransactionRecord{Token: token, Stage: entities.StageReturned, Channel: channel}

	switch {
	case in.Aborted:
		redirect.Outcome = entities.OutcomeCancelled
		redirect.URL = withToken(dest.Failure, token)
		redirect.FallbackURL = withToken(u.policy.Web.Failure, token)

	case !u.policy.ConfirmOnReturn:
		redirect.URL = withToken(dest.Base, token)
		redirect.FallbackURL = withToken(u.policy.Web.Base, token)

	default:
		// The buyer's browser may go away mid-commit; the commit still has to land.
		commit, err := u.commit(context.WithoutCancel(ctx), token)
		if err != nil {
			log.Error("[checkout][usecase] return commit failed", zap.Error(err))
			redirect.Outcome = entities.OutcomeError
			redirect.URL = withToken(dest.Error, token)
			redirect.FallbackURL = withToken(u.policy.Web.Error, token)
			record.Outcome = entities.OutcomeError
			record.Details = map[string]any{"error": err.Error()}
			break
		}

		outcome := entities.OutcomeFromProcessorStatus(commit.Status)
		redirect.Confirmed = true
		redirect.Outcome = outcome
		record.ProcessorStatus = commit.Status
		record.BuyOrder = stringDetail(commit.Details, "buy_order")
		record.SessionID = stringDetail(commit.Details, "session_id")
		record.Details = commit.Details
		if outcome == entities.OutcomeSuccess {
			redirect.URL = withToken(dest.Success, token)
			redirect.FallbackURL = withToken(u.policy.Web.Success, token)
		} else {
			redirect.URL = withToken(dest.Failure, token)
			redirect.FallbackURL = withToken(u.policy.Web.Failure, token)
		}
	}

	if record.Outcome == "" {
		record.Outcome = redirect.Outcome
	}
	u.record(ctx, record)

	log.Info("[checkout][usecase] return resolved",
		zap.String("outcome", string(redirect.Outcome)),
		zap.Bool("confirmed", redirect.Confirmed),
		zap.String("url", redirect.URL),
	)
	return redirect
}

func (u *CheckoutUseCase) ConfirmTransaction(ctx context.Context, token string) (entities.ConfirmationResult, error) {
	token = strings.TrimSpace(token)
	log := logger.FromCtx(ctx).With(zap.String("token", token))
	log.Info("[checkout][usecase] confirm start")

	if token == "" {
		log.Warn("[checkout][usecase] confirm without token")
		return entities.ConfirmationResult{}, ErrMissingToken
	}

	commit, err := u.commit(ctx, token)
	if err != nil {
		log.Error("[checkout][usecase] confirm commit failed", zap.Error(err))
		return entities.ConfirmationResult{}, err
	}

	outcome := entities.OutcomeFromProcessorStatus(commit.Status)
	details := commit.Details
	if details == nil {
		details = map[string]any{"status": commit.Status}
	}
	result := entities.ConfirmationResult{
		Status:  outcome,
		Message: outcome.Message(),
		Details: details,
	}

	u.record(ctx, entities.TransactionRecord{
		Token:           token,
		Stage:           entities.StageConfirmed,
		Outcome:         outcome,
		ProcessorStatus: commit.Status,
		BuyOrder:        stringDetail(details, "buy_order"),
		SessionID:       stringDetail(details, "session_id"),
		Details:         details,
	})

	log.Info("[checkout][usecase] confirm success",
		zap.String("processor_status", commit.Status),
		zap.String("outcome", string(outcome)),
	)
	return result, nil
}

func (u *CheckoutUseCase) ListTransactions(ctx context.Context, buyOrder string) ([]entities.TransactionRecord, error) {
	buyOrder = strings.TrimSpace(buyOrder)
	if buyOrder == "" {
		return nil, ErrInvalidBuyOrder
	}
	if u.records == nil {
		return nil, ErrAuditDisabled
	}

	items, err := u.records.ListByBuyOrder(ctx, buyOrder)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (u *CheckoutUseCase) commit(ctx context.Context, token string) (entities.ProcessorCommit, error) {
	if u.processor == nil {
		return entities.ProcessorCommit{}, &UpstreamError{Op: "commit", Err: ErrProcessorNotConfigured}
	}
	commit, err := u.processor.Commit(ctx, token)
	if err != nil {
		return entities.ProcessorCommit{}, &UpstreamError{Op: "commit", Err: err}
	}
	return commit, nil
}

// record writes an audit entry. Failures are logged and otherwise ignored.
func (u *CheckoutUseCase) record(ctx context.Context, r entities.TransactionRecord) {
	if u.records == nil {
		return
	}
	r.ID = uuid.NewString()
	r.CreatedAt = time.Now().UTC()
	if _, err := u.records.Create(ctx, r); err != nil {
		logger.FromCtx(ctx).Warn("[checkout][usecase] audit record failed",
			zap.String("token", r.Token),
			zap.String("stage", string(r.Stage)),
			zap.Error(err),
		)
	}
}

// withToken appends the token as a query parameter. Custom schemes
// (deep links) parse like any other URL.
func withToken(raw, token string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		sep := "?"
		if strings.Contains(raw, "?") {
			sep = "&"
		}
		return raw + sep + "token=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}

func stringDetail(details map[string]any, key string) string {
	if v, ok := details[key].(string); ok {
		return v
	}
	return ""
}
