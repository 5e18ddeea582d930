package handlers

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	request "checkout_gateway/internal/adapter/http/dto/request"
	response "checkout_gateway/internal/adapter/http/dto/response"
	"checkout_gateway/internal/config"
	"checkout_gateway/internal/domain/entities"
	"checkout_gateway/internal/usecase"
	"checkout_gateway/pkg"
	"checkout_gateway/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"
)

//go:embed templates/return.html
var templatesFS embed.FS

var returnPage = template.Must(template.ParseFS(templatesFS, "templates/return.html"))

// ReturnPageOptions controls how /checkout/return answers the browser.
type ReturnPageOptions struct {
	Mode          string
	FallbackDelay time.Duration
}

// CheckoutHandler handles the checkout HTTP surface.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
	page    ReturnPageOptions
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase, page ReturnPageOptions) *CheckoutHandler {
	if page.Mode == "" {
		page.Mode = config.ReturnModeRedirect
	}
	return &CheckoutHandler{usecase: uc, page: page}
}

// InitCheckout creates a transaction with the payment processor.
//
//	@Summary		Initiate a checkout
//	@Description	Creates a transaction with the payment processor and returns its token and hosted page URL.
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.InitRequest	true	"Checkout request"
//	@Success		200		{object}	response.InitResponse
//	@Failure		500		{object}	pkg.HTTPError
//	@Router			/checkout/init [post]
func (h *CheckoutHandler) InitCheckout(c *gin.Context) {
	ctx := c.Request.Context()
	log := logger.FromCtx(ctx)
	log.Info("[checkout][handler] init start",
		zap.String("client_ip", c.ClientIP()),
		zap.String("origin", c.GetHeader("Origin")),
		zap.String("user_agent", c.Request.UserAgent()),
	)

	var payload request.InitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Warn("[checkout][handler] init invalid payload", zap.Error(err))
		writeError(c, pkg.NewDomainError("INVALID_REQUEST", "Invalid checkout request", err, http.StatusInternalServerError))
		return
	}

	req, err := payload.ToEntity()
	if err != nil {
		log.Warn("[checkout][handler] init invalid amount", zap.ByteString("amount", payload.Amount))
		writeError(c, mapCheckoutError(err, http.StatusInternalServerError))
		return
	}

	session, err := h.usecase.InitiateCheckout(ctx, req)
	if err != nil {
		log.Error("[checkout][handler] init failed", zap.Error(err))
		writeError(c, mapCheckoutError(err, http.StatusInternalServerError))
		return
	}
	log.Info("[checkout][handler] init success", zap.String("token", session.Token))

	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

// ReturnFromProcessor receives the browser coming back from the processor's
// hosted page and sends it on to the app or the website.
//
//	@Summary		Browser return from the payment processor
//	@Tags			checkout
//	@Param			token_ws	query	string	false	"Transaction token"
//	@Param			TBK_TOKEN	query	string	false	"Token of an aborted transaction"
//	@Param			token		query	string	false	"Transaction token"
//	@Success		302
//	@Success		200	{string}	string	"HTML hand-off page"
//	@Router			/checkout/return [get]
//	@Router			/checkout/return [post]
func (h *CheckoutHandler) ReturnFromProcessor(c *gin.Context) {
	in := readReturnInput(c)
	redirect := h.usecase.HandleReturnRedirect(c.Request.Context(), in)

	c.Header("Cache-Control", "no-store")
	if h.page.Mode == config.ReturnModeHTML && redirect.Channel == entities.ChannelMobile && redirect.URL != "" {
		c.Render(http.StatusOK, render.HTML{
			Template: returnPage,
			Name:     "return.html",
			Data: gin.H{
				// Deep links use app schemes the template would otherwise filter out.
				"URL":         template.URL(redirect.URL),
				"FallbackURL": redirect.FallbackURL,
				"DelayMillis": h.page.FallbackDelay.Milliseconds(),
				"Message":     returnMessage(redirect),
			},
		})
		return
	}

	target := redirect.URL
	if h.page.Mode == config.ReturnModeHTML && redirect.FallbackURL != "" {
		target = redirect.FallbackURL
	}
	c.Redirect(http.StatusFound, target)
}

// ConfirmTransaction commits a transaction and reports its outcome.
//
//	@Summary		Confirm a transaction
//	@Description	Rejected and cancelled payments are HTTP 200 with a non-success status.
//	@Tags			checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body		request.ConfirmRequest	true	"Token to confirm"
//	@Success		200		{object}	response.ConfirmResponse
//	@Failure		400		{object}	pkg.HTTPError
//	@Failure		500		{object}	pkg.HTTPError
//	@Router			/checkout/confirm [post]
func (h *CheckoutHandler) ConfirmTransaction(c *gin.Context) {
	ctx := c.Request.Context()

	var payload request.ConfirmRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			logger.FromCtx(ctx).Warn("[checkout][handler] confirm invalid payload", zap.Error(err))
		}
	}

	result, err := h.usecase.ConfirmTransaction(ctx, payload.Token)
	if err != nil {
		writeError(c, mapCheckoutError(err, http.StatusBadRequest))
		return
	}

	c.JSON(http.StatusOK, response.FromConfirmationResult(result))
}

// ListTransactions returns the audit trail of a buy order.
//
//	@Summary	List audit records of a buy order
//	@Tags		checkout
//	@Produce	json
//	@Param		buy_order	path		string	true	"Buy order"
//	@Success	200			{array}		response.TransactionRecordResponse
//	@Failure	400			{object}	pkg.HTTPError
//	@Failure	503			{object}	pkg.HTTPError
//	@Router		/checkout/transactions/{buy_order} [get]
func (h *CheckoutHandler) ListTransactions(c *gin.Context) {
	records, err := h.usecase.ListTransactions(c.Request.Context(), c.Param("buy_order"))
	if err != nil {
		logger.FromCtx(c.Request.Context()).Warn("[checkout][handler] list transactions failed", zap.Error(err))
		writeError(c, mapCheckoutError(err, http.StatusBadRequest))
		return
	}
	c.JSON(http.StatusOK, response.FromTransactionRecords(records))
}

// readReturnInput collects the token from every place a processor may put it.
// Webpay Plus posts token_ws on completion and TBK_TOKEN when the buyer
// aborts; Mercado Pago appends external_reference to its back URLs.
func readReturnInput(c *gin.Context) usecase.ReturnInput {
	in := usecase.ReturnInput{UserAgent: c.Request.UserAgent()}

	tokenWS := firstNonEmpty(c.Query("token_ws"), c.PostForm("token_ws"))
	abortToken := firstNonEmpty(c.Query("TBK_TOKEN"), c.PostForm("TBK_TOKEN"))

	switch {
	case tokenWS != "":
		in.Token = tokenWS
	case abortToken != "":
		in.Token = abortToken
		in.Aborted = true
	default:
		in.Token = firstNonEmpty(
			c.Query("token"),
			c.PostForm("token"),
			c.Query("external_reference"),
		)
	}
	return in
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func returnMessage(r entities.ReturnRedirect) string {
	if r.Outcome == "" {
		return "Payment finished."
	}
	return r.Outcome.Message() + "."
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCheckoutError converts use case errors into the HTTP envelope.
// validationStatus differs per route: init reports bad input as 500.
func mapCheckoutError(err error, validationStatus int) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidAmount), errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainError("INVALID_AMOUNT", "Amount must be a positive integer", err, validationStatus)
	case errors.Is(err, usecase.ErrInvalidCheckoutField):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid checkout request", err, validationStatus)
	case errors.Is(err, usecase.ErrMissingToken):
		return pkg.NewDomainErrorSimple("TOKEN_REQUIRED", "Token is required", validationStatus)
	case errors.Is(err, usecase.ErrInvalidBuyOrder):
		return pkg.NewDomainErrorSimple("INVALID_BUY_ORDER", "Invalid buy order", validationStatus)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, validationStatus)
	case errors.Is(err, usecase.ErrAuditDisabled):
		return pkg.NewDomainErrorSimple("AUDIT_DISABLED", "Transaction audit is disabled", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrUpstream):
		cause := err
		var upstream *usecase.UpstreamError
		if errors.As(err, &upstream) && upstream.Err != nil {
			cause = upstream.Err
		}
		return pkg.NewDomainError("PAYMENT_PROCESSOR_ERROR", "Payment processor request failed", cause, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
