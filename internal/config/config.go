package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProcessorTransbank   = "transbank"
	ProcessorMercadoPago = "mercadopago"
	ProcessorMock        = "mock"

	ReturnModeRedirect = "redirect"
	ReturnModeHTML     = "html"

	// Public Webpay Plus integration credentials published by Transbank.
	TransbankIntegrationCommerceCode = "597055555532"
	TransbankIntegrationAPIKey       = "579B532A7440BB0C9079DED94D31EA1615BACEB56610332264630D42D0A36B1C"
	TransbankIntegrationURL          = "https://webpay3gint.transbank.cl"
	TransbankProductionURL           = "https://webpay3g.transbank.cl"
)

// DefaultCORSOrigins is used when CORS_ORIGIN is unset. It includes the
// Capacitor/Ionic app schemes and "*".
var DefaultCORSOrigins = []string{
	"http://localhost:8100",
	"capacitor://localhost",
	"ionic://localhost",
	"http://localhost",
	"http://localhost:8080",
	"*",
}

type Config struct {
	Environment string
	Port        int

	// CORSOrigins is the effective allow-list; CORSOriginsRaw is the raw
	// CORS_ORIGIN value, empty when defaults are in use.
	CORSOrigins    []string
	CORSOriginsRaw string

	// TrustedProxies lists the peers whose X-Forwarded-For is believed when
	// resolving the client IP. Empty trusts none.
	TrustedProxies []string

	Processor   ProcessorConfig
	Transbank   TransbankConfig
	MercadoPago MercadoPagoConfig
	Return      ReturnConfig
	Log         LogConfig
	Audit       AuditConfig
	RateLimit   RateLimitConfig
}

type ProcessorConfig struct {
	Provider string
}

type TransbankConfig struct {
	Environment  string
	CommerceCode string
	APIKey       string
	BaseURL      string
	Timeout      time.Duration
}

type MercadoPagoConfig struct {
	AccessToken string
	CurrencyID  string
	ItemTitle   string
	Sandbox     bool
}

type Destinations struct {
	Base    string
	Success string
	Failure string
	Error   string
}

type ReturnConfig struct {
	Mode            string
	ConfirmOnReturn bool
	FallbackDelay   time.Duration
	Mobile          Destinations
	Web             Destinations
}

type LogConfig struct {
	Level      string
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

type AuditConfig struct {
	Enabled   bool
	TableName string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOriginsLabel is what /health reports for the raw CORS setting.
func (c *Config) AllowedOriginsLabel() string {
	if c.CORSOriginsRaw == "" {
		return "default origins"
	}
	return c.CORSOriginsRaw
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return FromEnv(), nil
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() *Config {
	env := getEnv("APP_ENV", getEnv("NODE_ENV", "development"))

	corsRaw := strings.TrimSpace(os.Getenv("CORS_ORIGIN"))
	origins := getEnvAsList("CORS_ORIGIN", nil)
	if len(origins) == 0 {
		corsRaw = ""
		origins = append([]string(nil), DefaultCORSOrigins...)
	}

	cfg := &Config{
		Environment:    env,
		Port:           getEnvAsInt("PORT", 3000),
		CORSOrigins:    origins,
		CORSOriginsRaw: corsRaw,
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES", nil),
		Processor:      ProcessorConfig{Provider: resolveProvider()},
		Transbank:      loadTransbank(env),
		MercadoPago: MercadoPagoConfig{
			AccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
			CurrencyID:  getEnv("MERCADOPAGO_CURRENCY_ID", "CLP"),
			ItemTitle:   getEnv("MERCADOPAGO_ITEM_TITLE", "Order"),
			Sandbox:     strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-"),
		},
		Return: loadReturn(),
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Filename:   getEnv("LOG_FILENAME", ""),
			MaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
			MaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
			Compress:   getEnvAsBool("LOG_COMPRESS", true),
		},
		Audit: AuditConfig{
			Enabled:   getEnvAsBool("AUDIT_ENABLED", false),
			TableName: getEnv("TRANSACTIONS_TABLE", "checkout_transactions"),
			Region:    getEnv("AWS_REGION", "us-east-1"),
			Endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
			// Empty keys leave the SDK's default credential chain in charge.
			AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
		RateLimit: RateLimitConfig{
			Enabled: getEnvAsBool("RATE_LIMIT_ENABLED", true),
			RPS:     getEnvAsFloat("RATE_LIMIT_RPS", 5),
			Burst:   getEnvAsInt("RATE_LIMIT_BURST", 10),
		},
	}
	return cfg
}

func resolveProvider() string {
	if isMockEnabled() {
		return ProcessorMock
	}
	switch p := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_PROCESSOR"))); p {
	case ProcessorMercadoPago, ProcessorMock:
		return p
	default:
		return ProcessorTransbank
	}
}

func isMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func loadTransbank(appEnv string) TransbankConfig {
	tbEnv := strings.ToLower(getEnv("TRANSBANK_ENVIRONMENT", "integration"))
	if tbEnv != "production" {
		tbEnv = "integration"
	}

	cfg := TransbankConfig{
		Environment:  tbEnv,
		CommerceCode: os.Getenv("TRANSBANK_COMMERCE_CODE"),
		APIKey:       os.Getenv("TRANSBANK_API_KEY"),
		BaseURL:      os.Getenv("TRANSBANK_BASE_URL"),
		Timeout:      getEnvAsDuration("TRANSBANK_TIMEOUT", 30*time.Second),
	}

	if cfg.BaseURL == "" {
		if tbEnv == "production" {
			cfg.BaseURL = TransbankProductionURL
		} else {
			cfg.BaseURL = TransbankIntegrationURL
		}
	}
	// Integration credentials are public; never fall back to them in production.
	if tbEnv == "integration" && appEnv != "production" {
		if cfg.CommerceCode == "" {
			cfg.CommerceCode = TransbankIntegrationCommerceCode
		}
		if cfg.APIKey == "" {
			cfg.APIKey = TransbankIntegrationAPIKey
		}
	}
	return cfg
}

func loadReturn() ReturnConfig {
	mode := strings.ToLower(getEnv("CHECKOUT_RETURN_MODE", ReturnModeRedirect))
	if mode != ReturnModeHTML {
		mode = ReturnModeRedirect
	}
	return ReturnConfig{
		Mode:            mode,
		ConfirmOnReturn: getEnvAsBool("CHECKOUT_CONFIRM_ON_RETURN", true),
		FallbackDelay:   getEnvAsDuration("CHECKOUT_FALLBACK_DELAY", 2*time.Second),
		Mobile:          loadDestinations("CHECKOUT_MOBILE", "myapp://payment"),
		Web:             loadDestinations("CHECKOUT_WEB", "http://localhost:8100"),
	}
}

// loadDestinations reads <prefix>_BASE_URL and derives the outcome URLs from
// it unless they are set explicitly.
func loadDestinations(prefix, defaultBase string) Destinations {
	base := strings.TrimRight(getEnv(prefix+"_BASE_URL", defaultBase), "/")
	return Destinations{
		Base:    base,
		Success: getEnv(prefix+"_SUCCESS_URL", base+"/success"),
		Failure: getEnv(prefix+"_FAILURE_URL", base+"/failure"),
		Error:   getEnv(prefix+"_ERROR_URL", base+"/error"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.Atoi(strings.TrimSpace(valueStr)); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseFloat(strings.TrimSpace(valueStr), 64); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseBool(strings.TrimSpace(valueStr)); err == nil {
			return value
		}
	}
	return defaultValue
}

// getEnvAsDuration accepts Go durations ("2s") or plain milliseconds ("2000").
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueStr = strings.TrimSpace(valueStr)
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
