package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Addr           string
	TLSCert        string
	TLSKey         string
	LogLevel       string
	CORSOrigins    []string
	MaxBodyBytes   int64
	StrictSecurity bool

	// Redis is optional; without it rate limiting falls back to memory and
	// the dashboard is not cached.
	RedisURL      string
	RedisAddr     string
	RedisUser     string
	RedisPassword string

	S3 S3Config

	FoldAccents       bool
	ModalDelay        time.Duration
	SettingsDelay     time.Duration
	ReportDelay       time.Duration
	CacheClearDelay   time.Duration
	LogArchiveDelay   time.Duration
	ReportPDFURL      string
	DashboardCacheTTL time.Duration

	AdminUsername     string
	AdminPasswordHash string
	LoginMaxAttempts  int
	LoginWindow       time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
	WindowLimit    int
	Window         time.Duration

	AuditBuffer  int
	AuditWorkers int
	AuditKeep    int
	RetentionAt  string // HH:MM
	RetentionTZ  string
}

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

func (s S3Config) Enabled() bool {
	return s.Bucket != "" && s.AccessKey != "" && s.SecretKey != ""
}

func (c Config) RedisEnabled() bool { return c.RedisURL != "" || c.RedisAddr != "" }

func (c Config) Production() bool { return strings.EqualFold(c.AppEnv, "production") }

// Load reads .env (when present) and the process environment. It fails on
// values that do not parse.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var errs []error
	dur := func(key, def string) time.Duration {
		d, err := envDuration(key, def)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return d
	}
	num := func(key string, def int) int {
		n, err := envInt(key, def)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return n
	}

	c := Config{
		AppEnv:         envStr("APP_ENV", "development"),
		Addr:           envStr("HTTP_ADDR", ":3000"),
		TLSCert:        os.Getenv("TLS_CERT"),
		TLSKey:         os.Getenv("TLS_KEY"),
		LogLevel:       envStr("LOG_LEVEL", "info"),
		CORSOrigins:    envList("CORS_ORIGINS", "http://localhost:4200,http://127.0.0.1:4200"),
		MaxBodyBytes:   int64(num("MAX_BODY_SIZE", 1<<20)),
		StrictSecurity: os.Getenv("STRICT_SECURITY") == "1",

		RedisURL:      os.Getenv("UPSTASH_REDIS_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisUser:     os.Getenv("REDIS_USER"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		S3: S3Config{
			Endpoint:  os.Getenv("AWS_ENDPOINT"),
			Region:    envStr("AWS_REGION", "auto"),
			Bucket:    os.Getenv("AWS_BUCKET"),
			AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},

		FoldAccents:       os.Getenv("SEARCH_FOLD_ACCENTS") == "1",
		ModalDelay:        dur("MODAL_DELAY", "1s"),
		SettingsDelay:     dur("SETTINGS_SAVE_DELAY", "2s"),
		ReportDelay:       dur("REPORT_DELAY", "5s"),
		CacheClearDelay:   dur("CACHE_CLEAR_DELAY", "3s"),
		LogArchiveDelay:   dur("LOG_ARCHIVE_DELAY", "4s"),
		ReportPDFURL:      envStr("REPORT_PLACEHOLDER_URL", "https://www.w3.org/WAI/ER/tests/xhtml/testfiles/resources/pdf/dummy.pdf"),
		DashboardCacheTTL: dur("DASHBOARD_CACHE_TTL", "30s"),

		AdminUsername:     envStr("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		LoginMaxAttempts:  num("LOGIN_MAX_ATTEMPTS", 10),
		LoginWindow:       dur("LOGIN_WINDOW", "5m"),

		RateLimitBurst: num("RATE_LIMIT_BURST", 20),
		WindowLimit:    num("RATE_LIMIT_WINDOW_MAX", 3000),
		Window:         dur("RATE_LIMIT_WINDOW", "1h"),

		AuditBuffer:  num("AUDIT_BUFFER", 1024),
		AuditWorkers: num("AUDIT_WORKERS", 1),
		AuditKeep:    num("AUDIT_KEEP", 1000),
		RetentionAt:  envStr("AUDIT_RETENTION_AT", "03:00"),
		RetentionTZ:  envStr("AUDIT_RETENTION_TZ", "UTC"),
	}

	rps, err := envFloat("RATE_LIMIT_RPS", 5)
	if err != nil {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS: %w", err))
	}
	c.RateLimitRPS = rps

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return errors.New("TLS_CERT and TLS_KEY must be set together")
	}
	if c.AuditWorkers < 1 {
		return errors.New("AUDIT_WORKERS must be >= 1")
	}
	if c.AuditBuffer < 1 {
		return errors.New("AUDIT_BUFFER must be >= 1")
	}
	if c.AuditKeep < 1 {
		return errors.New("AUDIT_KEEP must be >= 1")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.LoginMaxAttempts < 1 {
		return errors.New("LOGIN_MAX_ATTEMPTS must be >= 1")
	}
	if _, _, err := ParseClock(c.RetentionAt); err != nil {
		return fmt.Errorf("AUDIT_RETENTION_AT: %w", err)
	}
	return nil
}

// HardeningWarnings returns non-fatal warnings worth logging on startup.
func (c Config) HardeningWarnings() []string {
	var warns []string
	if c.AdminPasswordHash == "" {
		warns = append(warns, "ADMIN_PASSWORD_HASH not set; the demo password is accepted")
	}
	if !c.RedisEnabled() {
		warns = append(warns, "no Redis configured; rate limits are per-process and the dashboard is not cached")
	}
	if c.Production() {
		if c.TLSCert == "" {
			warns = append(warns, "TLS_CERT/TLS_KEY not set in production; serving plain HTTP")
		}
		if strings.HasPrefix(c.RedisURL, "redis://") {
			warns = append(warns, "UPSTASH_REDIS_URL uses redis:// (no TLS). Prefer rediss:// for TLS")
		}
		if c.RedisAddr != "" && (c.RedisUser == "" || c.RedisPassword == "") {
			warns = append(warns, "REDIS_ADDR provided without REDIS_USER/REDIS_PASSWORD; require auth in production")
		}
		if c.ModalDelay > 0 || c.ReportDelay > 0 {
			warns = append(warns, "simulated delays are enabled in production")
		}
	}
	return warns
}

// ParseClock parses "HH:MM".
func ParseClock(s string) (h, m int, err error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time of day %q", s)
	}
	return t.Hour(), t.Minute(), nil
}

// --- helpers ---

func envStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envList(key, def string) []string {
	var out []string
	for _, p := range strings.Split(envStr(key, def), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// envDuration accepts zero so delays can be switched off.
func envDuration(key, def string) (time.Duration, error) {
	s := envStr(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return d, nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("not a number: %v", err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %v", err)
	}
	return f, nil
}
