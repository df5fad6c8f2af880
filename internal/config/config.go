package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"

	"github.com/rgm-logistics/forms-api/pkg/utils"
)

const (
	AppName = "forms-api"

	LDConnectionTimeout = 5 * time.Second
)

// Dispatch modes for notification sends.
const (
	// ModeBackground responds success immediately and attempts both sends on
	// a detached goroutine, best-effort.
	ModeBackground = "background"
	// ModeBlocking sends both notifications before responding; any send
	// failure turns into a 500.
	ModeBlocking = "blocking"
)

type Config struct {
	OrgName string
	AppName string
	AppPort string

	AllowedOrigins      []string
	PreviewOriginSuffix string

	SendgridAPIKey string
	FromEmail      string
	OwnerEmail     string

	DispatchMode   string
	MaxUploadBytes int64

	ldClient *ld.LDClient
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadConfig reads the runtime environment (a .env file is honored when
// present). Mail credentials are warned about rather than fatal: the service
// still answers health checks and rejects invalid submissions without them.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("No .env file loaded; using process environment")
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	cfg := &Config{
		OrgName: getenv("ORG_NAME", "RGM Logistics"),
		AppName: AppName,
		AppPort: getenv("APP_PORT", "5000"),

		PreviewOriginSuffix: getenv("PREVIEW_ORIGIN_SUFFIX", ".vercel.app"),

		SendgridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		FromEmail:      os.Getenv("SENDGRID_FROM_EMAIL"),
		OwnerEmail:     os.Getenv("OWNER_EMAIL"),

		DispatchMode: getenv("DISPATCH_MODE", ModeBackground),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}
	}

	maxUploadMB, err := strconv.ParseInt(getenv("MAX_UPLOAD_MB", "16"), 10, 64)
	if err != nil || maxUploadMB <= 0 {
		utils.Logger.Warnf("Invalid MAX_UPLOAD_MB %q, defaulting to 16", os.Getenv("MAX_UPLOAD_MB"))
		maxUploadMB = 16
	}
	cfg.MaxUploadBytes = maxUploadMB << 20

	if cfg.DispatchMode != ModeBackground && cfg.DispatchMode != ModeBlocking {
		utils.Logger.Warnf("Unknown DISPATCH_MODE %q, defaulting to %s", cfg.DispatchMode, ModeBackground)
		cfg.DispatchMode = ModeBackground
	}

	if cfg.SendgridAPIKey == "" || cfg.FromEmail == "" {
		utils.Logger.Warn("Mail credentials missing (SENDGRID_API_KEY / SENDGRID_FROM_EMAIL); notification sends will fail")
	}
	if cfg.OwnerEmail == "" {
		utils.Logger.Warn("OWNER_EMAIL is not set; owner notices will fail")
	}

	cfg.loadFeatureFlags()

	utils.Logger.Infof("Loaded config for %s (dispatch mode: %s)", AppName, cfg.DispatchMode)
	return cfg
}

// loadFeatureFlags snapshots runtime flags from LaunchDarkly when an SDK key
// is configured. Without one, the env values stand as-is.
func (c *Config) loadFeatureFlags() {
	sdkKey := os.Getenv("LD_SDK_KEY")
	if sdkKey == "" {
		utils.Logger.Debug("LD_SDK_KEY not set; skipping feature-flag overrides")
		return
	}

	ldClient, err := ld.MakeClient(sdkKey, LDConnectionTimeout)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to create LaunchDarkly client")
	}
	if !ldClient.Initialized() {
		ldClient.Close()
		utils.Logger.Fatal("LaunchDarkly client failed to initialize")
	}

	ctx := ldcontext.NewWithKind("service", AppName)

	blocking, err := ldClient.BoolVariation("dispatch_blocking_mode", ctx, c.DispatchMode == ModeBlocking)
	if err != nil {
		utils.Logger.WithError(err).Warn("dispatch_blocking_mode flag error; keeping env value")
	} else if blocking {
		c.DispatchMode = ModeBlocking
	} else {
		c.DispatchMode = ModeBackground
	}
	utils.Logger.Debugf("dispatch_blocking_mode flag: %t", blocking)

	fromEmail, err := ldClient.StringVariation("sendgrid_from_email", ctx, c.FromEmail)
	if err != nil {
		utils.Logger.WithError(err).Warn("sendgrid_from_email flag error; keeping env value")
	} else if fromEmail != "" {
		c.FromEmail = fromEmail
	}
	utils.Logger.Debugf("sendgrid_from_email flag: %s", fromEmail)

	c.ldClient = ldClient
}

// DispatchBlocking reports whether notification sends must complete before
// the caller receives a response.
func (c *Config) DispatchBlocking() bool {
	return c.DispatchMode == ModeBlocking
}

func (c *Config) Close() {
	if c.ldClient != nil {
		c.ldClient.Close()
	}
}
