package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the process-wide settings. All fields are read once at
// startup and never mutated afterwards.
type Config struct {
	Addr         string
	DBPath       string
	SecretKey    string
	GeminiAPIKey string
	AIModel      string
	TokenExpMin  int
}

// Load reads configuration from BLOGD_* environment variables. The signing
// secret and the AI provider key are mandatory and have no fallback values:
// a missing secret is a startup error, never a baked-in default.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("BLOGD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "data/badger")
	v.SetDefault("ai_model", "gemini-1.5-flash")
	v.SetDefault("token_exp_minutes", 60)

	cfg := &Config{
		Addr:         v.GetString("addr"),
		DBPath:       v.GetString("db_path"),
		SecretKey:    v.GetString("secret_key"),
		GeminiAPIKey: v.GetString("gemini_api_key"),
		AIModel:      v.GetString("ai_model"),
		TokenExpMin:  v.GetInt("token_exp_minutes"),
	}

	var missing []string
	if cfg.SecretKey == "" {
		missing = append(missing, "BLOGD_SECRET_KEY")
	}
	if cfg.GeminiAPIKey == "" {
		missing = append(missing, "BLOGD_GEMINI_API_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if cfg.TokenExpMin <= 0 {
		return nil, fmt.Errorf("BLOGD_TOKEN_EXP_MINUTES must be positive, got %d", cfg.TokenExpMin)
	}

	return cfg, nil
}
