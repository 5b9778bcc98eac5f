package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.TokenSecret) < 32 {
		return fmt.Errorf("auth.token_secret must be at least 32 characters (got %d)", len(c.Auth.TokenSecret))
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive (got %v)", c.Auth.TokenTTL)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Bot.validate(); err != nil {
		return fmt.Errorf("bot: %w", err)
	}

	level := strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug/info/warn/error (got %q)", c.Log.Level)
	}

	return nil
}

func (b *BotConfig) validate() error {
	if b.MessageLimit <= 0 {
		return fmt.Errorf("message_limit must be > 0 (got %d)", b.MessageLimit)
	}
	if b.SearchLimit <= 0 {
		return fmt.Errorf("search_limit must be > 0 (got %d)", b.SearchLimit)
	}
	if b.SimilarityCutoff < 0 || b.SimilarityCutoff > 1 {
		return fmt.Errorf("similarity_cutoff must be in [0, 1] (got %v)", b.SimilarityCutoff)
	}
	if b.DigestDays <= 0 {
		return fmt.Errorf("digest_days must be > 0 (got %d)", b.DigestDays)
	}
	return nil
}
