package cooldown

import (
	"time"

	"github.com/osse101/CaseOpener_Go/internal/domain"
)

// Config holds cooldown service configuration
type Config struct {
	// DevMode bypasses all cooldown checks when true
	DevMode bool

	// Overrides maps case ids to cooldowns that replace the catalog value
	Overrides map[string]time.Duration
}

// GetCooldownDuration returns the cooldown for a case; zero means ungated.
func (c *Config) GetCooldownDuration(gameCase domain.Case) time.Duration {
	if c.Overrides != nil {
		if duration, ok := c.Overrides[gameCase.ID]; ok {
			return duration
		}
	}
	return gameCase.Cooldown()
}
