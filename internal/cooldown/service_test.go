package cooldown_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/CaseOpener_Go/internal/cooldown"
)

func TestErrOnCooldown_Error(t *testing.T) {
	tests := []struct {
		name          string
		err           cooldown.ErrOnCooldown
		wantSubstring string
	}{
		{
			name:          "minutes and seconds",
			err:           cooldown.ErrOnCooldown{CaseID: "daily_free", Remaining: 42*time.Minute + 30*time.Second},
			wantSubstring: fmt.Sprintf(cooldown.ErrFmtCooldownWithMinutes, "daily_free", 42, 30),
		},
		{
			name:          "seconds only",
			err:           cooldown.ErrOnCooldown{CaseID: "daily_free", Remaining: 45 * time.Second},
			wantSubstring: fmt.Sprintf(cooldown.ErrFmtCooldownSecondsOnly, "daily_free", 45),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.err.Error(), tt.wantSubstring)
		})
	}
}

func TestErrOnCooldown_Is(t *testing.T) {
	err := fmt.Errorf("open failed: %w", cooldown.ErrOnCooldown{CaseID: "x", Remaining: time.Minute})

	assert.True(t, errors.Is(err, cooldown.ErrOnCooldown{}))
	assert.False(t, errors.Is(errors.New("other error"), cooldown.ErrOnCooldown{}))

	var onCooldown cooldown.ErrOnCooldown
	assert.True(t, errors.As(err, &onCooldown))
	assert.Equal(t, time.Minute, onCooldown.Remaining)
}

func TestErrOnCooldown_ZeroRemaining(t *testing.T) {
	err := cooldown.ErrOnCooldown{CaseID: "x", Remaining: 0}
	assert.Equal(t, fmt.Sprintf(cooldown.ErrFmtCooldownSecondsOnly, "x", 0), err.Error())
}
