package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/logger"
	"github.com/osse101/CaseOpener_Go/internal/repository"
)

// Service manages per-case open cooldowns for users
type Service interface {
	// CheckCooldown reports whether caseID is gated for the user and for how long
	CheckCooldown(ctx context.Context, userID, caseID string) (bool, time.Duration, error)

	// EnforceCooldown checks the gate through repo, runs fn and starts the
	// case cooldown when fn succeeds. Pass the caller's transaction as repo
	// so the check and the update commit together.
	EnforceCooldown(ctx context.Context, repo repository.Cooldowns, userID string, gameCase domain.Case, fn func() error) error

	// ActiveCooldowns lists the user's unexpired cooldowns
	ActiveCooldowns(ctx context.Context, userID string) ([]domain.CaseCooldown, error)

	// SetCooldown gates caseID until the given time, writing through repo
	SetCooldown(ctx context.Context, repo repository.Cooldowns, userID, caseID string, until time.Time) (domain.CaseCooldown, error)

	// ResetCooldown manually clears a cooldown through repo
	ResetCooldown(ctx context.Context, repo repository.Cooldowns, userID, caseID string) error
}

// ErrOnCooldown is returned when a case is still on cooldown
type ErrOnCooldown struct {
	CaseID    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.CaseID, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.CaseID, seconds)
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}

type service struct {
	repo   repository.Cooldowns
	config Config
	now    func() time.Time
}

// NewService creates a cooldown service backed by repo.
func NewService(repo repository.Cooldowns, config Config) Service {
	return &service{
		repo:   repo,
		config: config,
		now:    time.Now,
	}
}

func (s *service) CheckCooldown(ctx context.Context, userID, caseID string) (bool, time.Duration, error) {
	if s.config.DevMode {
		return false, 0, nil
	}
	return s.check(ctx, s.repo, userID, caseID)
}

func (s *service) EnforceCooldown(ctx context.Context, repo repository.Cooldowns, userID string, gameCase domain.Case, fn func() error) error {
	log := logger.FromContext(ctx)
	duration := s.config.GetCooldownDuration(gameCase)

	switch {
	case s.config.DevMode:
		log.Debug(LogMsgDevModeBypass, LogFieldCaseID, gameCase.ID, LogFieldUserID, userID)
	case duration > 0:
		onCooldown, remaining, err := s.check(ctx, repo, userID, gameCase.ID)
		if err != nil {
			return err
		}
		if onCooldown {
			return ErrOnCooldown{CaseID: gameCase.ID, Remaining: remaining}
		}
	}

	if err := fn(); err != nil {
		return err
	}

	if duration <= 0 {
		return nil
	}

	until := s.now().Add(duration)
	if err := repo.UpsertCooldown(ctx, s.newCooldown(userID, gameCase.ID, until)); err != nil {
		return fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}
	log.Debug(LogMsgCooldownEnforced, LogFieldCaseID, gameCase.ID, LogFieldUserID, userID, LogFieldUntil, until)
	return nil
}

func (s *service) ActiveCooldowns(ctx context.Context, userID string) ([]domain.CaseCooldown, error) {
	all, err := s.repo.ListCooldowns(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCooldownsFailed, err)
	}

	now := s.now()
	active := make([]domain.CaseCooldown, 0, len(all))
	for _, cd := range all {
		if cd.Active(now) {
			active = append(active, cd)
		}
	}
	return active, nil
}

func (s *service) SetCooldown(ctx context.Context, repo repository.Cooldowns, userID, caseID string, until time.Time) (domain.CaseCooldown, error) {
	cd := s.newCooldown(userID, caseID, until)
	if err := repo.UpsertCooldown(ctx, cd); err != nil {
		return domain.CaseCooldown{}, fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}
	return cd, nil
}

func (s *service) ResetCooldown(ctx context.Context, repo repository.Cooldowns, userID, caseID string) error {
	if err := repo.DeleteCooldown(ctx, userID, caseID); err != nil {
		return fmt.Errorf(ErrMsgResetCooldownFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgCooldownReset, LogFieldCaseID, caseID, LogFieldUserID, userID)
	return nil
}

func (s *service) check(ctx context.Context, repo repository.Cooldowns, userID, caseID string) (bool, time.Duration, error) {
	cd, err := repo.GetCooldown(ctx, userID, caseID)
	if err != nil {
		return false, 0, fmt.Errorf(ErrMsgCheckCooldownFailed, err)
	}
	onCooldown, remaining := remainingUntil(s.now(), cd)
	return onCooldown, remaining, nil
}

func (s *service) newCooldown(userID, caseID string, until time.Time) domain.CaseCooldown {
	return domain.CaseCooldown{
		ID:            uuid.NewString(),
		UserID:        userID,
		CaseID:        caseID,
		CooldownUntil: until,
	}
}

func remainingUntil(now time.Time, cd *domain.CaseCooldown) (bool, time.Duration) {
	if cd == nil || !cd.Active(now) {
		return false, 0
	}
	return true, cd.CooldownUntil.Sub(now)
}
