package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/CaseOpener_Go/internal/cooldown"
	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/engine"
	"github.com/osse101/CaseOpener_Go/internal/logger"
	"github.com/osse101/CaseOpener_Go/internal/repository"
	"github.com/osse101/CaseOpener_Go/internal/utils"
)

func (s *service) Cases() []domain.Case {
	return s.catalog.Cases()
}

func (s *service) Case(caseID string) (domain.Case, error) {
	return s.catalog.Case(caseID)
}

// CaseOdds lists the selection chance of every item in a case.
func (s *service) CaseOdds(caseID string) ([]ItemOdds, error) {
	c, err := s.catalog.Case(caseID)
	if err != nil {
		return nil, err
	}
	probs := s.engine.SelectionProbabilities(c)
	odds := make([]ItemOdds, len(c.Items))
	for i, item := range c.Items {
		odds[i] = ItemOdds{
			ItemID:      item.ID,
			Name:        item.Name,
			Rarity:      item.Rarity,
			Probability: probs[i],
		}
	}
	return odds, nil
}

// OpenCase charges the case price, rolls an item and stores it. The state
// update, the new inventory entry and the cooldown commit together.
func (s *service) OpenCase(ctx context.Context, userID, caseID string) (*OpenResult, error) {
	log := logger.FromContext(ctx)

	c, err := s.catalog.Case(caseID)
	if err != nil {
		return nil, err
	}

	var result OpenResult
	err = s.withUserTx(ctx, userID, func(tx repository.Tx) error {
		state, err := tx.GetGameState(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetStateFailed, err)
		}

		return s.cooldowns.EnforceCooldown(ctx, tx, userID, c, func() error {
			if state.Balance < c.Price {
				return fmt.Errorf(ErrMsgInsufficientFundsFmt, domain.ErrInsufficientFunds, state.Balance, c.Price)
			}

			opened, err := s.engine.OpenCase(c)
			if err != nil {
				return fmt.Errorf(ErrMsgOpenCaseFailed, err)
			}

			xp := s.engine.CalculateXPGain(state.CasesOpened)
			previousLevel := state.Level

			state.Balance = utils.Round2(state.Balance - c.Price)
			state.CasesOpened++
			state.TotalSpent = utils.Round2(state.TotalSpent + c.Price)
			state.XP += xp
			state.Level = engine.LevelFromXP(state.XP)
			if state.BestDrop == nil || opened.FinalValue > state.BestDrop.Value {
				state.BestDrop = &domain.BestDrop{Name: opened.Name, Value: opened.FinalValue}
			}
			state.UpdatedAt = s.now()

			if err := tx.UpdateGameState(ctx, *state); err != nil {
				return fmt.Errorf(ErrMsgUpdateStateFailed, err)
			}

			entry := domain.NewInventoryItem(s.newID(), userID, opened, c.Name)
			if err := tx.AddInventoryItem(ctx, entry); err != nil {
				return fmt.Errorf(ErrMsgAddItemFailed, err)
			}

			result = OpenResult{
				Item:      opened,
				Inventory: entry,
				State:     *state,
				XPGained:  xp,
				LeveledUp: state.Level > previousLevel,
			}
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, cooldown.ErrOnCooldown{}) {
			s.recorder.CooldownRejected(c.ID)
			log.Debug(LogMsgOnCooldown, LogFieldUserID, userID, LogFieldCaseID, c.ID)
		}
		return nil, err
	}

	s.recorder.CaseOpened(c, result.Item)
	log.Info(LogMsgCaseOpened,
		LogFieldUserID, userID,
		LogFieldCaseID, c.ID,
		LogFieldItemName, result.Item.Name,
		LogFieldRarity, result.Item.Rarity,
		LogFieldStatTrak, result.Item.StatTrak,
		LogFieldValue, result.Item.FinalValue)
	if result.LeveledUp {
		log.Info(LogMsgLevelUp, LogFieldUserID, userID, LogFieldLevel, result.State.Level)
	}
	return &result, nil
}

// PurchaseCase charges the case price and counts it as spent; no item is rolled.
func (s *service) PurchaseCase(ctx context.Context, userID, caseID string) (*domain.GameState, error) {
	c, err := s.catalog.Case(caseID)
	if err != nil {
		return nil, err
	}

	var updated domain.GameState
	err = s.withUserTx(ctx, userID, func(tx repository.Tx) error {
		state, err := tx.GetGameState(ctx, userID)
		if err != nil {
			return fmt.Errorf(ErrMsgGetStateFailed, err)
		}
		if state.Balance < c.Price {
			return fmt.Errorf(ErrMsgInsufficientFundsFmt, domain.ErrInsufficientFunds, state.Balance, c.Price)
		}

		state.Balance = utils.Round2(state.Balance - c.Price)
		state.TotalSpent = utils.Round2(state.TotalSpent + c.Price)
		state.UpdatedAt = s.now()
		if err := tx.UpdateGameState(ctx, *state); err != nil {
			return fmt.Errorf(ErrMsgUpdateStateFailed, err)
		}
		updated = *state
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCasePurchased, LogFieldUserID, userID, LogFieldCaseID, c.ID, LogFieldPrice, c.Price)
	return &updated, nil
}
