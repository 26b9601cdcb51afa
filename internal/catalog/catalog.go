// Package catalog loads the case catalog and the engine tables from JSON,
// validating it once so the rest of the program works with closed enums.
package catalog

import (
	"context"
	"fmt"
	"math"

	"github.com/osse101/CaseOpener_Go/configs"
	"github.com/osse101/CaseOpener_Go/internal/domain"
	"github.com/osse101/CaseOpener_Go/internal/engine"
	"github.com/osse101/CaseOpener_Go/internal/logger"
	"github.com/osse101/CaseOpener_Go/internal/utils"
	"github.com/osse101/CaseOpener_Go/internal/validation"
)

// Catalog is the immutable, validated case catalog.
type Catalog struct {
	version string
	tables  engine.Tables
	cases   []domain.Case
	byID    map[string]int
}

// LoadDefault loads the catalog embedded in the binary.
func LoadDefault(ctx context.Context) (*Catalog, error) {
	data, err := configs.FS.ReadFile(configs.CasesFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadCatalog, err)
	}
	return Load(ctx, data, "embedded")
}

// LoadFile loads a catalog from disk; an empty path falls back to the embedded one.
func LoadFile(ctx context.Context, path string) (*Catalog, error) {
	if path == "" {
		return LoadDefault(ctx)
	}
	data, err := utils.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToReadCatalog, err)
	}
	return Load(ctx, data, path)
}

// Load validates raw catalog JSON against the embedded schema and converts it.
func Load(ctx context.Context, data []byte, source string) (*Catalog, error) {
	validator := validation.NewSchemaValidator(configs.FS)
	if err := validator.ValidateBytes(data, configs.CasesSchema); err != nil {
		return nil, fmt.Errorf("%s for %s: %w", ErrContextSchemaValidation, source, err)
	}

	var file catalogFile
	if err := utils.DecodeJSONStrict(data, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToParseCatalog, err)
	}

	log := logger.FromContext(ctx)
	if file.Version != ConfigVersion {
		log.Warn(LogMsgVersionMismatch, LogFieldVersion, file.Version, LogFieldExpectedVersion, ConfigVersion)
	}

	c, err := build(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrContextInvalidCatalog, source, err)
	}

	log.Info(LogMsgCatalogLoaded, LogFieldSource, source, LogFieldCases, len(c.cases), LogFieldItems, c.itemCount())
	return c, nil
}

// ============================================================================
// Conversion
// ============================================================================

func build(ctx context.Context, file catalogFile) (*Catalog, error) {
	tables, err := buildTables(file)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		version: file.Version,
		tables:  tables,
		cases:   make([]domain.Case, 0, len(file.Cases)),
		byID:    make(map[string]int, len(file.Cases)),
	}

	for _, def := range file.Cases {
		if _, dup := c.byID[def.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate case id %q", domain.ErrInvalidInput, def.ID)
		}
		gameCase, err := buildCase(ctx, def, tables)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", def.ID, err)
		}
		c.byID[def.ID] = len(c.cases)
		c.cases = append(c.cases, gameCase)
	}

	return c, nil
}

func buildTables(file catalogFile) (engine.Tables, error) {
	s := file.Settings
	if s.StatTrakChance < 0 || s.StatTrakChance > 1 {
		return engine.Tables{}, fmt.Errorf("%w: stattrak_chance %v outside [0,1]", domain.ErrInvalidInput, s.StatTrakChance)
	}
	if s.StatTrakMultiplier <= 1 {
		return engine.Tables{}, fmt.Errorf("%w: stattrak_multiplier must exceed 1", domain.ErrInvalidInput)
	}

	rates := make(map[domain.RarityTier]float64, len(file.DropRates))
	for name, rate := range file.DropRates {
		tier, err := domain.ParseRarity(name)
		if err != nil {
			return engine.Tables{}, err
		}
		if rate < 0 {
			return engine.Tables{}, fmt.Errorf("%w: negative drop rate for %s", domain.ErrInvalidInput, tier)
		}
		rates[tier] = rate
	}

	wear, err := buildWearTable(file.WearConditions)
	if err != nil {
		return engine.Tables{}, err
	}

	return engine.Tables{
		DropRates:          rates,
		Wear:               wear,
		StatTrakChance:     s.StatTrakChance,
		StatTrakMultiplier: s.StatTrakMultiplier,
		XPPerCase:          s.XPPerCase,
	}, nil
}

// buildWearTable requires exactly the five conditions in factory_new to battle_scarred order.
func buildWearTable(defs []wearDef) ([]domain.WearCondition, error) {
	if len(defs) != len(domain.WearOrder) {
		return nil, fmt.Errorf("%w: expected %d wear conditions, got %d", domain.ErrInvalidInput, len(domain.WearOrder), len(defs))
	}

	wear := make([]domain.WearCondition, len(defs))
	var total float64
	for i, def := range defs {
		name, err := domain.ParseWearCondition(def.Name)
		if err != nil {
			return nil, err
		}
		if name != domain.WearOrder[i] {
			return nil, fmt.Errorf("%w: wear condition %d must be %s, got %s", domain.ErrInvalidInput, i, domain.WearOrder[i], name)
		}
		if def.Multiplier <= 0 {
			return nil, fmt.Errorf("%w: wear multiplier for %s must be positive", domain.ErrInvalidInput, name)
		}
		display := def.DisplayName
		if display == "" {
			display = name.DefaultDisplayName()
		}
		wear[i] = domain.WearCondition{
			Name:        name,
			DisplayName: display,
			Multiplier:  def.Multiplier,
			Probability: def.Probability,
		}
		total += def.Probability
	}

	if math.Abs(total-1.0) > WearProbabilityTolerance {
		return nil, fmt.Errorf("%w: wear probabilities sum to %v, want 1.0", domain.ErrInvalidInput, total)
	}
	return wear, nil
}

func buildCase(ctx context.Context, def caseDef, tables engine.Tables) (domain.Case, error) {
	tier, err := domain.ParseCaseTier(def.Tier)
	if err != nil {
		return domain.Case{}, err
	}
	if def.Price < 0 {
		return domain.Case{}, fmt.Errorf("%w: negative price", domain.ErrInvalidInput)
	}
	if def.CooldownMinutes < 0 {
		return domain.Case{}, fmt.Errorf("%w: negative cooldown", domain.ErrInvalidInput)
	}
	if len(def.Items) == 0 {
		return domain.Case{}, domain.ErrEmptyCase
	}

	items := make([]domain.CaseItem, 0, len(def.Items))
	for _, itemDef := range def.Items {
		item, err := buildItem(ctx, itemDef, tables)
		if err != nil {
			return domain.Case{}, fmt.Errorf("item %q: %w", itemDef.ID, err)
		}
		items = append(items, item)
	}

	return domain.Case{
		ID:                def.ID,
		Name:              def.Name,
		Description:       def.Description,
		Price:             def.Price,
		Tier:              tier,
		CooldownMinutes:   def.CooldownMinutes,
		Items:             items,
		Image:             def.Image,
		GuaranteedSpecial: def.GuaranteedSpecial,
	}, nil
}

func buildItem(ctx context.Context, def itemDef, tables engine.Tables) (domain.CaseItem, error) {
	itemType, err := domain.ParseItemType(def.Type)
	if err != nil {
		return domain.CaseItem{}, err
	}
	rarity, err := domain.ParseRarity(def.Rarity)
	if err != nil {
		return domain.CaseItem{}, err
	}
	if def.BaseValue <= 0 {
		return domain.CaseItem{}, fmt.Errorf("%w: base value must be positive", domain.ErrInvalidInput)
	}
	if def.StatTrakChance != nil && (*def.StatTrakChance < 0 || *def.StatTrakChance > 1) {
		return domain.CaseItem{}, fmt.Errorf("%w: stattrak_chance outside [0,1]", domain.ErrInvalidInput)
	}

	// Items without an explicit list can come in any condition.
	conditions := tables.Wear
	if len(def.Conditions) > 0 {
		conditions = make([]domain.WearCondition, 0, len(def.Conditions))
		for _, raw := range def.Conditions {
			name, err := domain.ParseWearCondition(raw)
			if err != nil {
				return domain.CaseItem{}, err
			}
			cond, ok := tables.Condition(name)
			if !ok {
				logger.FromContext(ctx).Warn(LogMsgUnknownCondition, LogFieldItem, def.ID, LogFieldCondition, name)
				continue
			}
			conditions = append(conditions, cond)
		}
	}

	return domain.CaseItem{
		ID:             def.ID,
		Name:           def.Name,
		Type:           itemType,
		Rarity:         rarity,
		BaseValue:      def.BaseValue,
		StatTrakChance: def.StatTrakChance,
		Image:          def.Image,
		Conditions:     conditions,
	}, nil
}

// ============================================================================
// Accessors
// ============================================================================

// Version returns the catalog file version.
func (c *Catalog) Version() string { return c.version }

// Tables returns the engine tables declared by the catalog.
func (c *Catalog) Tables() engine.Tables { return c.tables }

// Cases returns every case in file order.
func (c *Catalog) Cases() []domain.Case {
	out := make([]domain.Case, len(c.cases))
	copy(out, c.cases)
	return out
}

// Case looks up a case by id.
func (c *Catalog) Case(id string) (domain.Case, error) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Case{}, fmt.Errorf("%w: %s", domain.ErrCaseNotFound, id)
	}
	return c.cases[idx], nil
}

// Condition resolves a wear condition name against the catalog's table.
func (c *Catalog) Condition(name domain.WearConditionName) (domain.WearCondition, bool) {
	return c.tables.Condition(name)
}

func (c *Catalog) itemCount() int {
	n := 0
	for _, gc := range c.cases {
		n += len(gc.Items)
	}
	return n
}
