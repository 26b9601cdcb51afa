package engine

// CalculateXPGain returns the XP awarded for the next open, given how many
// cases were opened before it.
func (e *Engine) CalculateXPGain(casesOpenedSoFar int) int {
	if casesOpenedSoFar < 0 {
		casesOpenedSoFar = 0
	}
	return e.tables.XPPerCase + (casesOpenedSoFar/XPBonusInterval)*XPBonusAmount
}

// LevelFromXP returns the level for a total XP amount, starting at 1.
func LevelFromXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// XPForNextLevel returns how much XP is missing to reach the next level.
func XPForNextLevel(xp int) int {
	return LevelFromXP(xp)*XPPerLevel - max(xp, 0)
}

// Progress describes where a player sits inside their current level.
type Progress struct {
	Level       int     `json:"level"`
	XP          int     `json:"xp"`
	XPIntoLevel int     `json:"xp_into_level"`
	XPToNext    int     `json:"xp_to_next"`
	Percent     float64 `json:"percent"`
}

// LevelProgress computes level progress for a total XP amount.
func LevelProgress(xp int) Progress {
	level := LevelFromXP(xp)
	into := max(xp, 0) - (level-1)*XPPerLevel
	return Progress{
		Level:       level,
		XP:          xp,
		XPIntoLevel: into,
		XPToNext:    XPForNextLevel(xp),
		Percent:     float64(into) / XPPerLevel * 100,
	}
}
