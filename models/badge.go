package models

import "time"

// BadgeCategory groups badges in the profile view.
type BadgeCategory string

const (
	BadgeSavings     BadgeCategory = "Savings"
	BadgePayment     BadgeCategory = "Payment"
	BadgeConsistency BadgeCategory = "Consistency"
	BadgeSpecial     BadgeCategory = "Special"
)

// Badge is an achievement marker. Badges are not persisted: the full set is
// recomputed from current state on every request, so EarnedAt is only the
// instant of that recomputation.
type Badge struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Category    BadgeCategory `json:"category"`
	EarnedAt    time.Time     `json:"date"`
}

// LevelInfo is the derived level/XP pair. XP accumulates at a fixed rate per
// logged expense and is never stored.
type LevelInfo struct {
	Level           int `json:"level"`
	TotalXP         int `json:"totalXp"`
	XPInLevel       int `json:"xpInLevel"`
	XPToNextLevel   int `json:"xpToNextLevel"`
	ProgressPercent int `json:"xpProgressPercent"`
}
