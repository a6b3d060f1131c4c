package service

import "math"

// XPForNextLevel returns the cumulative XP threshold a user at the
// given level must reach to level up: floor(100 * level * 1.5).
// Both the award path and progress display go through this function so
// shown progress and actual thresholds can never diverge.
func XPForNextLevel(level int) int {
	return int(math.Floor(float64(100*level) * 1.5))
}

// levelBaseXP is the threshold that was crossed to reach level, i.e.
// the bottom of the current level's XP band. Level 1 starts at zero.
func levelBaseXP(level int) int {
	if level <= 1 {
		return 0
	}
	return XPForNextLevel(level - 1)
}

// ProgressPercent is the position inside the current level's band,
// rounded to 2 decimal places.
func ProgressPercent(totalXP, level int) float64 {
	base := levelBaseXP(level)
	next := XPForNextLevel(level)
	if next <= base {
		return 0
	}
	progress := float64(totalXP-base) / float64(next-base) * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	return math.Round(progress*100) / 100
}
