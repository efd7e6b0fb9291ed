package services

// XP formulas for free-form activity logging. Each formula takes the XP the
// mapped skill has already earned today so first-of-day bonuses pay out once
// per calendar day, not once per log.

// MeditationXP rewards 10 XP for the first session of the day, then 5 XP for
// every 5 minutes.
func MeditationXP(durationMinutes, dailyXPEarned int) int {
	xp := 0
	if dailyXPEarned == 0 {
		xp += 10
	}
	xp += (durationMinutes / 5) * 5
	return xp
}

// WorkoutXP rewards 15 XP for logging the first workout session of the day.
func WorkoutXP(dailyXPEarned int) int {
	if dailyXPEarned == 0 {
		return 15
	}
	return 0
}

// RunningXP rewards 10 XP for the first run of the day, then 5 XP per
// 10 minutes and 5 XP per half mile.
func RunningXP(durationMinutes int, distanceMiles float64, dailyXPEarned int) int {
	xp := 0
	if dailyXPEarned == 0 {
		xp += 10
	}
	xp += (durationMinutes / 10) * 5
	xp += int(distanceMiles/0.5) * 5
	return xp
}

// socialInteractionXP maps interaction kinds to fixed rewards.
var socialInteractionXP = map[string]int{
	"social_gathering":  12,
	"presentation":      40,
	"approach_stranger": 30,
	"give_compliment":   5,
	"tell_story":        10,
	"make_laugh":        8,
}

// SocialXP returns the fixed reward for a social interaction kind, 0 for
// unknown kinds.
func SocialXP(kind string) int {
	return socialInteractionXP[kind]
}

// LearningXP differentiates the first-of-day bonus by learning activity
// (reading vs taking a class), then adds 5 XP per 10 minutes.
func LearningXP(activity string, durationMinutes, dailyXPEarned int) int {
	xp := 0
	if dailyXPEarned == 0 {
		switch activity {
		case "read":
			xp += 5
		case "take_class":
			xp += 15
		}
	}
	xp += (durationMinutes / 10) * 5
	return xp
}

// ReflectionXP rewards a flat 20 XP for the first journal entry of the day.
func ReflectionXP(dailyXPEarned int) int {
	if dailyXPEarned == 0 {
		return 20
	}
	return 0
}
