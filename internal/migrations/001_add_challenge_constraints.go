package migrations

import (
	"gorm.io/gorm"
)

// Migration001AddChallengeConstraints installs the unique indexes the reward
// engine relies on as its database-level backstop:
//  1. One progress entry per enrollment per calendar date.
//  2. At most one active enrollment per user (partial index over the
//     non-terminal rows).
//
// Application code already serializes these writes per user; the indexes turn
// a race that slips past that into a constraint error instead of silent
// duplicate rewards.
func Migration001AddChallengeConstraints() Migration {
	return Migration{
		ID:   "001_add_challenge_constraints",
		Name: "Add uniqueness constraints for challenge progress and active enrollments",
		Up: func(db *gorm.DB) error {
			idx1 := `
				CREATE UNIQUE INDEX IF NOT EXISTS idx_progress_one_per_day
				ON challenge_progresses (user_challenge_id, completion_date)
			`
			if err := db.Exec(idx1).Error; err != nil {
				return err
			}

			idx2 := `
				CREATE UNIQUE INDEX IF NOT EXISTS idx_user_challenges_single_active
				ON user_challenges (user_id)
				WHERE completion_date IS NULL AND quit_date IS NULL AND is_failed = false
			`
			return db.Exec(idx2).Error
		},
		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP INDEX IF EXISTS idx_progress_one_per_day`).Error; err != nil {
				return err
			}
			return db.Exec(`DROP INDEX IF EXISTS idx_user_challenges_single_active`).Error
		},
	}
}
