package migrations

import (
	"gorm.io/gorm"
)

// Migration002AddActivityIndexes covers the hot-path history queries:
// activity feeds page by (user_id, created_at) and challenge history pages
// terminal enrollments by (user_id, start_date).
func Migration002AddActivityIndexes() Migration {
	return Migration{
		ID:   "002_add_activity_indexes",
		Name: "Add indexes for activity feed and challenge history queries",
		Up: func(db *gorm.DB) error {
			idx1 := `
				CREATE INDEX IF NOT EXISTS idx_activity_logs_user_created
				ON activity_logs (user_id, created_at DESC)
			`
			if err := db.Exec(idx1).Error; err != nil {
				return err
			}

			idx2 := `
				CREATE INDEX IF NOT EXISTS idx_user_challenges_user_start
				ON user_challenges (user_id, start_date DESC)
			`
			return db.Exec(idx2).Error
		},
		Down: func(db *gorm.DB) error {
			if err := db.Exec(`DROP INDEX IF EXISTS idx_activity_logs_user_created`).Error; err != nil {
				return err
			}
			return db.Exec(`DROP INDEX IF EXISTS idx_user_challenges_user_start`).Error
		},
	}
}
