package services

import (
	"testing"

	"github.com/Tinoriffic/game-of-life/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateActivityData(t *testing.T) {
	tests := []struct {
		name         string
		activityType models.ActivityType
		payload      map[string]interface{}
		wantErr      string
	}{
		{
			name:         "cardio valid",
			activityType: models.ActivityCardio,
			payload:      map[string]interface{}{"duration": 30.0, "distance": 2.5, "activity": "running"},
		},
		{
			name:         "cardio missing duration",
			activityType: models.ActivityCardio,
			payload:      map[string]interface{}{"distance": 2.5},
			wantErr:      "Duration (minutes) is required",
		},
		{
			name:         "cardio zero duration",
			activityType: models.ActivityCardio,
			payload:      map[string]interface{}{"duration": 0.0},
			wantErr:      "Duration (minutes) must be greater than zero",
		},
		{
			name:         "cardio non-numeric duration",
			activityType: models.ActivityCardio,
			payload:      map[string]interface{}{"duration": "thirty"},
			wantErr:      "Duration (minutes) must be a number",
		},
		{
			name:         "meditation valid",
			activityType: models.ActivityMeditation,
			payload:      map[string]interface{}{"duration": 15.0, "type": "mindfulness"},
		},
		{
			name:         "meditation missing duration",
			activityType: models.ActivityMeditation,
			payload:      map[string]interface{}{},
			wantErr:      "Duration (minutes) is required",
		},
		{
			name:         "learning valid",
			activityType: models.ActivityLearning,
			payload:      map[string]interface{}{"duration": 45.0, "subject": "Go"},
		},
		{
			name:         "social valid",
			activityType: models.ActivitySocial,
			payload:      map[string]interface{}{"description": "met a friend", "people_count": 1.0},
		},
		{
			name:         "social missing description",
			activityType: models.ActivitySocial,
			payload:      map[string]interface{}{"people_count": 3.0},
			wantErr:      "Description is required",
		},
		{
			name:         "social blank description",
			activityType: models.ActivitySocial,
			payload:      map[string]interface{}{"description": "   "},
			wantErr:      "Description is required",
		},
		{
			name:         "none type accepts empty payload",
			activityType: models.ActivityNone,
			payload:      map[string]interface{}{},
		},
		{
			name:         "none type accepts notes",
			activityType: models.ActivityNone,
			payload:      map[string]interface{}{"notes": "easy day"},
		},
		{
			name:         "unknown type rejected",
			activityType: models.ActivityType("yoga"),
			payload:      map[string]interface{}{},
			wantErr:      "Unknown activity type: yoga",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateActivityData(tt.activityType, tt.payload)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

// Validation is pure: a rejected payload must leave no trace anywhere, so
// repeated calls with the same input always return the same result.
func TestValidateActivityData_Idempotent(t *testing.T) {
	payload := map[string]interface{}{"distance": 1.0}
	first := ValidateActivityData(models.ActivityCardio, payload)
	second := ValidateActivityData(models.ActivityCardio, payload)
	assert.Equal(t, first, second)
}
