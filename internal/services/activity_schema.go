package services

import (
	"fmt"
	"strings"

	"github.com/Tinoriffic/game-of-life/internal/models"
	"github.com/Tinoriffic/game-of-life/pkg/errors"
	"github.com/Tinoriffic/game-of-life/pkg/utils"
)

// Completion payload contracts, one per activity type. The set is closed:
// adding a variant means adding a schema here, not a string branch somewhere
// in a handler.

type fieldKind int

const (
	fieldNumber fieldKind = iota
	fieldText
)

type fieldRule struct {
	Key      string
	Label    string
	Kind     fieldKind
	Required bool
}

var activitySchemas = map[models.ActivityType][]fieldRule{
	models.ActivityCardio: {
		{Key: "duration", Label: "Duration (minutes)", Kind: fieldNumber, Required: true},
		{Key: "distance", Label: "Distance (miles)", Kind: fieldNumber},
		{Key: "activity", Label: "Activity Type", Kind: fieldText},
	},
	models.ActivityMeditation: {
		{Key: "duration", Label: "Duration (minutes)", Kind: fieldNumber, Required: true},
		{Key: "type", Label: "Meditation Type", Kind: fieldText},
	},
	models.ActivityLearning: {
		{Key: "duration", Label: "Duration (minutes)", Kind: fieldNumber, Required: true},
		{Key: "subject", Label: "Subject", Kind: fieldText},
		{Key: "notes", Label: "Notes", Kind: fieldText},
	},
	models.ActivitySocial: {
		{Key: "description", Label: "Description", Kind: fieldText, Required: true},
		{Key: "people_count", Label: "Number of People", Kind: fieldNumber},
	},
	models.ActivityNone: {
		{Key: "notes", Label: "Notes", Kind: fieldText},
	},
}

// ValidateActivityData checks payload against the activity type's schema.
// Pure function, called before any state mutation; the returned error names
// the first missing or invalid required field.
func ValidateActivityData(activityType models.ActivityType, data map[string]interface{}) error {
	rules, ok := activitySchemas[activityType]
	if !ok {
		return errors.Validation(fmt.Sprintf("Unknown activity type: %s", activityType))
	}

	for _, rule := range rules {
		if !rule.Required {
			continue
		}
		value, present := data[rule.Key]
		if !present || value == nil {
			return errors.Validation(fmt.Sprintf("%s is required", rule.Label))
		}
		switch rule.Kind {
		case fieldNumber:
			n, ok := asNumber(value)
			if !ok {
				return errors.Validation(fmt.Sprintf("%s must be a number", rule.Label))
			}
			if n <= 0 {
				return errors.Validation(fmt.Sprintf("%s must be greater than zero", rule.Label))
			}
		case fieldText:
			s, ok := value.(string)
			if !ok || strings.TrimSpace(s) == "" {
				return errors.Validation(fmt.Sprintf("%s is required", rule.Label))
			}
		}
	}

	return nil
}

// sanitizeActivityData escapes and bounds free-form text values before they
// are persisted. Numeric fields pass through untouched.
func sanitizeActivityData(data map[string]interface{}) map[string]interface{} {
	for key, value := range data {
		if s, ok := value.(string); ok {
			data[key] = utils.SanitizeHTML(utils.TruncateString(s, 500))
		}
	}
	return data
}

// asNumber accepts the numeric shapes JSON decoding can produce.
func asNumber(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
