package usecase

import (
	"fmt"
	"time"

	"github.com/jiningying/property-chat-agent/internal/domain"
)

// Recognized preference keys for profile updates. Anything outside
// this allow-list is ignored so callers cannot clobber bookkeeping
// fields like search history.
const (
	prefName               = "name"
	prefUserType           = "user_type"
	prefBudgetMin          = "budget_min"
	prefBudgetMax          = "budget_max"
	prefPreferredSuburbs   = "preferred_suburbs"
	prefPropertyTypes      = "property_types"
	prefMustHaveFeatures   = "must_have_features"
	prefNiceToHaveFeatures = "nice_to_have_features"
	prefDealBreakers       = "deal_breakers"
)

// ApplyPreferences overwrites the allow-listed profile fields present
// in prefs and leaves every unmentioned field unchanged. Values arrive
// as decoded JSON, so numbers are float64 and lists are []interface{}.
// The update is atomic: the patch is staged on a copy and committed
// only once every key and the resulting budget range validate, so a
// rejected request never changes the stored profile.
func ApplyPreferences(profile *domain.UserProfile, prefs map[string]interface{}) error {
	patched := *profile

	for key, value := range prefs {
		switch key {
		case prefName:
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("%w: %s must be a string", domain.ErrInvalidRequest, key)
			}
			patched.Name = s

		case prefUserType:
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("%w: %s must be a string", domain.ErrInvalidRequest, key)
			}
			ut, ok := domain.ParseUserType(s)
			if !ok {
				return fmt.Errorf("%w: unknown user type %q", domain.ErrInvalidRequest, s)
			}
			patched.UserType = ut

		case prefBudgetMin:
			n, err := asAmount(key, value)
			if err != nil {
				return err
			}
			patched.BudgetMin = n

		case prefBudgetMax:
			n, err := asAmount(key, value)
			if err != nil {
				return err
			}
			patched.BudgetMax = n

		case prefPreferredSuburbs:
			list, err := asStringList(key, value)
			if err != nil {
				return err
			}
			patched.PreferredSuburbs = list

		case prefPropertyTypes:
			list, err := asStringList(key, value)
			if err != nil {
				return err
			}
			types := make([]domain.PropertyType, 0, len(list))
			for _, s := range list {
				pt, ok := domain.ParsePropertyType(s)
				if !ok {
					return fmt.Errorf("%w: unknown property type %q", domain.ErrInvalidRequest, s)
				}
				types = append(types, pt)
			}
			patched.PropertyTypes = types

		case prefMustHaveFeatures:
			list, err := asStringList(key, value)
			if err != nil {
				return err
			}
			patched.MustHaveFeatures = list

		case prefNiceToHaveFeatures:
			list, err := asStringList(key, value)
			if err != nil {
				return err
			}
			patched.NiceToHaveFeatures = list

		case prefDealBreakers:
			list, err := asStringList(key, value)
			if err != nil {
				return err
			}
			patched.DealBreakers = list
		}
	}

	if patched.BudgetMin < 0 || patched.BudgetMax < 0 || patched.BudgetMin > patched.BudgetMax {
		return fmt.Errorf("%w: budget range must satisfy 0 <= min <= max", domain.ErrInvalidRequest)
	}

	patched.LastInteraction = time.Now()
	*profile = patched
	return nil
}

func asAmount(key string, value interface{}) (int, error) {
	switch v := value.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	}
	return 0, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidRequest, key)
}

func asStringList(key string, value interface{}) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be a list of strings", domain.ErrInvalidRequest, key)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s must be a list of strings", domain.ErrInvalidRequest, key)
}
