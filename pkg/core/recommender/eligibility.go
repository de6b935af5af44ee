package recommender

import "github.com/fieldworks/crew-recommender/pkg/core/model"

// hasAll reports whether the candidate list covers every required
// entry. An empty requirement always passes.
func hasAll(required, held []string) bool {
	for _, want := range required {
		found := false
		for _, have := range held {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// scopeSatisfied reports whether a candidate's scope set covers the
// required scope: no scope required, the wildcard is declared, or the
// exact scope is declared.
func scopeSatisfied(required string, scopes []string) bool {
	if required == "" {
		return true
	}
	for _, s := range scopes {
		if s == model.ScopeAny || s == required {
			return true
		}
	}
	return false
}

// meetsRequirements applies the configured certification and skill
// checks of an activity to a candidate's lists. Scope is checked
// separately because it only applies at the company level.
func (cfg Config) meetsRequirements(activity *activityState, certifications, skills []string) bool {
	if cfg.ConsiderCertifications && len(activity.certifications) > 0 {
		if !hasAll(activity.certifications, certifications) {
			return false
		}
	}
	if cfg.ConsiderSkills && len(activity.skills) > 0 {
		if !hasAll(activity.skills, skills) {
			return false
		}
	}
	return true
}
