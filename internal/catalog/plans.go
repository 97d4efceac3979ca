package catalog

import "github.com/devtools-pro/backend/pkg/models"

// plans is the static pricing table. Quotas named in the feature copy
// are enforced by the quota service, not here.
var plans = map[string]models.Plan{
	models.PlanFree: {
		Name:  "Free",
		Price: 0,
		Features: []string{
			"3 code generations per day",
			"Basic code optimization",
			"Community support",
			"Standard response time",
		},
	},
	models.PlanPro: {
		Name:  "Pro",
		Price: 9,
		Features: []string{
			"Unlimited code generations",
			"Advanced optimization",
			"Priority support",
			"Faster response time",
			"API access",
			"Advanced bug detection",
		},
	},
	models.PlanEnterprise: {
		Name:  "Enterprise",
		Price: 29,
		Features: []string{
			"Everything in Pro",
			"24/7 priority support",
			"Custom integrations",
			"Dedicated account manager",
			"Volume discounts",
		},
	},
}

func clonePlan(p models.Plan) models.Plan {
	p.Features = append([]string(nil), p.Features...)
	return p
}

// Plans returns the full pricing table keyed by plan id. Callers get
// their own copy, feature lists included.
func Plans() map[string]models.Plan {
	out := make(map[string]models.Plan, len(plans))
	for id, p := range plans {
		out[id] = clonePlan(p)
	}
	return out
}

// PlanByID looks up one plan; ok is false for unknown ids.
func PlanByID(id string) (models.Plan, bool) {
	p, ok := plans[id]
	if !ok {
		return models.Plan{}, false
	}
	return clonePlan(p), true
}

// ValidPlan reports whether id is one of the enumerated tiers.
func ValidPlan(id string) bool {
	_, ok := plans[id]
	return ok
}
