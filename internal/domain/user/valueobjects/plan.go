package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Plan is a subscription tier.
type Plan string

const (
	PlanFree     Plan = "free"
	PlanPremium  Plan = "premium"
	PlanBusiness Plan = "business"
)

var validPlans = map[Plan]bool{
	PlanFree:     true,
	PlanPremium:  true,
	PlanBusiness: true,
}

// planLabels is filled once at init. A cases.Caser is stateful and must not
// be shared between goroutines.
var planLabels = func() map[Plan]string {
	labels := make(map[Plan]string, len(validPlans))
	for p := range validPlans {
		labels[p] = cases.Title(language.English).String(string(p))
	}
	return labels
}()

func ParsePlan(s string) (Plan, error) {
	p := Plan(strings.ToLower(strings.TrimSpace(s)))
	if !validPlans[p] {
		return "", fmt.Errorf("invalid subscription plan: %q", s)
	}
	return p, nil
}

func (p Plan) String() string {
	return string(p)
}

func (p Plan) IsValid() bool {
	return validPlans[p]
}

// Label is the display form shown on the dashboard, e.g. "Premium".
func (p Plan) Label() string {
	if label, ok := planLabels[p]; ok {
		return label
	}
	return cases.Title(language.English).String(string(p))
}
