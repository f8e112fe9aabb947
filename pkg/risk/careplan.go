package risk

import "fmt"

// carePlans is a total map over the closed category set. Each list is fixed
// and ordered by urgency; the selector never reorders or filters.
var carePlans = map[Category][]string{
	CategoryHigh: {
		"HIGH PRIORITY: Schedule follow-up within 3 days of discharge",
		"Arrange home health nursing visit within 24 hours",
		"Implement daily medication adherence monitoring",
		"Consider transitional care management program enrollment",
		"Schedule telehealth check-in at 48 hours post-discharge",
		"Flag chart for care coordinator review before discharge",
	},
	CategoryMedium: {
		"Schedule follow-up within 7 days of discharge",
		"Medication reconciliation at discharge",
		"Provide written discharge instructions with emergency contacts",
		"Arrange follow-up call within 48-72 hours",
		"Screen for transportation barriers to follow-up care",
	},
	CategoryLow: {
		"Standard follow-up within 14 days",
		"Provide discharge education materials",
		"Ensure understanding of medication regimen",
		"Provide 24-hour nurse line contact information",
	},
}

// SelectCarePlan returns a copy of the fixed recommendation list for the
// category. An unknown category is a programming error, not user input, so
// it panics.
func SelectCarePlan(category Category) []string {
	plan, ok := carePlans[category]
	if !ok {
		panic(fmt.Sprintf("risk: unknown category %q", category))
	}
	out := make([]string, len(plan))
	copy(out, plan)
	return out
}
