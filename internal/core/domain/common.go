package domain

import "time"

// AccountType is the archetype a user registers under. It selects the dashboard
// variant (reference dataset, aggregator and rule table).
type AccountType string

const (
	AccountFarmer     AccountType = "farmer"
	AccountIndividual AccountType = "individual"
	AccountCompany    AccountType = "company"
)

// IsValid reports whether t is one of the known archetypes.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountFarmer, AccountIndividual, AccountCompany:
		return true
	}
	return false
}

// ViewerContext carries everything request-scoped that the dashboard pipeline needs.
// The pipeline reads it and never consults ambient state.
type ViewerContext struct {
	UserID      string
	AccountType AccountType
	Language    string
	Now         time.Time
}
