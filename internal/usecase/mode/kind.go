package mode

import (
	"fmt"
	"strings"
)

// Kind identifies one of the financial modes
type Kind string

const (
	KindBudgeting  Kind = "BUDGETING"
	KindSavings    Kind = "SAVINGS"
	KindInvestment Kind = "INVESTMENT"
)

// DisplayName is the human readable name announced to the owner
func (k Kind) DisplayName() string {
	switch k {
	case KindBudgeting:
		return "Budgeting Mode"
	case KindSavings:
		return "Savings Mode"
	case KindInvestment:
		return "Investment Mode"
	}
	return string(k)
}

// ParseKind accepts "savings", "SAVINGS" or "Savings Mode"
func ParseKind(s string) (Kind, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.TrimSuffix(normalized, " MODE")
	switch Kind(normalized) {
	case KindBudgeting, KindSavings, KindInvestment:
		return Kind(normalized), nil
	}
	return "", fmt.Errorf("unknown financial mode %q", s)
}

// RiskProfile tunes the Investment mode's advice
type RiskProfile string

const (
	RiskLow    RiskProfile = "LOW"
	RiskMedium RiskProfile = "MEDIUM"
	RiskHigh   RiskProfile = "HIGH"
)

// ParseRiskProfile converts a case-insensitive name into a RiskProfile
func ParseRiskProfile(s string) (RiskProfile, error) {
	switch p := RiskProfile(strings.ToUpper(strings.TrimSpace(s))); p {
	case RiskLow, RiskMedium, RiskHigh:
		return p, nil
	}
	return "", fmt.Errorf("unknown risk profile %q", s)
}
