package service

import (
	"time"

	"github.com/convin-ai/csm-backend/models"
)

// HealthSignals are the customer usage and engagement inputs the scoring
// engine reads.
type HealthSignals struct {
	ActiveUsers        int
	TotalLicensedUsers int
	CallsProcessed     int
	LastActivityDate   string
	OnboardingStatus   models.OnboardingStatus
}

// SignalsFromCustomer extracts the scoring inputs from a customer record.
func SignalsFromCustomer(c models.Customer) HealthSignals {
	return HealthSignals{
		ActiveUsers:        c.ActiveUsers,
		TotalLicensedUsers: c.TotalLicensedUsers,
		CallsProcessed:     c.CallsProcessed,
		LastActivityDate:   c.LastActivityDate,
		OnboardingStatus:   c.OnboardingStatus,
	}
}

// CalculateHealthScore derives a 0-100 health score from the current
// signals. Pure and deterministic apart from the wall clock used for the
// recency bucket.
func CalculateHealthScore(signals HealthSignals) float64 {
	return calculateHealthScoreAt(signals, time.Now().UTC())
}

func calculateHealthScoreAt(signals HealthSignals, now time.Time) float64 {
	score := 50.0

	// Usage rate bucket: skipped entirely when no licensed seats are known.
	if signals.ActiveUsers > 0 && signals.TotalLicensedUsers > 0 {
		usageRate := float64(signals.ActiveUsers) / float64(signals.TotalLicensedUsers)
		switch {
		case usageRate >= 0.7:
			score += 15
		case usageRate >= 0.5:
			score += 10
		case usageRate >= 0.3:
			score += 5
		}
	}

	switch {
	case signals.CallsProcessed > 1000:
		score += 10
	case signals.CallsProcessed > 500:
		score += 5
	}

	// Recency bucket: best effort. An absent or unparseable date yields no
	// bonus rather than failing the computation.
	if signals.LastActivityDate != "" {
		if last, ok := ParseActivityDate(signals.LastActivityDate); ok {
			daysSince := int(now.Sub(last).Hours() / 24)
			switch {
			case daysSince < 7:
				score += 15
			case daysSince < 14:
				score += 10
			case daysSince < 30:
				score += 5
			}
		}
	}

	switch signals.OnboardingStatus {
	case models.OnboardingCompleted:
		score += 10
	case models.OnboardingInProgress:
		score += 5
	}

	return clampScore(score)
}

// DetermineHealthStatus maps a score to its status label. The bands are a
// total order with no gaps or overlaps.
func DetermineHealthStatus(score float64) models.HealthStatus {
	switch {
	case score >= 80:
		return models.HealthStatusHealthy
	case score >= 50:
		return models.HealthStatusAtRisk
	default:
		return models.HealthStatusCritical
	}
}

// ScoreForStatus is the inverse mapping used by the manual health override:
// the chosen status forward-derives a canonical score. An unknown status
// keeps the provided fallback.
func ScoreForStatus(status models.HealthStatus, fallback float64) float64 {
	switch status {
	case models.HealthStatusHealthy:
		return 85
	case models.HealthStatusAtRisk:
		return 65
	case models.HealthStatusCritical:
		return 35
	default:
		return fallback
	}
}

func clampScore(score float64) float64 {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

var activityDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseActivityDate parses the timestamp formats activity dates arrive in.
func ParseActivityDate(value string) (time.Time, bool) {
	for _, layout := range activityDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
