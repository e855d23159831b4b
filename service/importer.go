package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/convin-ai/csm-backend/models"
	"github.com/convin-ai/csm-backend/utils"
)

// Imported customers get a fixed default-healthy placeholder instead of a
// computed score; they have no usage signals yet.
const (
	importDefaultScore  = 75.0
	importDefaultStatus = models.HealthStatusHealthy
)

// CustomerRow is one CSV data row keyed by header column name.
type CustomerRow map[string]string

// CompanyName returns the row's trimmed required column.
func (r CustomerRow) CompanyName() string {
	return strings.TrimSpace(r["company_name"])
}

// CSMEmail returns the optional owner-resolution column.
func (r CustomerRow) CSMEmail() string {
	return strings.TrimSpace(r["csm_email"])
}

// CustomerFromRow converts a CSV row into a customer record. The owner
// reference is passed in already resolved; an unresolvable email leaves it
// empty rather than failing the row.
func CustomerFromRow(row CustomerRow, csmOwnerID, csmOwnerName string, now time.Time) (models.Customer, error) {
	companyName := row.CompanyName()
	if companyName == "" {
		return models.Customer{}, fmt.Errorf("Missing company_name")
	}

	arr := 0.0
	if raw := strings.TrimSpace(row["arr"]); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.Customer{}, fmt.Errorf("invalid arr value '%s'", raw)
		}
		arr = parsed
	}

	planType := models.PlanTypeLicense
	if raw := strings.TrimSpace(row["plan_type"]); raw != "" {
		planType = models.PlanType(raw)
	}

	return models.Customer{
		ID:                utils.NewID(),
		CompanyName:       companyName,
		Website:           strings.TrimSpace(row["website"]),
		Industry:          strings.TrimSpace(row["industry"]),
		Region:            strings.TrimSpace(row["region"]),
		PlanType:          planType,
		ARR:               arr,
		RenewalDate:       strings.TrimSpace(row["renewal_date"]),
		OnboardingStatus:  models.OnboardingNotStarted,
		HealthScore:       importDefaultScore,
		HealthStatus:      importDefaultStatus,
		CSMOwnerID:        csmOwnerID,
		CSMOwnerName:      csmOwnerName,
		ProductsPurchased: []string{},
		Tags:              []string{},
		Stakeholders:      []models.Stakeholder{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}
