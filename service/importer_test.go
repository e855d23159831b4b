package service

import (
	"testing"
	"time"

	"github.com/convin-ai/csm-backend/models"
)

var importNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestCustomerFromRowDefaults(t *testing.T) {
	row := CustomerRow{
		"company_name": "Acme Corp",
		"industry":     "Manufacturing",
		"region":       "North India",
		"arr":          "120000.50",
	}

	customer, err := CustomerFromRow(row, "csm-1", "Priya Sharma", importNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if customer.CompanyName != "Acme Corp" {
		t.Errorf("expected company name, got %q", customer.CompanyName)
	}
	if customer.ARR != 120000.50 {
		t.Errorf("expected arr 120000.50, got %v", customer.ARR)
	}
	if customer.PlanType != models.PlanTypeLicense {
		t.Errorf("expected default License plan, got %v", customer.PlanType)
	}
	if customer.OnboardingStatus != models.OnboardingNotStarted {
		t.Errorf("expected Not Started onboarding, got %v", customer.OnboardingStatus)
	}
	if customer.HealthScore != 75 || customer.HealthStatus != models.HealthStatusHealthy {
		t.Errorf("expected import placeholder health 75/Healthy, got %v/%v", customer.HealthScore, customer.HealthStatus)
	}
	if customer.CSMOwnerID != "csm-1" || customer.CSMOwnerName != "Priya Sharma" {
		t.Errorf("expected resolved owner, got %q/%q", customer.CSMOwnerID, customer.CSMOwnerName)
	}
	if customer.ID == "" {
		t.Error("expected generated id")
	}
	if customer.ProductsPurchased == nil || customer.Tags == nil || customer.Stakeholders == nil {
		t.Error("expected empty slices, not nil")
	}
}

func TestCustomerFromRowMissingCompanyName(t *testing.T) {
	_, err := CustomerFromRow(CustomerRow{"industry": "Banking"}, "", "", importNow)
	if err == nil {
		t.Fatal("expected error for missing company_name")
	}
	if err.Error() != "Missing company_name" {
		t.Fatalf("expected 'Missing company_name', got %q", err.Error())
	}
}

func TestCustomerFromRowWhitespaceCompanyName(t *testing.T) {
	if _, err := CustomerFromRow(CustomerRow{"company_name": "   "}, "", "", importNow); err == nil {
		t.Fatal("expected error for blank company_name")
	}
}

func TestCustomerFromRowInvalidARR(t *testing.T) {
	row := CustomerRow{"company_name": "Acme Corp", "arr": "lots"}
	if _, err := CustomerFromRow(row, "", "", importNow); err == nil {
		t.Fatal("expected error for unparseable arr")
	}
}

func TestCustomerFromRowEmptyARR(t *testing.T) {
	row := CustomerRow{"company_name": "Acme Corp", "arr": ""}
	customer, err := CustomerFromRow(row, "", "", importNow)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if customer.ARR != 0 {
		t.Fatalf("expected zero arr, got %v", customer.ARR)
	}
}

func TestCustomerRowAccessorsTrim(t *testing.T) {
	row := CustomerRow{"company_name": "  Zomato  ", "csm_email": " priya.sharma@convin.ai "}
	if row.CompanyName() != "Zomato" {
		t.Errorf("expected trimmed company name, got %q", row.CompanyName())
	}
	if row.CSMEmail() != "priya.sharma@convin.ai" {
		t.Errorf("expected trimmed email, got %q", row.CSMEmail())
	}
}
