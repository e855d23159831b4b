package models

import "time"

// UserRole is the role held by an account on the team.
type UserRole string

const (
	UserRoleCSM   UserRole = "CSM"
	UserRoleAM    UserRole = "AM"
	UserRoleADMIN UserRole = "ADMIN"
)

// PlanType is the customer's contract plan.
type PlanType string

const (
	PlanTypeHourly  PlanType = "Hourly"
	PlanTypeLicense PlanType = "License"
)

// HealthStatus is the categorical account-wellness label derived from the
// health score.
type HealthStatus string

const (
	HealthStatusHealthy  HealthStatus = "Healthy"
	HealthStatusAtRisk   HealthStatus = "At Risk"
	HealthStatusCritical HealthStatus = "Critical"
)

// OnboardingStatus tracks customer onboarding progress.
type OnboardingStatus string

const (
	OnboardingNotStarted OnboardingStatus = "Not Started"
	OnboardingInProgress OnboardingStatus = "In Progress"
	OnboardingCompleted  OnboardingStatus = "Completed"
)

// RiskSeverity ranks a risk record.
type RiskSeverity string

const (
	RiskSeverityLow      RiskSeverity = "Low"
	RiskSeverityMedium   RiskSeverity = "Medium"
	RiskSeverityHigh     RiskSeverity = "High"
	RiskSeverityCritical RiskSeverity = "Critical"
)

// RiskStatus is the lifecycle state of a risk record.
type RiskStatus string

const (
	RiskStatusOpen       RiskStatus = "Open"
	RiskStatusInProgress RiskStatus = "In Progress"
	RiskStatusMonitoring RiskStatus = "Monitoring"
	RiskStatusResolved   RiskStatus = "Resolved"
	RiskStatusClosed     RiskStatus = "Closed"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusNotStarted      TaskStatus = "Not Started"
	TaskStatusInProgress      TaskStatus = "In Progress"
	TaskStatusBlocked         TaskStatus = "Blocked"
	TaskStatusWaitingCustomer TaskStatus = "Waiting on Customer"
	TaskStatusCompleted       TaskStatus = "Completed"
	TaskStatusCancelled       TaskStatus = "Cancelled"
)

// TaskPriority ranks a task.
type TaskPriority string

const (
	TaskPriorityCritical TaskPriority = "Critical"
	TaskPriorityHigh     TaskPriority = "High"
	TaskPriorityMedium   TaskPriority = "Medium"
	TaskPriorityLow      TaskPriority = "Low"
)

// User is an account holder on the CSM team.
type User struct {
	ID        string    `json:"id" bson:"id"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name" bson:"name"`
	Role      UserRole  `json:"role" bson:"role"`
	Password  string    `json:"-" bson:"password"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Stakeholder is a customer-side contact embedded in a Customer record.
type Stakeholder struct {
	ID        string `json:"id" bson:"id"`
	FullName  string `json:"full_name" bson:"full_name"`
	Email     string `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string `json:"phone,omitempty" bson:"phone,omitempty"`
	JobTitle  string `json:"job_title,omitempty" bson:"job_title,omitempty"`
	RoleType  string `json:"role_type,omitempty" bson:"role_type,omitempty"`
	IsPrimary bool   `json:"is_primary" bson:"is_primary"`
}

// Customer is a tracked account.
//
// HealthScore and HealthStatus are derived: outside the manual override path
// they always agree with the score-to-status mapping in service.
// CSMOwnerName and AMOwnerName are denormalized from the owning users at
// write time and may go stale if a user is renamed.
type Customer struct {
	ID                 string           `json:"id" bson:"id"`
	CompanyName        string           `json:"company_name" bson:"company_name"`
	Website            string           `json:"website,omitempty" bson:"website,omitempty"`
	Industry           string           `json:"industry,omitempty" bson:"industry,omitempty"`
	Region             string           `json:"region,omitempty" bson:"region,omitempty"`
	PlanType           PlanType         `json:"plan_type,omitempty" bson:"plan_type,omitempty"`
	ARR                float64          `json:"arr" bson:"arr"`
	ContractStartDate  string           `json:"contract_start_date,omitempty" bson:"contract_start_date,omitempty"`
	ContractEndDate    string           `json:"contract_end_date,omitempty" bson:"contract_end_date,omitempty"`
	RenewalDate        string           `json:"renewal_date,omitempty" bson:"renewal_date,omitempty"`
	GoLiveDate         string           `json:"go_live_date,omitempty" bson:"go_live_date,omitempty"`
	ProductsPurchased  []string         `json:"products_purchased" bson:"products_purchased"`
	OnboardingStatus   OnboardingStatus `json:"onboarding_status" bson:"onboarding_status"`
	HealthScore        float64          `json:"health_score" bson:"health_score"`
	HealthStatus       HealthStatus     `json:"health_status" bson:"health_status"`
	RiskLevel          string           `json:"risk_level,omitempty" bson:"risk_level,omitempty"`
	PrimaryObjective   string           `json:"primary_objective,omitempty" bson:"primary_objective,omitempty"`
	CallsProcessed     int              `json:"calls_processed" bson:"calls_processed"`
	ActiveUsers        int              `json:"active_users" bson:"active_users"`
	TotalLicensedUsers int              `json:"total_licensed_users" bson:"total_licensed_users"`
	CSMOwnerID         string           `json:"csm_owner_id,omitempty" bson:"csm_owner_id,omitempty"`
	CSMOwnerName       string           `json:"csm_owner_name,omitempty" bson:"csm_owner_name,omitempty"`
	AMOwnerID          string           `json:"am_owner_id,omitempty" bson:"am_owner_id,omitempty"`
	AMOwnerName        string           `json:"am_owner_name,omitempty" bson:"am_owner_name,omitempty"`
	Tags               []string         `json:"tags" bson:"tags"`
	Stakeholders       []Stakeholder    `json:"stakeholders" bson:"stakeholders"`
	LastActivityDate   string           `json:"last_activity_date,omitempty" bson:"last_activity_date,omitempty"`
	CreatedAt          time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at" bson:"updated_at"`
}

// Activity records a customer touchpoint.
type Activity struct {
	ID               string    `json:"id" bson:"id"`
	CustomerID       string    `json:"customer_id" bson:"customer_id"`
	CustomerName     string    `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
	ActivityType     string    `json:"activity_type" bson:"activity_type"`
	ActivityDate     time.Time `json:"activity_date" bson:"activity_date"`
	Title            string    `json:"title" bson:"title"`
	Summary          string    `json:"summary" bson:"summary"`
	InternalNotes    string    `json:"internal_notes,omitempty" bson:"internal_notes,omitempty"`
	Sentiment        string    `json:"sentiment,omitempty" bson:"sentiment,omitempty"`
	FollowUpRequired bool      `json:"follow_up_required" bson:"follow_up_required"`
	FollowUpDate     string    `json:"follow_up_date,omitempty" bson:"follow_up_date,omitempty"`
	FollowUpStatus   string    `json:"follow_up_status,omitempty" bson:"follow_up_status,omitempty"`
	CSMID            string    `json:"csm_id" bson:"csm_id"`
	CSMName          string    `json:"csm_name,omitempty" bson:"csm_name,omitempty"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// Risk is a churn or revenue threat attached to a customer.
type Risk struct {
	ID                   string       `json:"id" bson:"id"`
	CustomerID           string       `json:"customer_id" bson:"customer_id"`
	CustomerName         string       `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
	Category             string       `json:"category" bson:"category"`
	Subcategory          string       `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Severity             RiskSeverity `json:"severity" bson:"severity"`
	Status               RiskStatus   `json:"status" bson:"status"`
	Title                string       `json:"title" bson:"title"`
	Description          string       `json:"description" bson:"description"`
	ImpactDescription    string       `json:"impact_description,omitempty" bson:"impact_description,omitempty"`
	MitigationPlan       string       `json:"mitigation_plan,omitempty" bson:"mitigation_plan,omitempty"`
	RevenueImpact        float64      `json:"revenue_impact" bson:"revenue_impact"`
	ChurnProbability     int          `json:"churn_probability" bson:"churn_probability"`
	IdentifiedDate       string       `json:"identified_date" bson:"identified_date"`
	TargetResolutionDate string       `json:"target_resolution_date,omitempty" bson:"target_resolution_date,omitempty"`
	ResolutionDate       string       `json:"resolution_date,omitempty" bson:"resolution_date,omitempty"`
	AssignedToID         string       `json:"assigned_to_id" bson:"assigned_to_id"`
	AssignedToName       string       `json:"assigned_to_name,omitempty" bson:"assigned_to_name,omitempty"`
	CreatedAt            time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at" bson:"updated_at"`
}

// Opportunity is an expansion or renewal pipeline entry.
type Opportunity struct {
	ID                string    `json:"id" bson:"id"`
	CustomerID        string    `json:"customer_id" bson:"customer_id"`
	CustomerName      string    `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
	OpportunityType   string    `json:"opportunity_type" bson:"opportunity_type"`
	Title             string    `json:"title" bson:"title"`
	Description       string    `json:"description,omitempty" bson:"description,omitempty"`
	Value             float64   `json:"value" bson:"value"`
	Probability       int       `json:"probability" bson:"probability"`
	Stage             string    `json:"stage" bson:"stage"`
	ExpectedCloseDate string    `json:"expected_close_date,omitempty" bson:"expected_close_date,omitempty"`
	OwnerID           string    `json:"owner_id" bson:"owner_id"`
	OwnerName         string    `json:"owner_name,omitempty" bson:"owner_name,omitempty"`
	CreatedAt         time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" bson:"updated_at"`
}

// Task is an actionable follow-up owned by a user for a customer.
// CompletedDate is set exactly once, when Status first transitions into
// Completed.
type Task struct {
	ID            string       `json:"id" bson:"id"`
	CustomerID    string       `json:"customer_id" bson:"customer_id"`
	CustomerName  string       `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
	TaskType      string       `json:"task_type" bson:"task_type"`
	Title         string       `json:"title" bson:"title"`
	Description   string       `json:"description,omitempty" bson:"description,omitempty"`
	Priority      TaskPriority `json:"priority" bson:"priority"`
	Status        TaskStatus   `json:"status" bson:"status"`
	AssignedToID  string       `json:"assigned_to_id" bson:"assigned_to_id"`
	AssignedToName string      `json:"assigned_to_name,omitempty" bson:"assigned_to_name,omitempty"`
	DueDate       string       `json:"due_date" bson:"due_date"`
	CompletedDate string       `json:"completed_date,omitempty" bson:"completed_date,omitempty"`
	CreatedByID   string       `json:"created_by_id" bson:"created_by_id"`
	CreatedByName string       `json:"created_by_name,omitempty" bson:"created_by_name,omitempty"`
	CreatedAt     time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" bson:"updated_at"`
}

// DataLabsReport is an analytics deliverable shared with a customer.
type DataLabsReport struct {
	ID            string    `json:"id" bson:"id"`
	CustomerID    string    `json:"customer_id" bson:"customer_id"`
	CustomerName  string    `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
	ReportDate    string    `json:"report_date" bson:"report_date"`
	ReportTitle   string    `json:"report_title" bson:"report_title"`
	ReportLink    string    `json:"report_link" bson:"report_link"`
	ReportType    string    `json:"report_type" bson:"report_type"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	SentTo        []string  `json:"sent_to" bson:"sent_to"`
	CreatedByID   string    `json:"created_by_id" bson:"created_by_id"`
	CreatedByName string    `json:"created_by_name,omitempty" bson:"created_by_name,omitempty"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// AuditLog is a record of a mutating API request.
type AuditLog struct {
	ID         string    `json:"id" bson:"id"`
	UserID     string    `json:"user_id,omitempty" bson:"user_id,omitempty"`
	UserEmail  string    `json:"user_email,omitempty" bson:"user_email,omitempty"`
	Method     string    `json:"method" bson:"method"`
	Path       string    `json:"path" bson:"path"`
	StatusCode int       `json:"status_code" bson:"status_code"`
	DurationMs int64     `json:"duration_ms" bson:"duration_ms"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
