package models

// RegisterRequest creates a new user account.
type RegisterRequest struct {
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Role     UserRole `json:"role"`
}

// LoginRequest authenticates an existing user.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// CustomerCreateRequest carries the client-writable customer fields.
// last_activity_date is intentionally absent: it is maintained by activity
// creation, never set by the client.
type CustomerCreateRequest struct {
	CompanyName        string           `json:"company_name" binding:"required"`
	Website            string           `json:"website"`
	Industry           string           `json:"industry"`
	Region             string           `json:"region"`
	PlanType           PlanType         `json:"plan_type"`
	ARR                float64          `json:"arr"`
	ContractStartDate  string           `json:"contract_start_date"`
	ContractEndDate    string           `json:"contract_end_date"`
	RenewalDate        string           `json:"renewal_date"`
	GoLiveDate         string           `json:"go_live_date"`
	ProductsPurchased  []string         `json:"products_purchased"`
	OnboardingStatus   OnboardingStatus `json:"onboarding_status"`
	PrimaryObjective   string           `json:"primary_objective"`
	CallsProcessed     int              `json:"calls_processed"`
	ActiveUsers        int              `json:"active_users"`
	TotalLicensedUsers int              `json:"total_licensed_users"`
	CSMOwnerID         string           `json:"csm_owner_id"`
	AMOwnerID          string           `json:"am_owner_id"`
	Tags               []string         `json:"tags"`
	Stakeholders       []Stakeholder    `json:"stakeholders"`
}

// CustomerUpdateRequest is a partial customer update. Nil fields keep the
// stored values, so a partial body never zeroes out signals it does not
// carry.
type CustomerUpdateRequest struct {
	CompanyName        *string           `json:"company_name"`
	Website            *string           `json:"website"`
	Industry           *string           `json:"industry"`
	Region             *string           `json:"region"`
	PlanType           *PlanType         `json:"plan_type"`
	ARR                *float64          `json:"arr"`
	ContractStartDate  *string           `json:"contract_start_date"`
	ContractEndDate    *string           `json:"contract_end_date"`
	RenewalDate        *string           `json:"renewal_date"`
	GoLiveDate         *string           `json:"go_live_date"`
	ProductsPurchased  *[]string         `json:"products_purchased"`
	OnboardingStatus   *OnboardingStatus `json:"onboarding_status"`
	PrimaryObjective   *string           `json:"primary_objective"`
	CallsProcessed     *int              `json:"calls_processed"`
	ActiveUsers        *int              `json:"active_users"`
	TotalLicensedUsers *int              `json:"total_licensed_users"`
	CSMOwnerID         *string           `json:"csm_owner_id"`
	AMOwnerID          *string           `json:"am_owner_id"`
	Tags               *[]string         `json:"tags"`
	Stakeholders       *[]Stakeholder    `json:"stakeholders"`
}

// HealthStatusUpdateRequest is the manual health override payload.
type HealthStatusUpdateRequest struct {
	HealthStatus HealthStatus `json:"health_status" binding:"required"`
}

// HealthStatusUpdateResponse echoes the persisted override.
type HealthStatusUpdateResponse struct {
	Message      string       `json:"message"`
	HealthStatus HealthStatus `json:"health_status"`
	HealthScore  float64      `json:"health_score"`
}

// ActivityCreateRequest records a customer touchpoint.
type ActivityCreateRequest struct {
	CustomerID       string `json:"customer_id" binding:"required"`
	ActivityType     string `json:"activity_type" binding:"required"`
	ActivityDate     string `json:"activity_date" binding:"required"`
	Title            string `json:"title" binding:"required"`
	Summary          string `json:"summary" binding:"required"`
	InternalNotes    string `json:"internal_notes"`
	Sentiment        string `json:"sentiment"`
	FollowUpRequired bool   `json:"follow_up_required"`
	FollowUpDate     string `json:"follow_up_date"`
}

// RiskCreateRequest opens a risk against a customer.
type RiskCreateRequest struct {
	CustomerID           string       `json:"customer_id" binding:"required"`
	Category             string       `json:"category" binding:"required"`
	Subcategory          string       `json:"subcategory"`
	Severity             RiskSeverity `json:"severity" binding:"required"`
	Title                string       `json:"title" binding:"required"`
	Description          string       `json:"description" binding:"required"`
	ImpactDescription    string       `json:"impact_description"`
	MitigationPlan       string       `json:"mitigation_plan"`
	RevenueImpact        float64      `json:"revenue_impact"`
	ChurnProbability     int          `json:"churn_probability"`
	IdentifiedDate       string       `json:"identified_date" binding:"required"`
	TargetResolutionDate string       `json:"target_resolution_date"`
	AssignedToID         string       `json:"assigned_to_id" binding:"required"`
}

// RiskUpdateRequest is a partial risk update.
type RiskUpdateRequest struct {
	Category             *string       `json:"category"`
	Subcategory          *string       `json:"subcategory"`
	Severity             *RiskSeverity `json:"severity"`
	Status               *RiskStatus   `json:"status"`
	Title                *string       `json:"title"`
	Description          *string       `json:"description"`
	ImpactDescription    *string       `json:"impact_description"`
	MitigationPlan       *string       `json:"mitigation_plan"`
	RevenueImpact        *float64      `json:"revenue_impact"`
	ChurnProbability     *int          `json:"churn_probability"`
	IdentifiedDate       *string       `json:"identified_date"`
	TargetResolutionDate *string       `json:"target_resolution_date"`
	ResolutionDate       *string       `json:"resolution_date"`
	AssignedToID         *string       `json:"assigned_to_id"`
}

// OpportunityCreateRequest opens a pipeline entry.
type OpportunityCreateRequest struct {
	CustomerID        string  `json:"customer_id" binding:"required"`
	OpportunityType   string  `json:"opportunity_type" binding:"required"`
	Title             string  `json:"title" binding:"required"`
	Description       string  `json:"description"`
	Value             float64 `json:"value"`
	Probability       int     `json:"probability"`
	Stage             string  `json:"stage"`
	ExpectedCloseDate string  `json:"expected_close_date"`
	OwnerID           string  `json:"owner_id" binding:"required"`
}

// TaskCreateRequest creates a follow-up task.
type TaskCreateRequest struct {
	CustomerID   string       `json:"customer_id" binding:"required"`
	TaskType     string       `json:"task_type" binding:"required"`
	Title        string       `json:"title" binding:"required"`
	Description  string       `json:"description"`
	Priority     TaskPriority `json:"priority"`
	Status       TaskStatus   `json:"status"`
	AssignedToID string       `json:"assigned_to_id" binding:"required"`
	DueDate      string       `json:"due_date" binding:"required"`
}

// TaskUpdateRequest is a partial task update. A status transition into
// Completed stamps completed_date server-side.
type TaskUpdateRequest struct {
	TaskType     *string       `json:"task_type"`
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	Priority     *TaskPriority `json:"priority"`
	Status       *TaskStatus   `json:"status"`
	AssignedToID *string       `json:"assigned_to_id"`
	DueDate      *string       `json:"due_date"`
}

// ReportCreateRequest registers a Data Labs report deliverable.
type ReportCreateRequest struct {
	CustomerID  string   `json:"customer_id" binding:"required"`
	ReportDate  string   `json:"report_date" binding:"required"`
	ReportTitle string   `json:"report_title" binding:"required"`
	ReportLink  string   `json:"report_link" binding:"required"`
	ReportType  string   `json:"report_type" binding:"required"`
	Description string   `json:"description"`
	SentTo      []string `json:"sent_to"`
}

// BulkUploadRowError describes one failed CSV row.
type BulkUploadRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// BulkUploadResult aggregates a bulk import run.
type BulkUploadResult struct {
	SuccessCount int                  `json:"success_count"`
	ErrorCount   int                  `json:"error_count"`
	TotalRows    int                  `json:"total_rows"`
	Errors       []BulkUploadRowError `json:"errors"`
}
