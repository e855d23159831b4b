package models

// DashboardStats is the cross-collection summary computed fresh per request.
type DashboardStats struct {
	TotalCustomers      int64   `json:"total_customers"`
	TotalARR            float64 `json:"total_arr"`
	HealthyCustomers    int64   `json:"healthy_customers"`
	AtRiskCustomers     int64   `json:"at_risk_customers"`
	CriticalCustomers   int64   `json:"critical_customers"`
	OpenRisks           int64   `json:"open_risks"`
	CriticalRisks       int64   `json:"critical_risks"`
	ActiveOpportunities int64   `json:"active_opportunities"`
	PipelineValue       float64 `json:"pipeline_value"`
	MyTasks             int64   `json:"my_tasks"`
	OverdueTasks        int64   `json:"overdue_tasks"`
}
