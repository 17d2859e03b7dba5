package financial

type MetricsResponse struct {
	TotalBudget     float64 `json:"total_budget"`
	CommittedCost   float64 `json:"committed_cost"`
	AvailableBudget float64 `json:"available_budget"`
	HiredCount      int     `json:"hired_count"`
	AverageSalary   float64 `json:"average_salary"`
	UtilizationRate float64 `json:"utilization_rate"`
}

type SyncResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}
