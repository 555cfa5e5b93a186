package models

// DashboardTotals sums today's macro intake and activity counts.
type DashboardTotals struct {
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	FoodCount   int     `json:"food_count"`
	GymLogCount int     `json:"gym_log_count"`
}

// DashboardOverview is everything the dashboard needs in one response.
type DashboardOverview struct {
	Foods   []FoodEntry     `json:"foods"`
	GymLogs []GymLogEntry   `json:"gym_logs"`
	Today   DashboardTotals `json:"today"`
}
