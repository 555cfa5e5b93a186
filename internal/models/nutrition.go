package models

// NutritionFacts is the normalized shape of one upstream search result.
// Absent upstream numerics become 0; an absent name becomes "Unknown".
type NutritionFacts struct {
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Sodium   float64 `json:"sodium"`
	Sugar    float64 `json:"sugar"`
	Fiber    float64 `json:"fiber"`
}
