package models

import "time"

// FoodEntry is one logged food row. Macro fields are pointers because the
// store keeps NULL for anything the user left blank.
type FoodEntry struct {
	ID             int64     `json:"id"`
	UserID         int       `json:"user_id"`
	Name           string    `json:"name"`
	Brand          *string   `json:"brand,omitempty"`
	Calories       *float64  `json:"calories,omitempty"`
	Protein        *float64  `json:"protein,omitempty"`
	Carbs          *float64  `json:"carbs,omitempty"`
	Fat            *float64  `json:"fat,omitempty"`
	Sodium         *float64  `json:"sodium,omitempty"`
	Sugar          *float64  `json:"sugar,omitempty"`
	Fiber          *float64  `json:"fiber,omitempty"`
	Cholesterol    *float64  `json:"cholesterol,omitempty"`
	SaturatedFat   *float64  `json:"saturated_fat,omitempty"`
	UnsaturatedFat *float64  `json:"unsaturated_fat,omitempty"`
	MealType       string    `json:"meal_type,omitempty"` // breakfast | lunch | dinner | snack
	EntryDate      string    `json:"entry_date"`          // YYYY-MM-DD
	CreatedAt      time.Time `json:"created_at"`
}

// GymLogEntry is one logged exercise set.
type GymLogEntry struct {
	ID        int64     `json:"id"`
	UserID    int       `json:"user_id"`
	Exercise  string    `json:"exercise"`
	Weight    *float64  `json:"weight,omitempty"`
	Reps      *int      `json:"reps,omitempty"`
	EntryDate string    `json:"entry_date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
}
