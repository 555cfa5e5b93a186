package service

import (
	"context"
	"fmt"
	"time"

	"fitlog/internal/models"
	"fitlog/internal/repository"
)

// DashboardService assembles the home view from both entry tables.
type DashboardService struct {
	foods   repository.Foods
	gymLogs repository.GymLogs
}

func NewDashboardService(foods repository.Foods, gymLogs repository.GymLogs) *DashboardService {
	return &DashboardService{foods: foods, gymLogs: gymLogs}
}

// Overview returns all of the user's entries plus aggregated totals for
// today. Either fetch failing fails the whole view; a partial dashboard
// would silently misreport totals.
func (s *DashboardService) Overview(ctx context.Context, userID int) (models.DashboardOverview, error) {
	foods, err := s.foods.List(ctx, userID, "", "", "")
	if err != nil {
		return models.DashboardOverview{}, fmt.Errorf("dashboard foods: %w", err)
	}

	gymLogs, err := s.gymLogs.List(ctx, userID, "", "")
	if err != nil {
		return models.DashboardOverview{}, fmt.Errorf("dashboard gym logs: %w", err)
	}

	today := time.Now().UTC().Format(DateLayout)
	return models.DashboardOverview{
		Foods:   foods,
		GymLogs: gymLogs,
		Today:   totalsFor(today, foods, gymLogs),
	}, nil
}

// totalsFor sums the macro columns of entries dated day. Nil macros count
// as zero.
func totalsFor(day string, foods []models.FoodEntry, gymLogs []models.GymLogEntry) models.DashboardTotals {
	var t models.DashboardTotals
	for _, f := range foods {
		if f.EntryDate != day {
			continue
		}
		t.FoodCount++
		t.Calories += deref(f.Calories)
		t.Protein += deref(f.Protein)
		t.Carbs += deref(f.Carbs)
		t.Fat += deref(f.Fat)
	}
	for _, g := range gymLogs {
		if g.EntryDate == day {
			t.GymLogCount++
		}
	}
	return t
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
