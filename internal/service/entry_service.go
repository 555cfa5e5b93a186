package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fitlog/internal/models"
	"fitlog/internal/repository"
)

// ErrValidation marks caller mistakes: missing fields, bad dates, bad ids.
// Handlers map it to 400; everything else is a server fault.
var ErrValidation = errors.New("validation failed")

// FoodEntryInput is one food record as submitted by a form. Nil macro
// pointers mean "not provided" and are stored as NULL, not zero.
type FoodEntryInput struct {
	ID             int64
	Name           string
	Brand          *string
	Calories       *float64
	Protein        *float64
	Carbs          *float64
	Fat            *float64
	Sodium         *float64
	Sugar          *float64
	Fiber          *float64
	Cholesterol    *float64
	SaturatedFat   *float64
	UnsaturatedFat *float64
	MealType       string
	EntryDate      string
}

// GymLogInput is one exercise set as submitted by a form.
type GymLogInput struct {
	ID        int64
	Exercise  string
	Weight    *float64
	Reps      *int
	EntryDate string
}

// EntryFilter narrows list queries. Zero values mean "no constraint".
type EntryFilter struct {
	From     string
	To       string
	MealType string
}

// EntryService validates input and delegates persistence. Update and Delete
// inherit the repository's idempotent no-op contract for missing rows.
type EntryService struct {
	foods   repository.Foods
	gymLogs repository.GymLogs
}

func NewEntryService(foods repository.Foods, gymLogs repository.GymLogs) *EntryService {
	return &EntryService{foods: foods, gymLogs: gymLogs}
}

func (s *EntryService) AddFood(ctx context.Context, userID int, in FoodEntryInput) (int64, error) {
	e, err := s.foodFromInput(userID, in)
	if err != nil {
		return 0, err
	}
	return s.foods.Insert(ctx, e)
}

func (s *EntryService) UpdateFood(ctx context.Context, userID int, in FoodEntryInput) error {
	if in.ID <= 0 {
		return fmt.Errorf("%w: entry id is required", ErrValidation)
	}
	e, err := s.foodFromInput(userID, in)
	if err != nil {
		return err
	}
	e.ID = in.ID
	return s.foods.Update(ctx, e)
}

func (s *EntryService) DeleteFood(ctx context.Context, userID int, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: entry id is required", ErrValidation)
	}
	return s.foods.Delete(ctx, userID, id)
}

func (s *EntryService) ListFoods(ctx context.Context, userID int, f EntryFilter) ([]models.FoodEntry, error) {
	nf, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.foods.List(ctx, userID, nf.From, nf.To, nf.MealType)
}

func (s *EntryService) AddGymLog(ctx context.Context, userID int, in GymLogInput) (int64, error) {
	e, err := s.gymLogFromInput(userID, in)
	if err != nil {
		return 0, err
	}
	return s.gymLogs.Insert(ctx, e)
}

func (s *EntryService) UpdateGymLog(ctx context.Context, userID int, in GymLogInput) error {
	if in.ID <= 0 {
		return fmt.Errorf("%w: entry id is required", ErrValidation)
	}
	e, err := s.gymLogFromInput(userID, in)
	if err != nil {
		return err
	}
	e.ID = in.ID
	return s.gymLogs.Update(ctx, e)
}

func (s *EntryService) DeleteGymLog(ctx context.Context, userID int, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: entry id is required", ErrValidation)
	}
	return s.gymLogs.Delete(ctx, userID, id)
}

func (s *EntryService) ListGymLogs(ctx context.Context, userID int, f EntryFilter) ([]models.GymLogEntry, error) {
	nf, err := normalizeFilter(f)
	if err != nil {
		return nil, err
	}
	return s.gymLogs.List(ctx, userID, nf.From, nf.To)
}

func (s *EntryService) foodFromInput(userID int, in FoodEntryInput) (models.FoodEntry, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.FoodEntry{}, fmt.Errorf("%w: food name is required", ErrValidation)
	}

	date, err := NormalizeEntryDate(in.EntryDate)
	if err != nil {
		return models.FoodEntry{}, err
	}

	return models.FoodEntry{
		UserID:         userID,
		Name:           name,
		Brand:          in.Brand,
		Calories:       in.Calories,
		Protein:        in.Protein,
		Carbs:          in.Carbs,
		Fat:            in.Fat,
		Sodium:         in.Sodium,
		Sugar:          in.Sugar,
		Fiber:          in.Fiber,
		Cholesterol:    in.Cholesterol,
		SaturatedFat:   in.SaturatedFat,
		UnsaturatedFat: in.UnsaturatedFat,
		MealType:       strings.TrimSpace(in.MealType),
		EntryDate:      date,
	}, nil
}

func (s *EntryService) gymLogFromInput(userID int, in GymLogInput) (models.GymLogEntry, error) {
	exercise := strings.TrimSpace(in.Exercise)
	if exercise == "" {
		return models.GymLogEntry{}, fmt.Errorf("%w: exercise name is required", ErrValidation)
	}

	date, err := NormalizeEntryDate(in.EntryDate)
	if err != nil {
		return models.GymLogEntry{}, err
	}

	return models.GymLogEntry{
		UserID:    userID,
		Exercise:  exercise,
		Weight:    in.Weight,
		Reps:      in.Reps,
		EntryDate: date,
	}, nil
}

// normalizeFilter canonicalizes both bounds and rejects inverted ranges.
func normalizeFilter(f EntryFilter) (EntryFilter, error) {
	var err error
	if f.From != "" {
		if f.From, err = NormalizeEntryDate(f.From); err != nil {
			return EntryFilter{}, err
		}
	}
	if f.To != "" {
		if f.To, err = NormalizeEntryDate(f.To); err != nil {
			return EntryFilter{}, err
		}
	}
	if f.From != "" && f.To != "" && f.From > f.To {
		return EntryFilter{}, fmt.Errorf("%w: 'from' date is after 'to' date", ErrValidation)
	}
	return f, nil
}
