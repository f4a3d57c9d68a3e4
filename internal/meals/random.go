package meals

import (
	"context"
	"math/rand"

	"github.com/denerose/VeganMealAppApi-sub000/internal/models"
)

// RandomMealService picks one eligible meal with uniform probability. An
// empty candidate set is not an error; the caller gets nil.
type RandomMealService struct {
	eligible *EligibleMealsService
}

func NewRandomMealService(eligible *EligibleMealsService) *RandomMealService {
	return &RandomMealService{eligible: eligible}
}

// Execute delegates to the eligibility filter and returns a uniformly random
// candidate, or nil when nothing matches. Repeated calls are independent
// draws; nothing is persisted.
func (s *RandomMealService) Execute(ctx context.Context, req Request) (*models.MealSummary, error) {
	candidates, err := s.eligible.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	pick := candidates[rand.Intn(len(candidates))]
	return &pick, nil
}
