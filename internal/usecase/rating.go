package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/storeratings/internal/domain/errors"
	"github.com/polkiloo/storeratings/internal/domain/model"
	"github.com/polkiloo/storeratings/internal/domain/repository"
)

// RatingUseCase keeps one rating per user and store; resubmission overwrites.
type RatingUseCase struct {
	ratings repository.RatingRepository
	stores  repository.StoreRepository
}

// NewRatingUseCase constructs RatingUseCase.
func NewRatingUseCase(ratings repository.RatingRepository, stores repository.StoreRepository) *RatingUseCase {
	return &RatingUseCase{ratings: ratings, stores: stores}
}

// Submit records the caller's score for a store. Returns whether a new rating was created.
func (u *RatingUseCase) Submit(ctx context.Context, p model.Principal, storeID int64, score int) (*model.Rating, bool, error) {
	if err := Authorize(p, ActionSubmitRating); err != nil {
		return nil, false, err
	}
	if !model.ValidScore(score) {
		return nil, false, domainErrors.ErrInvalidScore
	}

	store, err := u.stores.GetByID(ctx, storeID)
	if err != nil {
		return nil, false, err
	}
	if err := AuthorizeStore(p, ActionSubmitRating, store); err != nil {
		return nil, false, err
	}

	rating, created, err := u.ratings.Upsert(ctx, p.UserID, store.ID, score)
	if err != nil {
		return nil, false, err
	}
	observeSubmission(created)
	return rating, created, nil
}

// Mine returns the caller's own rating for a store, or ErrNotFound.
func (u *RatingUseCase) Mine(ctx context.Context, p model.Principal, storeID int64) (*model.Rating, error) {
	if err := Authorize(p, ActionSubmitRating); err != nil {
		return nil, err
	}
	return u.ratings.GetByUserAndStore(ctx, p.UserID, storeID)
}
