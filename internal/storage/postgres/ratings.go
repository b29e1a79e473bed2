package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/storeratings/internal/domain/errors"
	"github.com/polkiloo/storeratings/internal/domain/model"
)

type ratingRepository struct {
	storage *Storage
}

// Upsert keys on (user_id, store_id); xmax is zero only for freshly inserted rows.
func (r *ratingRepository) Upsert(ctx context.Context, userID, storeID int64, score int) (*model.Rating, bool, error) {
	const query = `INSERT INTO ratings (user_id, store_id, score)
                   VALUES ($1, $2, $3)
                   ON CONFLICT (user_id, store_id) DO UPDATE
                   SET score = EXCLUDED.score, updated_at = NOW()
                   RETURNING id, created_at, updated_at, (xmax = 0) AS inserted`
	rating := model.Rating{UserID: userID, StoreID: storeID, Score: score}
	var inserted bool
	err := r.storage.pool.QueryRow(ctx, query, userID, storeID, score).Scan(&rating.ID, &rating.CreatedAt, &rating.UpdatedAt, &inserted)
	if err != nil {
		switch pgCode(err) {
		case codeForeignKeyViolation:
			return nil, false, domainErrors.ErrStoreNotFound
		case codeCheckViolation:
			return nil, false, domainErrors.ErrInvalidScore
		}
		return nil, false, translate(err)
	}
	return &rating, inserted, nil
}

func (r *ratingRepository) GetByUserAndStore(ctx context.Context, userID, storeID int64) (*model.Rating, error) {
	const query = `SELECT id, user_id, store_id, score, created_at, updated_at
                   FROM ratings WHERE user_id=$1 AND store_id=$2`
	var rt model.Rating
	err := r.storage.pool.QueryRow(ctx, query, userID, storeID).Scan(&rt.ID, &rt.UserID, &rt.StoreID, &rt.Score, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, translate(err)
	}
	return &rt, nil
}

func (r *ratingRepository) ListReviews(ctx context.Context, storeID int64) ([]model.Review, error) {
	const query = `SELECT r.id, r.user_id, u.name, r.score, r.created_at, r.updated_at
                   FROM ratings r JOIN users u ON u.id = r.user_id
                   WHERE r.store_id=$1
                   ORDER BY r.updated_at DESC, r.id DESC`
	rows, err := r.storage.pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	result := make([]model.Review, 0)
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.RatingID, &rv.UserID, &rv.ReviewerName, &rv.Score, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (r *ratingRepository) TallyByStore(ctx context.Context) ([]model.ScoreTally, error) {
	const query = `SELECT store_id, score, COUNT(*) FROM ratings GROUP BY store_id, score`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var result []model.ScoreTally
	for rows.Next() {
		var t model.ScoreTally
		if err := rows.Scan(&t.StoreID, &t.Score, &t.Count); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}
	return result, nil
}
