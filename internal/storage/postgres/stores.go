package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/storeratings/internal/domain/errors"
	"github.com/polkiloo/storeratings/internal/domain/model"
)

type storeRepository struct {
	storage *Storage
}

var storeSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"address":   "address",
	"createdAt": "created_at",
}

// Create relies on idx_stores_owner to reject a second store per owner.
func (r *storeRepository) Create(ctx context.Context, s *model.Store) error {
	const query = `INSERT INTO stores (name, email, address, owner_id)
                   VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query, s.Name, s.Email, s.Address, s.OwnerID).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		switch pgCode(err) {
		case codeUniqueViolation:
			return domainErrors.ErrDuplicateStore
		case codeForeignKeyViolation:
			return domainErrors.ErrUserNotFound
		}
		return translate(err)
	}
	return nil
}

func (r *storeRepository) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	const query = `SELECT id, name, email, address, owner_id, created_at FROM stores WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *storeRepository) GetByOwner(ctx context.Context, ownerID int64) (*model.Store, error) {
	const query = `SELECT id, name, email, address, owner_id, created_at FROM stores WHERE owner_id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, ownerID))
}

func (r *storeRepository) scanOne(row pgx.Row) (*model.Store, error) {
	var s model.Store
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrStoreNotFound
		}
		return nil, translate(err)
	}
	return &s, nil
}

func (r *storeRepository) List(ctx context.Context, filter model.StoreFilter) ([]model.Store, error) {
	query := fmt.Sprintf(`SELECT id, name, email, address, owner_id, created_at
                   FROM stores
                   WHERE ($1 = '' OR name ILIKE '%%' || $1 || '%%' OR email ILIKE '%%' || $1 || '%%' OR address ILIKE '%%' || $1 || '%%')
                   ORDER BY %s`, orderClause(storeSortColumns, filter.SortBy, filter.Desc))

	rows, err := r.storage.pool.Query(ctx, query, filter.Search)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	result := make([]model.Store, 0)
	for rows.Next() {
		var s model.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Address, &s.OwnerID, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}
	return result, nil
}
