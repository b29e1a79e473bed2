package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/storeratings/internal/domain/errors"
	"github.com/polkiloo/storeratings/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

var userSortColumns = map[string]string{
	"name":      "name",
	"email":     "email",
	"address":   "address",
	"role":      "role",
	"createdAt": "created_at",
}

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	const query = `INSERT INTO users (name, email, password_hash, role, address)
                   VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	err := r.storage.pool.QueryRow(ctx, query, u.Name, u.Email, u.PasswordHash, u.Role, u.Address).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if pgCode(err) == codeUniqueViolation {
			return domainErrors.ErrDuplicateUser
		}
		return translate(err)
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, role, address, created_at FROM users WHERE LOWER(email)=LOWER($1)`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, role, address, created_at FROM users WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanOne(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Address, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, translate(err)
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	query := fmt.Sprintf(`SELECT id, name, email, password_hash, role, address, created_at
                   FROM users
                   WHERE ($1 = '' OR name ILIKE '%%' || $1 || '%%' OR email ILIKE '%%' || $1 || '%%' OR address ILIKE '%%' || $1 || '%%')
                     AND ($2 = '' OR role = $2)
                   ORDER BY %s`, orderClause(userSortColumns, filter.SortBy, filter.Desc))

	rows, err := r.storage.pool.Query(ctx, query, filter.Search, string(filter.Role))
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	result := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Address, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(err)
	}
	return result, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	const query = `UPDATE users SET password_hash=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, hash, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}

// orderClause builds an ORDER BY from a whitelist, falling back to id.
func orderClause(columns map[string]string, sortBy string, desc bool) string {
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	col, ok := columns[sortBy]
	if !ok {
		return "id " + dir
	}
	return col + " " + dir + ", id ASC"
}
