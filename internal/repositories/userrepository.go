package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Totarae/shortlink/internal/database"
	"github.com/Totarae/shortlink/internal/model"
	"github.com/Totarae/shortlink/internal/storage"
)

const userColumns = `id, email, name, api_key, tier, created_at`

// UserRepository реализует storage.UserStore.
type UserRepository struct {
	DB *database.DB
}

var _ storage.UserStore = (*UserRepository)(nil)

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.APIKey, &u.Tier, &u.CreatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

// InsertUser сохраняет пользователя. Повтор email даёт storage.ErrConflict.
func (r *UserRepository) InsertUser(ctx context.Context, u *model.User) error {
	err := r.DB.Pool.QueryRow(ctx,
		`INSERT INTO users (email, name, api_key, tier) VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		u.Email, u.Name, u.APIKey, u.Tier,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", mapError(err))
	}
	return nil
}

func (r *UserRepository) FindUsersByEmail(ctx context.Context, email string) ([]*model.User, error) {
	rows, err := r.DB.Pool.Query(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1 ORDER BY id`, email)
	if err != nil {
		return nil, fmt.Errorf("query users by email: %w", err)
	}
	defer rows.Close()

	users := make([]*model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) FindUserByAPIKey(ctx context.Context, apiKey string) (*model.User, error) {
	row := r.DB.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE api_key = $1`, apiKey)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("find user by api key: %w", mapError(err))
	}
	return u, nil
}
