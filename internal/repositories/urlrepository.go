package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Totarae/shortlink/internal/database"
	"github.com/Totarae/shortlink/internal/model"
	"github.com/Totarae/shortlink/internal/storage"
)

const uniqueViolation = "23505"

const urlColumns = `id, url, short_code, user_id, clicks, password, created_at, last_accessed_at, expires_at`

// URLRepository реализует storage.URLStore с использованием PostgreSQL.
type URLRepository struct {
	DB *database.DB
}

var _ storage.URLStore = (*URLRepository)(nil)

// NewURLRepository создаёт новый экземпляр URLRepository.
func NewURLRepository(db *database.DB) *URLRepository {
	return &URLRepository{DB: db}
}

// mapError приводит ошибки pgx к ошибкам хранилища.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, storage.ErrConflict)
	}
	return err
}

func scanURL(row pgx.Row) (*model.URL, error) {
	u := &model.URL{}
	err := row.Scan(&u.ID, &u.URL, &u.ShortCode, &u.UserID, &u.Clicks, &u.Password,
		&u.CreatedAt, &u.LastAccessedAt, &u.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

const insertURLQuery = `INSERT INTO urls (url, short_code, user_id, password, created_at, expires_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at`

func createdAt(u *model.URL) time.Time {
	if u.CreatedAt.IsZero() {
		return time.Now()
	}
	return u.CreatedAt
}

// InsertURL сохраняет ссылку. Занятый short_code даёт storage.ErrConflict.
func (r *URLRepository) InsertURL(ctx context.Context, u *model.URL) error {
	err := r.DB.Pool.QueryRow(ctx, insertURLQuery,
		u.URL, u.ShortCode, u.UserID, u.Password, createdAt(u), u.ExpiresAt,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert url: %w", mapError(err))
	}
	return nil
}

// InsertURLs сохраняет список ссылок в рамках транзакции.
func (r *URLRepository) InsertURLs(ctx context.Context, urls []*model.URL) error {
	tx, err := r.DB.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, u := range urls {
		err := tx.QueryRow(ctx, insertURLQuery,
			u.URL, u.ShortCode, u.UserID, u.Password, createdAt(u), u.ExpiresAt,
		).Scan(&u.ID, &u.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert batch URLs: %w", mapError(err))
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// FindByShortCode ищет ссылку по короткому коду.
func (r *URLRepository) FindByShortCode(ctx context.Context, code string) (*model.URL, error) {
	row := r.DB.Pool.QueryRow(ctx, `SELECT `+urlColumns+` FROM urls WHERE short_code = $1`, code)
	u, err := scanURL(row)
	if err != nil {
		return nil, fmt.Errorf("find url by code: %w", mapError(err))
	}
	return u, nil
}

// FindByID ищет ссылку по идентификатору.
func (r *URLRepository) FindByID(ctx context.Context, id int64) (*model.URL, error) {
	row := r.DB.Pool.QueryRow(ctx, `SELECT `+urlColumns+` FROM urls WHERE id = $1`, id)
	u, err := scanURL(row)
	if err != nil {
		return nil, fmt.Errorf("find url by id: %w", mapError(err))
	}
	return u, nil
}

// FindByUserID возвращает все ссылки пользователя.
func (r *URLRepository) FindByUserID(ctx context.Context, userID int64) ([]*model.URL, error) {
	rows, err := r.DB.Pool.Query(ctx, `SELECT `+urlColumns+` FROM urls WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query URLs by user: %w", err)
	}
	defer rows.Close()

	results := make([]*model.URL, 0)
	for rows.Next() {
		u, err := scanURL(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return results, nil
}

// UpdateClicksAndAccess увеличивает счётчик в одном UPDATE, без чтения.
func (r *URLRepository) UpdateClicksAndAccess(ctx context.Context, id int64, at time.Time) error {
	tag, err := r.DB.Pool.Exec(ctx,
		`UPDATE urls SET clicks = clicks + 1, last_accessed_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("update clicks: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// UpdatePartial меняет только присутствующие в патче поля.
func (r *URLRepository) UpdatePartial(ctx context.Context, id int64, patch model.URLPatch) (*model.URL, error) {
	query := `UPDATE urls SET
		expires_at = CASE WHEN $2 THEN $3 ELSE expires_at END,
		password   = CASE WHEN $4 THEN $5 ELSE password END
		WHERE id = $1
		RETURNING ` + urlColumns
	row := r.DB.Pool.QueryRow(ctx, query, id,
		patch.ExpiresAt.Set, patch.ExpiresAt.Ptr(),
		patch.Password.Set, patch.Password.Ptr(),
	)
	u, err := scanURL(row)
	if err != nil {
		return nil, fmt.Errorf("update url: %w", mapError(err))
	}
	return u, nil
}

// DeleteByShortCode удаляет ссылку.
func (r *URLRepository) DeleteByShortCode(ctx context.Context, code string) error {
	tag, err := r.DB.Pool.Exec(ctx, `DELETE FROM urls WHERE short_code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Ping проверяет доступность базы данных.
func (r *URLRepository) Ping(ctx context.Context) error {
	return r.DB.Ping(ctx)
}
