package repositories

import (
	"context"
	"fmt"

	"github.com/Totarae/shortlink/internal/database"
	"github.com/Totarae/shortlink/internal/model"
)

// RequestLogRepository пишет журнал запросов в таблицу request_logs.
type RequestLogRepository struct {
	DB *database.DB
}

func NewRequestLogRepository(db *database.DB) *RequestLogRepository {
	return &RequestLogRepository{DB: db}
}

func (r *RequestLogRepository) AppendRequestLog(ctx context.Context, e model.RequestLog) error {
	_, err := r.DB.Pool.Exec(ctx,
		`INSERT INTO request_logs (method, url, user_agent, ip, timestamp) VALUES ($1, $2, $3, $4, $5)`,
		e.Method, e.URL, e.UserAgent, e.IP, e.Timestamp)
	if err != nil {
		return fmt.Errorf("append request log: %w", err)
	}
	return nil
}
