package repositories

import (
	"github.com/Totarae/shortlink/internal/database"
	"github.com/Totarae/shortlink/internal/storage"
)

// Postgres собирает репозитории поверх одного пула в storage.Store.
type Postgres struct {
	*URLRepository
	*UserRepository
	*RequestLogRepository
	db *database.DB
}

var _ storage.Store = (*Postgres)(nil)

func NewPostgres(db *database.DB) *Postgres {
	return &Postgres{
		URLRepository:        NewURLRepository(db),
		UserRepository:       NewUserRepository(db),
		RequestLogRepository: NewRequestLogRepository(db),
		db:                   db,
	}
}

// Close закрывает пул.
func (p *Postgres) Close() {
	p.db.Close()
}
