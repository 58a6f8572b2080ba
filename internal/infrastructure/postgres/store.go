package postgres

import (
	"github.com/ledjassa/marketplace-service/internal/domain"
	"github.com/ledjassa/marketplace-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

// GormStore bundles the repositories over one *gorm.DB and provides the
// transactional boundary for the usecases.
type GormStore struct {
	db   *gorm.DB
	inTx bool
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Orders() domain.OrderRepository {
	return &repository.DefaultOrderRepository{DB: s.db, InTx: s.inTx}
}

func (s *GormStore) Products() domain.ProductRepository {
	return repository.NewDefaultProductRepository(s.db)
}

func (s *GormStore) Users() domain.UserRepository {
	return repository.NewDefaultUserRepository(s.db)
}

func (s *GormStore) Conversations() domain.ConversationRepository {
	return repository.NewDefaultConversationRepository(s.db)
}

func (s *GormStore) Ratings() domain.RatingRepository {
	return repository.NewDefaultRatingRepository(s.db)
}

// Atomically runs fn against a store bound to a single database
// transaction. An error from fn rolls back everything fn did. Nested calls
// reuse the surrounding transaction.
func (s *GormStore) Atomically(fn func(domain.Store) error) error {
	if s.inTx {
		return fn(s)
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx, inTx: true})
	})
}
