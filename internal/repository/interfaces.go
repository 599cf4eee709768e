package repository

import (
	"context"
	"time"

	"github.com/devprince/ecommerce-api/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteUnverifiedCreatedBefore removes accounts that never completed
	// verification and are older than the cutoff. Returns the number of
	// rows removed.
	DeleteUnverifiedCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetAll(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *domain.Subcategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Subcategory, error)
	GetAll(ctx context.Context) ([]*domain.Subcategory, error)
	Update(ctx context.Context, subcategory *domain.Subcategory) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	GetAll(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	User        UserRepository
	Category    CategoryRepository
	Subcategory SubcategoryRepository
	Product     ProductRepository
}
