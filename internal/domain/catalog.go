package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Category struct {
	ID            uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string        `json:"name" gorm:"uniqueIndex;not null"`
	Slug          string        `json:"slug" gorm:"uniqueIndex;not null"`
	Description   string        `json:"description"`
	IsActive      bool          `json:"isActive" gorm:"not null;default:true"`
	ImageURL      string        `json:"imageUrl"`
	Subcategories []Subcategory `json:"subcategories,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type Subcategory struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive" gorm:"not null;default:true"`
	ImageURL    string    `json:"imageUrl"`
	CategoryID  uuid.UUID `json:"categoryId" gorm:"type:uuid;not null"`
	Category    *Category `json:"category,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Product struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string         `json:"name" gorm:"uniqueIndex;not null"`
	Description   string         `json:"description" gorm:"type:text"`
	Price         float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	StockQuantity int            `json:"stockQuantity" gorm:"not null"`
	SKU           string         `json:"sku" gorm:"not null"`
	IsActive      bool           `json:"isActive" gorm:"not null;default:true"`
	CategoryID    uuid.UUID      `json:"categoryId" gorm:"type:uuid;not null"`
	Category      *Category      `json:"category,omitempty"`
	Attributes    datatypes.JSON `json:"attributes,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func ValidateCategory(name, slug string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: category name must not be empty", ErrValidation)
	}
	if strings.TrimSpace(slug) == "" {
		return fmt.Errorf("%w: category slug must not be empty", ErrValidation)
	}
	return nil
}

func ValidateSubcategory(name, slug string, categoryID uuid.UUID) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: subcategory name must not be empty", ErrValidation)
	}
	if strings.TrimSpace(slug) == "" {
		return fmt.Errorf("%w: subcategory slug must not be empty", ErrValidation)
	}
	if categoryID == uuid.Nil {
		return fmt.Errorf("%w: subcategory requires a category", ErrValidation)
	}
	return nil
}

func ValidateProduct(name, sku string, price float64, stock int, categoryID uuid.UUID) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: product name must not be empty", ErrValidation)
	}
	if strings.TrimSpace(sku) == "" {
		return fmt.Errorf("%w: product sku must not be empty", ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: product price must not be negative", ErrValidation)
	}
	if stock < 0 {
		return fmt.Errorf("%w: stock quantity must not be negative", ErrValidation)
	}
	if categoryID == uuid.Nil {
		return fmt.Errorf("%w: product requires a category", ErrValidation)
	}
	return nil
}
