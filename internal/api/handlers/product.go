package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/devprince/ecommerce-api/internal/domain"
	"github.com/devprince/ecommerce-api/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProductHandler struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductHandler(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductHandler {
	return &ProductHandler{productRepo: productRepo, categoryRepo: categoryRepo}
}

type ProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         *float64        `json:"price"`
	StockQuantity *int            `json:"stockQuantity"`
	SKU           string          `json:"sku"`
	IsActive      *bool           `json:"isActive"`
	CategoryID    string          `json:"categoryId"`
	Attributes    json.RawMessage `json:"attributes"`
}

func (h *ProductHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		http.Error(w, "Invalid category id", http.StatusBadRequest)
		return
	}

	var price float64
	if req.Price != nil {
		price = *req.Price
	}
	var stock int
	if req.StockQuantity != nil {
		stock = *req.StockQuantity
	}

	if err := domain.ValidateProduct(req.Name, req.SKU, price, stock, categoryID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.categoryRepo.GetByID(r.Context(), categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Category not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [product.Add] categoryID=%s: %v", categoryID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	product := &domain.Product{
		ID:            uuid.New(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         price,
		StockQuantity: stock,
		SKU:           req.SKU,
		IsActive:      true,
		CategoryID:    categoryID,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if len(req.Attributes) > 0 {
		product.Attributes = datatypes.JSON(req.Attributes)
	}

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		if isDuplicateError(err) {
			http.Error(w, "Product already exists", http.StatusConflict)
			return
		}
		log.Printf("ERROR [product.Add]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(product)
}

func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ERROR [product.GetAll]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [product.Get] id=%s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Product not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [product.Update] id=%s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.SKU != "" {
		product.SKU = req.SKU
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			http.Error(w, "Invalid category id", http.StatusBadRequest)
			return
		}
		product.CategoryID = categoryID
	}
	if len(req.Attributes) > 0 {
		product.Attributes = datatypes.JSON(req.Attributes)
	}

	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Printf("ERROR [product.Update] id=%s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

func (h *ProductHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req removeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	if err := h.productRepo.Delete(r.Context(), id); err != nil {
		log.Printf("ERROR [product.Remove] id=%s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Product deleted successfully!",
	})
}
