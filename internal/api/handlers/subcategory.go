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
	"gorm.io/gorm"
)

type SubcategoryHandler struct {
	subcategoryRepo repository.SubcategoryRepository
	categoryRepo    repository.CategoryRepository
}

func NewSubcategoryHandler(subcategoryRepo repository.SubcategoryRepository, categoryRepo repository.CategoryRepository) *SubcategoryHandler {
	return &SubcategoryHandler{subcategoryRepo: subcategoryRepo, categoryRepo: categoryRepo}
}

type SubcategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
	ImageURL    string `json:"imageUrl"`
	CategoryID  string `json:"categoryId"`
}

func (h *SubcategoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req SubcategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		http.Error(w, "Invalid category id", http.StatusBadRequest)
		return
	}

	if err := domain.ValidateSubcategory(req.Name, req.Slug, categoryID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.categoryRepo.GetByID(r.Context(), categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Category not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [subcategory.Add] categoryID=%s: %v", categoryID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	subcategory := &domain.Subcategory{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		IsActive:    true,
		ImageURL:    req.ImageURL,
		CategoryID:  categoryID,
	}
	if req.IsActive != nil {
		subcategory.IsActive = *req.IsActive
	}

	if err := h.subcategoryRepo.Create(r.Context(), subcategory); err != nil {
		if isDuplicateError(err) {
			http.Error(w, "Subcategory already exists", http.StatusConflict)
			return
		}
		log.Printf("ERROR [subcategory.Add]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(subcategory)
}

func (h *SubcategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	subcategories, err := h.subcategoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ERROR [subcategory.GetAll]: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(subcategories)
}

func (h *SubcategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid subcategory id", http.StatusBadRequest)
		return
	}

	subcategory, err := h.subcategoryRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Subcategory not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [subcategory.Get] id=%s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(subcategory)
}

func (h *SubcategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid subcategory id", http.StatusBadRequest)
		return
	}

	var req SubcategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	subcategory, err := h.subcategoryRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "Subcategory not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [subcategory.Update] id=%s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if req.Name != "" {
		subcategory.Name = req.Name
	}
	if req.Slug != "" {
		subcategory.Slug = req.Slug
	}
	if req.Description != "" {
		subcategory.Description = req.Description
	}
	if req.ImageURL != "" {
		subcategory.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		subcategory.IsActive = *req.IsActive
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			http.Error(w, "Invalid category id", http.StatusBadRequest)
			return
		}
		subcategory.CategoryID = categoryID
	}

	if err := h.subcategoryRepo.Update(r.Context(), subcategory); err != nil {
		log.Printf("ERROR [subcategory.Update] id=%s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(subcategory)
}

func (h *SubcategoryHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req removeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		http.Error(w, "Invalid subcategory id", http.StatusBadRequest)
		return
	}

	if err := h.subcategoryRepo.Delete(r.Context(), id); err != nil {
		log.Printf("ERROR [subcategory.Remove] id=%s: %v", id, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Subcategory deleted successfully!",
	})
}
