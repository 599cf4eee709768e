package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

var allowedUploadTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

type MediaHandler struct {
	uploadDir string
	maxBytes  int64
}

func NewMediaHandler(uploadDir string, maxBytes int64) *MediaHandler {
	return &MediaHandler{uploadDir: uploadDir, maxBytes: maxBytes}
}

type UploadedFile struct {
	FieldName string `json:"fieldName"`
	FileName  string `json:"fileName"`
	Size      int64  `json:"size"`
}

type UploadResponse struct {
	Success bool           `json:"success"`
	Files   []UploadedFile `json:"files"`
}

func (h *MediaHandler) UploadSingle(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		http.Error(w, "File size limit exceeded", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	uploaded, err := h.store(file, header, "file")
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(UploadResponse{Success: true, Files: []UploadedFile{*uploaded}})
}

func (h *MediaHandler) UploadMultiple(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		http.Error(w, "File size limit exceeded", http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		http.Error(w, "Missing files", http.StatusBadRequest)
		return
	}
	if len(headers) > 10 {
		http.Error(w, "Too many files. Maximum is 10.", http.StatusBadRequest)
		return
	}

	uploaded := make([]UploadedFile, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			http.Error(w, "File upload error", http.StatusBadRequest)
			return
		}

		result, err := h.store(file, header, "files")
		file.Close()
		if err != nil {
			h.writeStoreError(w, err)
			return
		}
		uploaded = append(uploaded, *result)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(UploadResponse{Success: true, Files: uploaded})
}

var errInvalidFileType = fmt.Errorf("invalid file type. Only JPEG, PNG and PDF are allowed")

func (h *MediaHandler) store(file multipart.File, header *multipart.FileHeader, fieldName string) (*UploadedFile, error) {
	if !allowedUploadTypes[header.Header.Get("Content-Type")] {
		return nil, errInvalidFileType
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return nil, err
	}

	ext := filepath.Ext(header.Filename)
	name := fmt.Sprintf("%s-%d-%s%s", fieldName, time.Now().UnixMilli(), uuid.NewString(), ext)

	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		return nil, err
	}

	return &UploadedFile{FieldName: fieldName, FileName: name, Size: size}, nil
}

func (h *MediaHandler) writeStoreError(w http.ResponseWriter, err error) {
	if err == errInvalidFileType {
		http.Error(w, "Invalid file type. Only JPEG, PNG and PDF are allowed.", http.StatusBadRequest)
		return
	}
	log.Printf("ERROR [media.store]: %v", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
