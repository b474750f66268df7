package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"motogarage-api/models"
)

// ErrStorageUnavailable is returned when the service runs without a
// configured object store.
var ErrStorageUnavailable = errors.New("object storage is not configured")

// ErrFileTooLarge is returned before any storage call when the file exceeds
// the upload ceiling.
var ErrFileTooLarge = errors.New("file size must be less than 10MB")

// DocumentUpload carries the file stream plus the metadata form for one
// upload. Optional metadata is pointer-typed: nil means absent.
type DocumentUpload struct {
	FileName    string
	FileSize    int64
	ContentType string
	File        io.Reader

	DocumentType    string
	Title           string
	Description     *string
	ServiceType     *string
	ServiceDate     *string
	ServiceMileage  *int
	ServiceProvider *string
	Cost            *float64
	Currency        string
	Tags            []string
}

// DocumentService sequences the two-step document commit: blob first, then
// metadata, with a compensating blob delete when the metadata insert fails.
type DocumentService struct {
	db    *gorm.DB
	store ObjectStore
}

func NewDocumentService(db *gorm.DB, store ObjectStore) *DocumentService {
	return &DocumentService{db: db, store: store}
}

// List returns the documents for one motorcycle, most recent service first
// with undated documents last.
func (s *DocumentService) List(motorcycleID string) ([]models.ServiceDocument, error) {
	var documents []models.ServiceDocument
	err := s.db.Where("motorcycle_id = ?", motorcycleID).
		Order("service_date IS NULL, service_date DESC").
		Order("created_at DESC").
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

// Upload stores the blob under a path namespaced by owner and motorcycle,
// then inserts the metadata row. A failed insert triggers a best-effort
// compensating delete so no orphaned blob survives the pair.
func (s *DocumentService) Upload(ctx context.Context, userID, motorcycleID string, upload DocumentUpload) (*models.ServiceDocument, error) {
	if s.store == nil {
		return nil, ErrStorageUnavailable
	}
	if upload.FileSize > models.MaxDocumentFileSize {
		return nil, ErrFileTooLarge
	}

	filePath := StoredObjectPath(userID, motorcycleID, upload.FileName)

	if err := s.store.Upload(ctx, filePath, upload.File, upload.FileSize, upload.ContentType); err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	currency := upload.Currency
	if currency == "" {
		currency = "EUR"
	}

	document := models.ServiceDocument{
		ID:              uuid.New().String(),
		UserID:          userID,
		MotorcycleID:    motorcycleID,
		DocumentType:    upload.DocumentType,
		Title:           upload.Title,
		Description:     upload.Description,
		ServiceType:     upload.ServiceType,
		ServiceDate:     upload.ServiceDate,
		ServiceMileage:  upload.ServiceMileage,
		ServiceProvider: upload.ServiceProvider,
		Cost:            upload.Cost,
		Currency:        currency,
		FilePath:        filePath,
		FileName:        upload.FileName,
		FileSize:        upload.FileSize,
		FileType:        upload.ContentType,
		Tags:            upload.Tags,
	}

	if err := s.db.Create(&document).Error; err != nil {
		// Compensating delete. Its own failure is only logged; there is no
		// durable intent record to reconcile from later.
		if removeErr := s.store.Remove(ctx, filePath); removeErr != nil {
			log.Printf("Warning: failed to remove orphaned file %s: %v", filePath, removeErr)
		}
		return nil, fmt.Errorf("failed to save document metadata: %w", err)
	}

	return &document, nil
}

// Download opens the stored blob for one owned document.
func (s *DocumentService) Download(ctx context.Context, userID, documentID string) (*models.ServiceDocument, io.ReadCloser, error) {
	if s.store == nil {
		return nil, nil, ErrStorageUnavailable
	}

	var document models.ServiceDocument
	if err := s.db.First(&document, "id = ? AND user_id = ?", documentID, userID).Error; err != nil {
		return nil, nil, err
	}

	reader, err := s.store.Download(ctx, document.FilePath)
	if err != nil {
		return nil, nil, err
	}
	return &document, reader, nil
}

// Delete removes the blob, then the metadata row. A failed blob removal
// aborts the delete so the row keeps pointing at a live object.
func (s *DocumentService) Delete(ctx context.Context, userID, documentID string) error {
	if s.store == nil {
		return ErrStorageUnavailable
	}

	var document models.ServiceDocument
	if err := s.db.First(&document, "id = ? AND user_id = ?", documentID, userID).Error; err != nil {
		return err
	}

	if err := s.store.Remove(ctx, document.FilePath); err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	return s.db.Delete(&document).Error
}

// SetFavorite flips the favorite flag on one owned document.
func (s *DocumentService) SetFavorite(userID, documentID string, favorite bool) error {
	result := s.db.Model(&models.ServiceDocument{}).
		Where("id = ? AND user_id = ?", documentID, userID).
		Update("is_favorite", favorite)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
