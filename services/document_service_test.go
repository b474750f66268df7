package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"motogarage-api/models"
)

// fakeStore is an in-memory ObjectStore with failure injection.
type fakeStore struct {
	objects map[string][]byte

	removed    []string
	failUpload bool
	failRemove bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string][]byte)}
}

func (s *fakeStore) Upload(_ context.Context, objectPath string, reader io.Reader, _ int64, _ string) error {
	if s.failUpload {
		return errors.New("upload failed")
	}
	if _, exists := s.objects[objectPath]; exists {
		return ErrObjectExists
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[objectPath] = data
	return nil
}

func (s *fakeStore) Download(_ context.Context, objectPath string) (io.ReadCloser, error) {
	data, ok := s.objects[objectPath]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStore) Remove(_ context.Context, objectPath string) error {
	s.removed = append(s.removed, objectPath)
	if s.failRemove {
		return errors.New("remove failed")
	}
	delete(s.objects, objectPath)
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Motorcycle{}, &models.ServiceDocument{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func testUpload(content string) DocumentUpload {
	return DocumentUpload{
		FileName:     "invoice.pdf",
		FileSize:     int64(len(content)),
		ContentType:  "application/pdf",
		File:         strings.NewReader(content),
		DocumentType: "invoice",
		Title:        "Annual service invoice",
	}
}

func TestUploadStoresBlobAndMetadata(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	service := NewDocumentService(db, store)

	document, err := service.Upload(context.Background(), "user-1", "moto-1", testUpload("pdf-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(document.FilePath, "user-1/moto-1/") {
		t.Errorf("path must be namespaced by owner and motorcycle, got %q", document.FilePath)
	}
	if !strings.HasSuffix(document.FilePath, ".pdf") {
		t.Errorf("stored name must keep the original extension, got %q", document.FilePath)
	}
	if _, ok := store.objects[document.FilePath]; !ok {
		t.Error("blob missing from store")
	}

	var count int64
	db.Model(&models.ServiceDocument{}).Count(&count)
	if count != 1 {
		t.Errorf("expected one metadata row, got %d", count)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	service := NewDocumentService(db, store)

	upload := testUpload("x")
	upload.FileSize = models.MaxDocumentFileSize + 1

	_, err := service.Upload(context.Background(), "user-1", "moto-1", upload)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
	if len(store.objects) != 0 {
		t.Error("no blob may be written for an oversized file")
	}

	// Exactly at the limit is allowed.
	upload = testUpload("x")
	upload.FileSize = models.MaxDocumentFileSize
	upload.File = strings.NewReader("x")
	if _, err := service.Upload(context.Background(), "user-1", "moto-1", upload); err != nil {
		t.Fatalf("limit-sized file should pass the gate: %v", err)
	}
}

func TestUploadCompensatesFailedInsert(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	service := NewDocumentService(db, store)

	// Drop the metadata table so the insert fails after the blob lands.
	if err := db.Migrator().DropTable(&models.ServiceDocument{}); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}

	_, err := service.Upload(context.Background(), "user-1", "moto-1", testUpload("pdf-bytes"))
	if err == nil {
		t.Fatal("expected metadata insert failure")
	}

	if len(store.removed) != 1 {
		t.Fatalf("expected one compensating delete, got %d", len(store.removed))
	}
	if len(store.objects) != 0 {
		t.Error("orphaned blob survived the compensating delete")
	}
}

func TestUploadCompensationFailureIsSwallowed(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	store.failRemove = true
	service := NewDocumentService(db, store)

	if err := db.Migrator().DropTable(&models.ServiceDocument{}); err != nil {
		t.Fatalf("failed to drop table: %v", err)
	}

	_, err := service.Upload(context.Background(), "user-1", "moto-1", testUpload("pdf-bytes"))
	if err == nil {
		t.Fatal("expected metadata insert failure")
	}
	// The surfaced error is the insert failure, not the compensation one.
	if strings.Contains(err.Error(), "remove failed") {
		t.Errorf("compensation failure must not replace the insert error: %v", err)
	}
}

func TestDeleteRemovesBlobThenRow(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	service := NewDocumentService(db, store)

	document, err := service.Upload(context.Background(), "user-1", "moto-1", testUpload("pdf-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.Delete(context.Background(), "user-1", document.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.objects) != 0 {
		t.Error("blob must be removed")
	}
	var count int64
	db.Model(&models.ServiceDocument{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no metadata rows, got %d", count)
	}
}

func TestDeleteAbortsWhenBlobRemovalFails(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	service := NewDocumentService(db, store)

	document, err := service.Upload(context.Background(), "user-1", "moto-1", testUpload("pdf-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.failRemove = true
	if err := service.Delete(context.Background(), "user-1", document.ID); err == nil {
		t.Fatal("expected delete to fail")
	}

	// Metadata stays so the row keeps pointing at the live object.
	var count int64
	db.Model(&models.ServiceDocument{}).Count(&count)
	if count != 1 {
		t.Errorf("metadata row must survive a failed blob removal, got %d rows", count)
	}
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	service := NewDocumentService(db, store)

	document, err := service.Upload(context.Background(), "user-1", "moto-1", testUpload("pdf-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.Delete(context.Background(), "intruder", document.ID); err == nil {
		t.Fatal("expected not-found for foreign document")
	}
	if len(store.objects) != 1 {
		t.Error("blob must survive a foreign delete attempt")
	}
}

func TestDownloadReturnsStoredContent(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	service := NewDocumentService(db, store)

	document, err := service.Upload(context.Background(), "user-1", "moto-1", testUpload("pdf-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, reader, err := service.Download(context.Background(), "user-1", document.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer reader.Close()

	data, _ := io.ReadAll(reader)
	if string(data) != "pdf-bytes" {
		t.Errorf("unexpected content: %q", data)
	}
	if got.FileName != "invoice.pdf" {
		t.Errorf("unexpected file name: %q", got.FileName)
	}
}

func TestStorageUnavailable(t *testing.T) {
	db := setupTestDB(t)
	service := NewDocumentService(db, nil)

	_, err := service.Upload(context.Background(), "user-1", "moto-1", testUpload("x"))
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestSetFavorite(t *testing.T) {
	db := setupTestDB(t)
	store := newFakeStore()
	service := NewDocumentService(db, store)

	document, err := service.Upload(context.Background(), "user-1", "moto-1", testUpload("pdf-bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.SetFavorite("user-1", document.ID, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var reloaded models.ServiceDocument
	db.First(&reloaded, "id = ?", document.ID)
	if !reloaded.IsFavorite {
		t.Error("favorite flag not persisted")
	}

	if err := service.SetFavorite("intruder", document.ID, false); err == nil {
		t.Error("expected not-found for foreign document")
	}
}
