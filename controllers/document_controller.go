package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"motogarage-api/models"
	"motogarage-api/services"
	"motogarage-api/utils"
)

type DocumentController struct {
	db              *gorm.DB
	documentService *services.DocumentService
}

func NewDocumentController(db *gorm.DB, documentService *services.DocumentService) *DocumentController {
	return &DocumentController{db: db, documentService: documentService}
}

// ownedMotorcycle loads the motorcycle when it belongs to the requesting
// rider, writing the error response otherwise.
func (dc *DocumentController) ownedMotorcycle(c *gin.Context) (*models.Motorcycle, bool) {
	userID := c.GetString("user_id")
	motorcycleID := c.Param("id")

	var motorcycle models.Motorcycle
	if err := dc.db.First(&motorcycle, "id = ? AND user_id = ?", motorcycleID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Motorcycle not found or access denied"})
		return nil, false
	}
	return &motorcycle, true
}

func (dc *DocumentController) GetDocuments(c *gin.Context) {
	motorcycle, ok := dc.ownedMotorcycle(c)
	if !ok {
		return
	}

	documents, err := dc.documentService.List(motorcycle.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, documents)
}

// UploadDocument accepts a multipart form: the file plus the metadata fields.
func (dc *DocumentController) UploadDocument(c *gin.Context) {
	userID := c.GetString("user_id")

	motorcycle, ok := dc.ownedMotorcycle(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a file to upload"})
		return
	}

	if fileHeader.Size > models.MaxDocumentFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size must be less than 10MB"})
		return
	}

	fields := utils.Validate(utils.DocumentRules(), utils.FieldValues{
		"title":           c.PostForm("title"),
		"document_type":   c.PostForm("document_type"),
		"service_mileage": c.PostForm("service_mileage"),
		"cost":            c.PostForm("cost"),
	})
	if len(fields) > 0 {
		utils.SendFieldErrors(c, fields)
		return
	}

	if !models.IsValidDocumentType(c.PostForm("document_type")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown document type"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	upload := services.DocumentUpload{
		FileName:        fileHeader.Filename,
		FileSize:        fileHeader.Size,
		ContentType:     fileHeader.Header.Get("Content-Type"),
		File:            file,
		DocumentType:    c.PostForm("document_type"),
		Title:           strings.TrimSpace(c.PostForm("title")),
		Description:     optionalString(c.PostForm("description")),
		ServiceType:     optionalString(c.PostForm("service_type")),
		ServiceDate:     optionalString(c.PostForm("service_date")),
		ServiceProvider: optionalString(c.PostForm("service_provider")),
		Currency:        c.PostForm("currency"),
		Tags:            parseTags(c.PostForm("tags")),
	}

	if v := c.PostForm("service_mileage"); v != "" {
		mileage, _ := strconv.Atoi(v)
		upload.ServiceMileage = &mileage
	}
	if v := c.PostForm("cost"); v != "" {
		cost, _ := strconv.ParseFloat(v, 64)
		upload.Cost = &cost
	}

	document, err := dc.documentService.Upload(c.Request.Context(), userID, motorcycle.ID, upload)
	if err != nil {
		if errors.Is(err, services.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Document storage is unavailable"})
			return
		}
		if errors.Is(err, services.ErrFileTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "File size must be less than 10MB"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload document"})
		return
	}

	c.JSON(http.StatusCreated, document)
}

func (dc *DocumentController) DownloadDocument(c *gin.Context) {
	userID := c.GetString("user_id")
	documentID := c.Param("docID")

	document, reader, err := dc.documentService.Download(c.Request.Context(), userID, documentID)
	if err != nil {
		if errors.Is(err, services.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Document storage is unavailable"})
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found or access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to download document"})
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+document.FileName+`"`)
	contentType := document.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, document.FileSize, contentType, reader, nil)
}

type FavoriteRequest struct {
	IsFavorite bool `json:"is_favorite"`
}

func (dc *DocumentController) SetFavorite(c *gin.Context) {
	userID := c.GetString("user_id")
	documentID := c.Param("docID")

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := dc.documentService.SetFavorite(userID, documentID, req.IsFavorite); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found or access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document updated successfully"})
}

func (dc *DocumentController) DeleteDocument(c *gin.Context) {
	userID := c.GetString("user_id")
	documentID := c.Param("docID")

	err := dc.documentService.Delete(c.Request.Context(), userID, documentID)
	if err != nil {
		if errors.Is(err, services.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Document storage is unavailable"})
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found or access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

func parseTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
