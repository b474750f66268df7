package models

import (
	"time"
)

// MaxDocumentFileSize is the upload ceiling checked before any storage call.
const MaxDocumentFileSize = 10 * 1024 * 1024 // 10MB

// DocumentTypeLabels maps document type keys to their display labels.
var DocumentTypeLabels = map[string]string{
	"photo":    "Photo",
	"invoice":  "Invoice",
	"receipt":  "Receipt",
	"report":   "Service Report",
	"warranty": "Warranty",
	"other":    "Other",
}

// DocumentServiceTypeLabels maps the service type keys a document may be
// tagged with. Documents do not use the booking-only types.
var DocumentServiceTypeLabels = map[string]string{
	"oil_change":          "Oil Change",
	"tire_replacement":    "Tire Replacement",
	"brake_service":       "Brake Service",
	"chain_maintenance":   "Chain Maintenance",
	"engine_repair":       "Engine Repair",
	"electrical":          "Electrical",
	"bodywork":            "Bodywork",
	"general_maintenance": "General Maintenance",
	"inspection":          "Inspection",
	"custom_modification": "Custom Modification",
	"other":               "Other",
}

// ServiceDocument is an uploaded file plus its metadata. FilePath references
// the blob in object storage; the row and the blob are created as a pair.
type ServiceDocument struct {
	ID              string          `json:"id" gorm:"primaryKey;size:191"`
	UserID          string          `json:"user_id" gorm:"not null;index;size:191"`
	MotorcycleID    string          `json:"motorcycle_id" gorm:"not null;index;size:191"`
	DocumentType    string          `json:"document_type" gorm:"not null;size:20"`
	Title           string          `json:"title" gorm:"not null;size:255"`
	Description     *string         `json:"description" gorm:"type:text"`
	ServiceType     *string         `json:"service_type" gorm:"size:50"`
	ServiceDate     *string         `json:"service_date" gorm:"size:10"`
	ServiceMileage  *int            `json:"service_mileage"`
	ServiceProvider *string         `json:"service_provider" gorm:"size:255"`
	Cost            *float64        `json:"cost"`
	Currency        string          `json:"currency" gorm:"size:3;default:'EUR'"`
	FilePath        string          `json:"file_path" gorm:"not null;size:500"`
	FileName        string          `json:"file_name" gorm:"not null;size:255"`
	FileSize        int64           `json:"file_size"`
	FileType        string          `json:"file_type" gorm:"size:100"`
	Tags            StringSliceType `json:"tags" gorm:"type:json"`
	IsFavorite      bool            `json:"is_favorite" gorm:"default:false"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	User       User       `json:"-" gorm:"foreignKey:UserID"`
	Motorcycle Motorcycle `json:"-" gorm:"foreignKey:MotorcycleID"`
}

// IsValidDocumentType reports whether t is a known document type key.
func IsValidDocumentType(t string) bool {
	_, ok := DocumentTypeLabels[t]
	return ok
}
