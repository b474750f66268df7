package models

import (
	"time"
)

// Booking status values. Transitions beyond "cancelled" are made by shop
// staff, not by this API's rider-facing endpoints.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// Contact method values for a booking request.
const (
	ContactMethodEmail = "email"
	ContactMethodPhone = "phone"
	ContactMethodBoth  = "both"
)

// Urgency levels for a booking request.
var UrgencyLevels = []string{"low", "normal", "high", "emergency"}

// ServiceTypeLabels maps service type keys to their display labels.
var ServiceTypeLabels = map[string]string{
	"oil_change":          "Oil Change",
	"tire_replacement":    "Tire Replacement",
	"brake_service":       "Brake Service",
	"chain_maintenance":   "Chain Maintenance",
	"engine_repair":       "Engine Repair",
	"electrical":          "Electrical Work",
	"bodywork":            "Bodywork/Paint",
	"general_maintenance": "General Maintenance",
	"inspection":          "Inspection",
	"custom_modification": "Custom Modification",
	"annual_service":      "Annual Service",
	"emergency_repair":    "Emergency Repair",
	"other":               "Other",
}

// UrgencyLabels maps urgency keys to their display labels.
var UrgencyLabels = map[string]string{
	"low":       "Low - Can wait a few weeks",
	"normal":    "Normal - Within a week",
	"high":      "High - Within a few days",
	"emergency": "Emergency - ASAP",
}

// StatusLabels maps booking status keys to their display labels.
var StatusLabels = map[string]string{
	BookingStatusPending:    "Pending Review",
	BookingStatusConfirmed:  "Confirmed",
	BookingStatusInProgress: "In Progress",
	BookingStatusCompleted:  "Completed",
	BookingStatusCancelled:  "Cancelled",
}

// BookingRequest is a rider's service booking. AdminNotes and the confirmed
// date/time are written by shop staff and read-only here.
type BookingRequest struct {
	ID              string    `json:"id" gorm:"primaryKey;size:191"`
	UserID          string    `json:"user_id" gorm:"not null;index;size:191"`
	MotorcycleID    string    `json:"motorcycle_id" gorm:"not null;index;size:191"`
	ServiceType     string    `json:"service_type" gorm:"not null;size:50"`
	Description     string    `json:"description" gorm:"not null;type:text"`
	PreferredDate   string    `json:"preferred_date" gorm:"not null;size:10"`
	PreferredTime   string    `json:"preferred_time" gorm:"not null;size:5"`
	ContactPhone    *string   `json:"contact_phone" gorm:"size:50"`
	ContactMethod   string    `json:"contact_method" gorm:"not null;size:10;default:'email'"`
	Urgency         string    `json:"urgency" gorm:"not null;size:10;default:'normal'"`
	EstimatedBudget *float64  `json:"estimated_budget"`
	Currency        string    `json:"currency" gorm:"size:3;default:'EUR'"`
	Status          string    `json:"status" gorm:"not null;size:20;default:'pending';index"`
	AdminNotes      *string   `json:"admin_notes" gorm:"type:text"`
	ConfirmedDate   *string   `json:"confirmed_date" gorm:"size:10"`
	ConfirmedTime   *string   `json:"confirmed_time" gorm:"size:5"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	User       User       `json:"-" gorm:"foreignKey:UserID"`
	Motorcycle Motorcycle `json:"-" gorm:"foreignKey:MotorcycleID"`
}

// BookingWithDetails joins a booking with the motorcycle it refers to, the
// shape the bookings list renders from.
type BookingWithDetails struct {
	BookingRequest
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"model,omitempty"`
	Year         int    `json:"year,omitempty"`
	LicensePlate string `json:"license_plate,omitempty"`
}

// IsValidServiceType reports whether t is a known service type key.
func IsValidServiceType(t string) bool {
	_, ok := ServiceTypeLabels[t]
	return ok
}

// IsValidUrgency reports whether u is a known urgency key.
func IsValidUrgency(u string) bool {
	for _, v := range UrgencyLevels {
		if v == u {
			return true
		}
	}
	return false
}

// IsValidContactMethod reports whether m is a known contact method.
func IsValidContactMethod(m string) bool {
	return m == ContactMethodEmail || m == ContactMethodPhone || m == ContactMethodBoth
}
