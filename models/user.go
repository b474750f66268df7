package models

import (
	"time"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	FullName  string    `json:"full_name" gorm:"not null;size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password  string    `json:"-" gorm:"not null;size:255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Motorcycles []Motorcycle     `json:"motorcycles,omitempty" gorm:"foreignKey:UserID"`
	Bookings    []BookingRequest `json:"bookings,omitempty" gorm:"foreignKey:UserID"`
}
