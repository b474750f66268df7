package models

import (
	"time"
)

// Mileage units accepted for a motorcycle record.
const (
	MileageUnitKm    = "km"
	MileageUnitMiles = "miles"
)

// Condition values accepted for a motorcycle record.
var MotorcycleConditions = []string{"excellent", "good", "fair", "poor"}

// MotorcycleBrands is the brand list offered to riders. "Other" is a valid
// catch-all.
var MotorcycleBrands = []string{
	"Aprilia",
	"BMW",
	"Benelli",
	"Ducati",
	"Harley-Davidson",
	"Honda",
	"Husqvarna",
	"Indian",
	"Kawasaki",
	"KTM",
	"Moto Guzzi",
	"MV Agusta",
	"Royal Enfield",
	"Suzuki",
	"Triumph",
	"Yamaha",
	"Other",
}

// Motorcycle is a rider-owned garage entry. Optional fields are pointers so
// absent stays distinct from zero.
type Motorcycle struct {
	ID           string     `json:"id" gorm:"primaryKey;size:191"`
	UserID       string     `json:"user_id" gorm:"not null;index;size:191"`
	Brand        string     `json:"brand" gorm:"not null;size:100"`
	Model        string     `json:"model" gorm:"not null;size:100"`
	Year         int        `json:"year" gorm:"not null"`
	Mileage      *int       `json:"mileage"`
	MileageUnit  string     `json:"mileage_unit" gorm:"size:10;default:'km'"`
	EngineSize   *int       `json:"engine_size"`
	Color        *string    `json:"color" gorm:"size:100"`
	LicensePlate *string    `json:"license_plate" gorm:"size:50"`
	VIN          *string    `json:"vin" gorm:"size:50"`
	PurchaseDate *string    `json:"purchase_date" gorm:"size:10"`
	CurrentOwner bool       `json:"current_owner" gorm:"default:true"`
	Condition    *string    `json:"condition" gorm:"size:20"`
	Notes        *string    `json:"notes" gorm:"type:text"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// IsValidCondition reports whether c is one of the accepted condition values.
func IsValidCondition(c string) bool {
	for _, v := range MotorcycleConditions {
		if v == c {
			return true
		}
	}
	return false
}
