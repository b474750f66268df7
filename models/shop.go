package models

// Shop is a directory listing for a motorcycle repair shop. Rows are loaded
// by an external ingestion job and are read-only for this API.
type Shop struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Name         string   `json:"name" gorm:"not null;size:255;index"`
	Country      string   `json:"country" gorm:"not null;size:100;index"`
	City         string   `json:"city" gorm:"not null;size:100;index"`
	Address      *string  `json:"address" gorm:"size:500"`
	Phone        *string  `json:"phone" gorm:"size:50"`
	Website      *string  `json:"website" gorm:"size:500"`
	Hours        *string  `json:"hours" gorm:"size:500"`
	Rating       *float64 `json:"rating"`
	ReviewsCount *int     `json:"reviews_count"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	PlaceID      *string  `json:"place_id" gorm:"size:255"`
}

// ShopFilters carries directory filter criteria. Zero values mean "no filter".
type ShopFilters struct {
	Search    string  `json:"search" form:"search"`
	Country   string  `json:"country" form:"country"`
	City      string  `json:"city" form:"city"`
	MinRating float64 `json:"min_rating" form:"min_rating"`
}

// ShopStats is the directory header summary, fetched once at mount and not
// kept in sync with filter changes.
type ShopStats struct {
	TotalShops     int64 `json:"total_shops"`
	TotalCountries int   `json:"total_countries"`
}
