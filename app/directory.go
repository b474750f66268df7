package app

import (
	"motogarage-api/models"
	"motogarage-api/repositories"
)

// Directory drives the home screen: filter criteria, page cursor and the
// accumulated result list. Every filter change re-issues a fresh page-0
// query; load-more appends the next page under the same filter snapshot.
type Directory struct {
	gateway Gateway

	filters models.ShopFilters
	page    int

	shops     []models.Shop
	countries []string
	cities    []string
	stats     *models.ShopStats
	hasMore   bool
	lastError string
}

func NewDirectory(gateway Gateway) *Directory {
	return &Directory{gateway: gateway}
}

// Mount loads the header stats and the country list once, then the first
// page. Stats are not kept in sync with later filter changes.
func (d *Directory) Mount() {
	stats, err := d.gateway.ShopStats()
	if err == nil {
		d.stats = stats
	}

	countries, err := d.gateway.Countries()
	if err == nil {
		d.countries = countries
	}

	d.reload()
}

// SetSearch re-queries from page 0 with the new search text. There is no
// debounce: every keystroke that lands here issues a query.
func (d *Directory) SetSearch(search string) {
	d.filters.Search = search
	d.reload()
}

// SetCountry changes the country filter. The city filter resets and the
// available city list is re-derived for the new country.
func (d *Directory) SetCountry(country string) {
	d.filters.Country = country
	d.filters.City = ""
	d.cities = nil

	if country != "" {
		cities, err := d.gateway.Cities(country)
		if err == nil {
			d.cities = cities
		}
	}

	d.reload()
}

func (d *Directory) SetCity(city string) {
	d.filters.City = city
	d.reload()
}

func (d *Directory) SetMinRating(rating float64) {
	d.filters.MinRating = rating
	d.reload()
}

// LoadMore fetches the next page and appends it. A short page means the end
// of the result set.
func (d *Directory) LoadMore() {
	if !d.hasMore {
		return
	}

	next := d.page + 1
	shops, err := d.gateway.ListShops(d.filters, next)
	if err != nil {
		d.lastError = err.Error()
		return
	}

	d.shops = append(d.shops, shops...)
	d.page = next
	d.hasMore = len(shops) == repositories.ShopPageSize
	d.lastError = ""
}

func (d *Directory) reload() {
	shops, err := d.gateway.ListShops(d.filters, 0)
	if err != nil {
		d.lastError = err.Error()
		return
	}

	d.shops = shops
	d.page = 0
	d.hasMore = len(shops) == repositories.ShopPageSize
	d.lastError = ""
}

func (d *Directory) Shops() []models.Shop { return d.shops }

func (d *Directory) Filters() models.ShopFilters { return d.filters }

func (d *Directory) Countries() []string { return d.countries }

func (d *Directory) Cities() []string { return d.cities }

func (d *Directory) Stats() *models.ShopStats { return d.stats }

func (d *Directory) HasMore() bool { return d.hasMore }

func (d *Directory) LastError() string { return d.lastError }
