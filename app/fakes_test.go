package app

import (
	"errors"
	"fmt"

	"motogarage-api/models"
	"motogarage-api/repositories"
)

// fakeGateway serves canned directory data and a controllable session.
type fakeGateway struct {
	session *Session
	shops   []models.Shop

	citiesByCountry map[string][]string

	listCalls   []listCall
	cityCalls   []string
	statsCalls  int
	failListing bool
}

type listCall struct {
	filters models.ShopFilters
	page    int
}

func (g *fakeGateway) SignIn(email, password string) (*Session, error) {
	g.session = &Session{UserID: "user-1", Email: email}
	return g.session, nil
}

func (g *fakeGateway) SignUp(fullName, email, password string) (*Session, error) {
	return g.SignIn(email, password)
}

func (g *fakeGateway) SignOut() error {
	g.session = nil
	return nil
}

func (g *fakeGateway) Session() (*Session, error) {
	return g.session, nil
}

func (g *fakeGateway) ListShops(filters models.ShopFilters, page int) ([]models.Shop, error) {
	if g.failListing {
		return nil, errors.New("listing unavailable")
	}
	g.listCalls = append(g.listCalls, listCall{filters: filters, page: page})

	var matched []models.Shop
	for _, shop := range g.shops {
		if filters.Country != "" && shop.Country != filters.Country {
			continue
		}
		if filters.City != "" && shop.City != filters.City {
			continue
		}
		matched = append(matched, shop)
	}

	start := page * repositories.ShopPageSize
	if start >= len(matched) {
		return nil, nil
	}
	end := start + repositories.ShopPageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], nil
}

func (g *fakeGateway) ShopStats() (*models.ShopStats, error) {
	g.statsCalls++
	return &models.ShopStats{TotalShops: int64(len(g.shops)), TotalCountries: 2}, nil
}

func (g *fakeGateway) Countries() ([]string, error) {
	return []string{"France", "Germany"}, nil
}

func (g *fakeGateway) Cities(country string) ([]string, error) {
	g.cityCalls = append(g.cityCalls, country)
	return g.citiesByCountry[country], nil
}

// manualNotifier lets tests push auth events by hand.
type manualNotifier struct {
	subscribers map[int]func(AuthEvent)
	next        int
}

func newManualNotifier() *manualNotifier {
	return &manualNotifier{subscribers: make(map[int]func(AuthEvent))}
}

func (n *manualNotifier) Subscribe(fn func(AuthEvent)) func() {
	id := n.next
	n.next++
	n.subscribers[id] = fn
	return func() { delete(n.subscribers, id) }
}

func (n *manualNotifier) push(event AuthEvent) {
	for _, fn := range n.subscribers {
		fn(event)
	}
}

func makeShops(n int, country string) []models.Shop {
	shops := make([]models.Shop, 0, n)
	for i := 0; i < n; i++ {
		shops = append(shops, models.Shop{
			ID:      uint(i + 1),
			Name:    fmt.Sprintf("Shop %03d", i),
			Country: country,
			City:    "City",
		})
	}
	return shops
}
