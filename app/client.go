package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"motogarage-api/models"
)

// Client is the HTTP Gateway implementation a frontend uses against the API.
// It also emits session events, so it doubles as the AuthNotifier the router
// mounts.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu      sync.Mutex
	token   string
	session *Session

	subMu       sync.Mutex
	subscribers map[int]func(AuthEvent)
	nextSub     int
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:     baseURL,
		httpClient:  http.DefaultClient,
		subscribers: make(map[int]func(AuthEvent)),
	}
}

type authPayload struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (c *Client) SignIn(email, password string) (*Session, error) {
	var payload authPayload
	err := c.request(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return c.establishSession(payload), nil
}

func (c *Client) SignUp(fullName, email, password string) (*Session, error) {
	var payload authPayload
	err := c.request(http.MethodPost, "/api/v1/auth/register", map[string]string{
		"full_name":        fullName,
		"email":            email,
		"password":         password,
		"confirm_password": password,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return c.establishSession(payload), nil
}

func (c *Client) SignOut() error {
	err := c.request(http.MethodPost, "/api/v1/auth/logout", nil, nil)

	c.mu.Lock()
	c.token = ""
	c.session = nil
	c.mu.Unlock()

	c.notify(SignedOut)
	return err
}

func (c *Client) Session() (*Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session, nil
}

// Subscribe implements AuthNotifier.
func (c *Client) Subscribe(fn func(AuthEvent)) func() {
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subscribers[id] = fn
	c.subMu.Unlock()

	return func() {
		c.subMu.Lock()
		delete(c.subscribers, id)
		c.subMu.Unlock()
	}
}

func (c *Client) ListShops(filters models.ShopFilters, page int) ([]models.Shop, error) {
	params := url.Values{}
	if filters.Search != "" {
		params.Set("search", filters.Search)
	}
	if filters.Country != "" {
		params.Set("country", filters.Country)
	}
	if filters.City != "" {
		params.Set("city", filters.City)
	}
	if filters.MinRating > 0 {
		params.Set("min_rating", strconv.FormatFloat(filters.MinRating, 'f', -1, 64))
	}
	params.Set("page", strconv.Itoa(page))

	var payload struct {
		Data []models.Shop `json:"data"`
	}
	if err := c.request(http.MethodGet, "/api/v1/shops/?"+params.Encode(), nil, &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

func (c *Client) ShopStats() (*models.ShopStats, error) {
	var stats models.ShopStats
	if err := c.request(http.MethodGet, "/api/v1/shops/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) Countries() ([]string, error) {
	var payload struct {
		Countries []string `json:"countries"`
	}
	if err := c.request(http.MethodGet, "/api/v1/shops/countries", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Countries, nil
}

func (c *Client) Cities(country string) ([]string, error) {
	var payload struct {
		Cities []string `json:"cities"`
	}
	path := "/api/v1/shops/cities?country=" + url.QueryEscape(country)
	if err := c.request(http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Cities, nil
}

func (c *Client) establishSession(payload authPayload) *Session {
	session := &Session{UserID: payload.User.ID, Email: payload.User.Email}

	c.mu.Lock()
	c.token = payload.Token
	c.session = session
	c.mu.Unlock()

	c.notify(SignedIn)
	return session
}

func (c *Client) notify(event AuthEvent) {
	c.subMu.Lock()
	subscribers := make([]func(AuthEvent), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subscribers = append(subscribers, fn)
	}
	c.subMu.Unlock()

	for _, fn := range subscribers {
		fn(event)
	}
}

// request issues one call and decodes the response. Backend error messages
// come back verbatim.
func (c *Client) request(method, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil && payload.Error != "" {
			return errors.New(payload.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
