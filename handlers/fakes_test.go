package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"scripvault/models"
	"scripvault/repository"
)

const testSecret = "test-secret"

// fakeStore holds in-memory state shared by the fake repositories the
// same way the real tables share a database. Thin per-interface
// adapters below expose it through the repository interfaces.
type fakeStore struct {
	mu     sync.Mutex
	nextID uint

	users       map[uint]models.User
	stocks      map[uint]models.Stock
	investments map[uint]models.Investment
	portfolios  map[uint][]uint // user id -> investment ids
	watchlists  map[uint][]uint // user id -> stock ids
	queries     []models.Query
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       make(map[uint]models.User),
		stocks:      make(map[uint]models.Stock),
		investments: make(map[uint]models.Investment),
		portfolios:  make(map[uint][]uint),
		watchlists:  make(map[uint][]uint),
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) refreshSummariesLocked(userID uint) {
	u, ok := s.users[userID]
	if !ok {
		return
	}
	u.TotalInvested = 0
	u.NetWorth = 0
	for _, inv := range s.investments {
		if inv.UserID == userID {
			u.TotalInvested += inv.InvestedValue
			u.NetWorth += inv.MarketValue
		}
	}
	s.users[userID] = u
}

func (s *fakeStore) portfolioLocked(userID uint) *models.Portfolio {
	p := &models.Portfolio{UserID: userID, Investments: []models.Investment{}}
	for _, id := range s.portfolios[userID] {
		if inv, ok := s.investments[id]; ok {
			p.Investments = append(p.Investments, inv)
		}
	}
	return p
}

func (s *fakeStore) watchlistLocked(userID uint) *models.Watchlist {
	w := &models.Watchlist{UserID: userID, Stocks: []models.Stock{}}
	for _, id := range s.watchlists[userID] {
		if st, ok := s.stocks[id]; ok {
			w.Stocks = append(w.Stocks, st)
		}
	}
	return w
}

type fakeUsers struct{ s *fakeStore }

func (f fakeUsers) Create(ctx context.Context, user *models.User) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	user.ID = f.s.id()
	f.s.users[user.ID] = *user
	return nil
}

func (f fakeUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, u := range f.s.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f fakeUsers) FindByID(ctx context.Context, id uint) (*models.User, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	u, ok := f.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := u
	return &copied, nil
}

func (f fakeUsers) Save(ctx context.Context, user *models.User) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.users[user.ID] = *user
	return nil
}

type fakeStocks struct{ s *fakeStore }

func (f fakeStocks) All(ctx context.Context) ([]models.Stock, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	stocks := make([]models.Stock, 0, len(f.s.stocks))
	for id := uint(1); id <= f.s.nextID; id++ {
		if st, ok := f.s.stocks[id]; ok {
			stocks = append(stocks, st)
		}
	}
	return stocks, nil
}

type fakePortfolios struct{ s *fakeStore }

func (f fakePortfolios) ForUser(ctx context.Context, userID uint) (*models.Portfolio, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.s.portfolioLocked(userID), nil
}

func (f fakePortfolios) Invest(ctx context.Context, userID uint, inv *models.Investment) (*models.Portfolio, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	inv.ID = f.s.id()
	f.s.investments[inv.ID] = *inv
	f.s.portfolios[userID] = append(f.s.portfolios[userID], inv.ID)
	f.s.refreshSummariesLocked(userID)
	return f.s.portfolioLocked(userID), nil
}

type fakeInvestments struct{ s *fakeStore }

func (f fakeInvestments) FindByID(ctx context.Context, id uint) (*models.Investment, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	inv, ok := f.s.investments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := inv
	return &copied, nil
}

func (f fakeInvestments) Update(ctx context.Context, inv *models.Investment, fields map[string]interface{}) (*models.Investment, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	stored := f.s.investments[inv.ID]
	for col, val := range fields {
		switch col {
		case "name":
			stored.Name = val.(string)
		case "amount":
			stored.Amount = val.(float64)
		case "invested_value":
			stored.InvestedValue = val.(float64)
		case "market_value":
			stored.MarketValue = val.(float64)
		case "logo":
			stored.Logo = val.(string)
		}
	}
	f.s.investments[inv.ID] = stored
	f.s.refreshSummariesLocked(stored.UserID)
	copied := stored
	return &copied, nil
}

func (f fakeInvestments) Delete(ctx context.Context, inv *models.Investment) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	delete(f.s.investments, inv.ID)
	refs := f.s.portfolios[inv.UserID]
	for i, id := range refs {
		if id == inv.ID {
			f.s.portfolios[inv.UserID] = append(refs[:i], refs[i+1:]...)
			break
		}
	}
	f.s.refreshSummariesLocked(inv.UserID)
	return nil
}

type fakeWatchlists struct{ s *fakeStore }

func (f fakeWatchlists) ForUser(ctx context.Context, userID uint) (*models.Watchlist, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.s.watchlistLocked(userID), nil
}

func (f fakeWatchlists) Add(ctx context.Context, userID uint, stock *models.Stock) (*models.Watchlist, bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()

	created := false
	var found *models.Stock
	for id := range f.s.stocks {
		if f.s.stocks[id].Symbol == stock.Symbol {
			st := f.s.stocks[id]
			found = &st
			break
		}
	}
	if found == nil {
		stock.ID = f.s.id()
		f.s.stocks[stock.ID] = *stock
		found = stock
		created = true
	}
	*stock = *found

	member := false
	for _, id := range f.s.watchlists[userID] {
		if id == found.ID {
			member = true
			break
		}
	}
	if !member {
		f.s.watchlists[userID] = append(f.s.watchlists[userID], found.ID)
	}
	return f.s.watchlistLocked(userID), created, nil
}

func (f fakeWatchlists) Remove(ctx context.Context, userID, stockID uint) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	refs, ok := f.s.watchlists[userID]
	if !ok {
		return repository.ErrNotFound
	}
	for i, id := range refs {
		if id == stockID {
			f.s.watchlists[userID] = append(refs[:i], refs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeQueries struct{ s *fakeStore }

func (f fakeQueries) Create(ctx context.Context, q *models.Query) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	q.ID = f.s.id()
	f.s.queries = append(f.s.queries, *q)
	return nil
}

func (f fakeQueries) ForUser(ctx context.Context, userID uint) ([]models.Query, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := []models.Query{}
	for i := len(f.s.queries) - 1; i >= 0; i-- {
		if f.s.queries[i].UserID == userID {
			out = append(out, f.s.queries[i])
		}
	}
	return out, nil
}

// fakeCatalog is an in-memory CatalogCache.
type fakeCatalog struct {
	mu          sync.Mutex
	stocks      []models.Stock
	warm        bool
	sets        int
	invalidated int
}

func (c *fakeCatalog) Get(ctx context.Context) ([]models.Stock, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.warm {
		return nil, false
	}
	return c.stocks, true
}

func (c *fakeCatalog) Set(ctx context.Context, stocks []models.Stock) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stocks = stocks
	c.warm = true
	c.sets++
}

func (c *fakeCatalog) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stocks = nil
	c.warm = false
	c.invalidated++
}

// Test harness

func newTestRouter(t *testing.T) (*gin.Engine, *fakeStore, *fakeCatalog) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newFakeStore()
	catalog := &fakeCatalog{}
	repos := &repository.Repositories{
		Users:       fakeUsers{store},
		Stocks:      fakeStocks{store},
		Portfolios:  fakePortfolios{store},
		Investments: fakeInvestments{store},
		Watchlists:  fakeWatchlists{store},
		Queries:     fakeQueries{store},
	}
	return NewRouter(repos, catalog, testSecret), store, catalog
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	creds := gin.H{"email": email, "password": password}
	w := doJSON(t, router, http.MethodPost, "/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/auth/login", "", creds)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
