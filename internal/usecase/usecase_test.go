package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"gameclub/internal/domain/entity"
	"gameclub/internal/domain/repository"
	"gameclub/pkg/errors"
)

// In-memory repositories backing the usecase tests.

type memGameRepo struct {
	mu    sync.Mutex
	games map[string]*entity.Game
	seq   int
}

func newMemGameRepo() *memGameRepo {
	return &memGameRepo{games: map[string]*entity.Game{}}
}

func (r *memGameRepo) Create(ctx context.Context, game *entity.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	game.ID = fmt.Sprintf("game-%d", r.seq)
	copied := *game
	r.games[game.ID] = &copied
	return nil
}

func (r *memGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	game, ok := r.games[id]
	if !ok {
		return nil, errors.NotFound("Game", nil)
	}
	copied := *game
	return &copied, nil
}

func (r *memGameRepo) GetBySlug(ctx context.Context, slug string) (*entity.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, game := range r.games {
		if game.Slug == slug {
			copied := *game
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Game", nil)
}

func (r *memGameRepo) List(ctx context.Context, filter repository.GameFilter) ([]*entity.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Game
	for _, game := range r.games {
		if filter.SafeOnly != nil && game.SafeAccountAvailable != *filter.SafeOnly {
			continue
		}
		if filter.Genre != "" && !containsString(game.Genre, filter.Genre) {
			continue
		}
		if filter.Region != "" && !containsString(game.RegionOptions, filter.Region) {
			continue
		}
		if filter.Search != "" {
			needle := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(game.Title), needle) &&
				!strings.Contains(strings.ToLower(game.Description), needle) {
				continue
			}
		}
		copied := *game
		out = append(out, &copied)
	}
	return out, nil
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func (r *memGameRepo) Update(ctx context.Context, game *entity.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[game.ID]; !ok {
		return errors.NotFound("Game", nil)
	}
	copied := *game
	r.games[game.ID] = &copied
	return nil
}

func (r *memGameRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[id]; !ok {
		return errors.NotFound("Game", nil)
	}
	delete(r.games, id)
	return nil
}

type memCartRepo struct {
	mu    sync.Mutex
	carts map[string]*entity.Cart
	seq   int
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: map[string]*entity.Cart{}}
}

func (r *memCartRepo) GetByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[userID]
	if !ok {
		return nil, errors.NotFound("Cart", nil)
	}
	copied := *cart
	copied.Items = append([]entity.CartItem(nil), cart.Items...)
	return &copied, nil
}

func (r *memCartRepo) Save(ctx context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cart.ID == "" {
		r.seq++
		cart.ID = fmt.Sprintf("cart-%d", r.seq)
	}
	copied := *cart
	copied.Items = append([]entity.CartItem(nil), cart.Items...)
	r.carts[cart.UserID] = &copied
	return nil
}

type memOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
	seq    int

	// forceCollisions makes the first N ExistsByOrderNumber calls report a
	// collision regardless of stored orders.
	forceCollisions int
	existsCalls     int
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *memOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	order.ID = fmt.Sprintf("order-%d", r.seq)
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	copied := *order
	return &copied, nil
}

func (r *memOrderRepo) ListByUser(ctx context.Context, userID string, paymentStatus string) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, order := range r.orders {
		if order.UserID != userID {
			continue
		}
		if paymentStatus != "" && order.PaymentStatus != paymentStatus {
			continue
		}
		copied := *order
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memOrderRepo) ListAll(ctx context.Context) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, order := range r.orders {
		copied := *order
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memOrderRepo) Search(ctx context.Context, filter repository.OrderSearchFilter) ([]*entity.Order, int64, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	var orders []*entity.Order
	for _, order := range all {
		if filter.PaymentStatus != "" && order.PaymentStatus != filter.PaymentStatus {
			continue
		}
		if filter.FulfillmentStatus != "" && order.FulfillmentStatus != filter.FulfillmentStatus {
			continue
		}
		if filter.FromDate != nil && order.CreatedAt.Before(*filter.FromDate) {
			continue
		}
		if filter.ToDate != nil && order.CreatedAt.After(*filter.ToDate) {
			continue
		}
		if filter.Search != "" && !orderTextMatches(order, strings.ToLower(filter.Search)) {
			continue
		}
		orders = append(orders, order)
	}

	total := int64(len(orders))

	start := filter.Offset
	if start > len(orders) {
		start = len(orders)
	}
	end := len(orders)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}

	return orders[start:end], total, nil
}

func orderTextMatches(order *entity.Order, needle string) bool {
	for _, haystack := range []string{
		order.OrderNumber,
		order.CustomerInfo.Name,
		order.CustomerInfo.Email,
		order.CustomerInfo.Phone,
	} {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}
	return false
}

func (r *memOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.ID]; !ok {
		return errors.NotFound("Order", nil)
	}
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *memOrderRepo) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.existsCalls++
	if r.existsCalls <= r.forceCollisions {
		return true, nil
	}
	for _, order := range r.orders {
		if order.OrderNumber == orderNumber {
			return true, nil
		}
	}
	return false, nil
}

func (r *memOrderRepo) Count(ctx context.Context, filter repository.OrderCountFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, order := range r.orders {
		if matchesCountFilter(order, filter) {
			count++
		}
	}
	return count, nil
}

func (r *memOrderRepo) SumTotalAmount(ctx context.Context, filter repository.OrderCountFilter) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum int64
	for _, order := range r.orders {
		if matchesCountFilter(order, filter) {
			sum += order.TotalAmount
		}
	}
	return sum, nil
}

func matchesCountFilter(order *entity.Order, filter repository.OrderCountFilter) bool {
	if filter.PaymentStatus != "" && order.PaymentStatus != filter.PaymentStatus {
		return false
	}
	if filter.FulfillmentStatus != "" && order.FulfillmentStatus != filter.FulfillmentStatus {
		return false
	}
	if filter.CreatedFrom != nil && order.CreatedAt.Before(*filter.CreatedFrom) {
		return false
	}
	if filter.CreatedBefore != nil && !order.CreatedAt.Before(*filter.CreatedBefore) {
		return false
	}
	return true
}

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
	seq   int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	user.ID = fmt.Sprintf("user-%d", r.seq)
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

type memContentRepo struct {
	mu   sync.Mutex
	home *entity.HomeContent
}

func (r *memContentRepo) Get(ctx context.Context) (*entity.HomeContent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.home == nil {
		return nil, errors.NotFound("Home content", nil)
	}
	copied := *r.home
	return &copied, nil
}

func (r *memContentRepo) Save(ctx context.Context, content *entity.HomeContent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if content.ID == "" {
		content.ID = "home-content"
	}
	copied := *content
	r.home = &copied
	return nil
}

type memMarketingRepo struct {
	mu       sync.Mutex
	settings *entity.MarketingSettings
}

func (r *memMarketingRepo) Get(ctx context.Context) (*entity.MarketingSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return nil, errors.NotFound("Marketing settings", nil)
	}
	copied := *r.settings
	return &copied, nil
}

func (r *memMarketingRepo) Save(ctx context.Context, settings *entity.MarketingSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if settings.ID == "" {
		settings.ID = "marketing-settings"
	}
	copied := *settings
	r.settings = &copied
	return nil
}

func seedGame(t *testing.T, repo *memGameRepo, slug string, basePrice int64) *entity.Game {
	t.Helper()
	game := &entity.Game{
		Title:     slug,
		Slug:      slug,
		Platform:  "PS5",
		BasePrice: basePrice,
		Variants: []entity.GameVariant{
			{ID: "var-a", Price: basePrice - 500000, Stock: 3},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := repo.Create(context.Background(), game); err != nil {
		t.Fatalf("seed game: %v", err)
	}
	return game
}
