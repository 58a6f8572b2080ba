package usecase

import (
	"sort"
	"strings"
	"sync"

	"github.com/ledjassa/marketplace-service/internal/domain"
)

// fakeStore is an in-memory domain.Store. Atomically snapshots all state up
// front and restores it when fn fails, mirroring a database rollback.
type fakeStore struct {
	mu sync.Mutex

	users         map[string]*domain.User
	products      map[string]*domain.Product
	orders        map[string]*domain.Order
	history       map[string][]*domain.StatusHistory
	conversations map[string]*domain.Conversation
	messages      map[string][]*domain.Message
	ratings       []*domain.Rating
	categories    []*domain.Category
	sales         []*domain.SellerSales

	categoryListCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:         make(map[string]*domain.User),
		products:      make(map[string]*domain.Product),
		orders:        make(map[string]*domain.Order),
		history:       make(map[string][]*domain.StatusHistory),
		conversations: make(map[string]*domain.Conversation),
		messages:      make(map[string][]*domain.Message),
	}
}

func (s *fakeStore) Orders() domain.OrderRepository               { return s }
func (s *fakeStore) Products() domain.ProductRepository           { return s }
func (s *fakeStore) Users() domain.UserRepository                 { return s }
func (s *fakeStore) Conversations() domain.ConversationRepository { return s }
func (s *fakeStore) Ratings() domain.RatingRepository             { return s }

func (s *fakeStore) Atomically(fn func(domain.Store) error) error {
	snap := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type fakeSnapshot struct {
	products map[string]*domain.Product
	orders   map[string]*domain.Order
	history  map[string][]*domain.StatusHistory
}

func (s *fakeStore) snapshot() fakeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := fakeSnapshot{
		products: make(map[string]*domain.Product, len(s.products)),
		orders:   make(map[string]*domain.Order, len(s.orders)),
		history:  make(map[string][]*domain.StatusHistory, len(s.history)),
	}
	for id, p := range s.products {
		cp := *p
		snap.products[id] = &cp
	}
	for id, o := range s.orders {
		cp := *o
		snap.orders[id] = &cp
	}
	for id, entries := range s.history {
		snap.history[id] = append([]*domain.StatusHistory(nil), entries...)
	}
	return snap
}

func (s *fakeStore) restore(snap fakeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.products
	s.orders = snap.orders
	s.history = snap.history
}

// --- order repository ---

func (s *fakeStore) CreateOrder(order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *order
	cp.Buyer, cp.Product = nil, nil
	s.orders[order.ID] = &cp
	return nil
}

func (s *fakeStore) GetOrderByID(orderID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return s.loadOrder(order), nil
}

func (s *fakeStore) GetOrderForSeller(orderID, sellerID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	product, ok := s.products[order.ProductID]
	if !ok || product.SellerID != sellerID {
		return nil, domain.ErrOrderNotFound
	}
	return s.loadOrder(order), nil
}

func (s *fakeStore) GetOrderForBuyer(orderID, buyerID string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok || order.BuyerID != buyerID {
		return nil, domain.ErrOrderNotFound
	}
	return s.loadOrder(order), nil
}

func (s *fakeStore) UpdateOrderStatus(order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.orders[order.ID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	stored.Status = order.Status
	stored.ProcessingAt = order.ProcessingAt
	stored.ShippingAt = order.ShippingAt
	stored.DeliveredAt = order.DeliveredAt
	stored.CancelledAt = order.CancelledAt
	return nil
}

func (s *fakeStore) GetOrdersBySellerID(sellerID string) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Order
	for _, order := range s.orders {
		product, ok := s.products[order.ProductID]
		if ok && product.SellerID == sellerID {
			out = append(out, s.loadOrder(order))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeStore) GetOrdersByBuyerID(buyerID string) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Order
	for _, order := range s.orders {
		if order.BuyerID == buyerID {
			out = append(out, s.loadOrder(order))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeStore) CountActiveBySellerID(sellerID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, order := range s.orders {
		product, ok := s.products[order.ProductID]
		if !ok || product.SellerID != sellerID {
			continue
		}
		switch order.Status {
		case domain.StatusPending, domain.StatusProcessing, domain.StatusShipping:
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) AppendHistory(entry *domain.StatusHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *entry
	s.history[entry.OrderID] = append(s.history[entry.OrderID], &cp)
	return nil
}

func (s *fakeStore) GetHistoryByOrderID(orderID string) ([]*domain.StatusHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := append([]*domain.StatusHistory(nil), s.history[orderID]...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].ChangedAt.After(entries[j].ChangedAt) })
	return entries, nil
}

// loadOrder attaches buyer and product the way the real repository preloads
// them. Caller holds the lock.
func (s *fakeStore) loadOrder(order *domain.Order) *domain.Order {
	cp := *order
	if buyer, ok := s.users[order.BuyerID]; ok {
		b := *buyer
		cp.Buyer = &b
	}
	if product, ok := s.products[order.ProductID]; ok {
		p := *product
		if seller, ok := s.users[product.SellerID]; ok {
			sl := *seller
			p.Seller = &sl
		}
		cp.Product = &p
	}
	return &cp
}

// --- product repository ---

func (s *fakeStore) CreateProduct(product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *product
	s.products[product.ID] = &cp
	return nil
}

func (s *fakeStore) GetProductByID(productID string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	cp := *product
	if seller, ok := s.users[product.SellerID]; ok {
		sl := *seller
		cp.Seller = &sl
	}
	return &cp, nil
}

func (s *fakeStore) ListProducts() ([]*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Product
	for _, p := range s.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeStore) ListProductsBySellerID(sellerID string) ([]*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Product
	for _, p := range s.products {
		if p.SellerID == sellerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeStore) CountProductsBySellerID(sellerID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, p := range s.products {
		if p.SellerID == sellerID {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) UpdateProduct(product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	cp := *product
	cp.Seller, cp.Category = nil, nil
	s.products[product.ID] = &cp
	return nil
}

func (s *fakeStore) DeleteProduct(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[productID]; !ok {
		return domain.ErrProductNotFound
	}
	delete(s.products, productID)
	return nil
}

func (s *fakeStore) SearchProducts(query string, categoryIDs []string) ([]*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Product
	for _, p := range s.products {
		if query != "" && !containsFold(p.Name, query) {
			continue
		}
		if len(categoryIDs) > 0 && !containsString(categoryIDs, p.CategoryID) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeStore) DecrementStock(productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	if product.Stock < qty {
		return &domain.InsufficientStockError{
			ProductName: product.Name,
			Available:   product.Stock,
			Requested:   qty,
		}
	}
	product.Stock -= qty
	return nil
}

func (s *fakeStore) RestoreStock(productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	product.Stock += qty
	return nil
}

func (s *fakeStore) ListCategories() ([]*domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categoryListCalls++
	return append([]*domain.Category(nil), s.categories...), nil
}

func (s *fakeStore) GetSellerSales() ([]*domain.SellerSales, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*domain.SellerSales(nil), s.sales...), nil
}

// --- user repository ---

func (s *fakeStore) CreateUser(user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (s *fakeStore) GetUserByID(userID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (s *fakeStore) GetUserByEmail(email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// --- conversation repository ---

func (s *fakeStore) GetOrCreateConversation(conv *domain.Conversation) (*domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.conversations {
		if existing.BuyerID == conv.BuyerID &&
			existing.SellerID == conv.SellerID &&
			existing.ProductID == conv.ProductID {
			cp := *existing
			return &cp, nil
		}
	}
	cp := *conv
	s.conversations[conv.ID] = &cp
	return conv, nil
}

func (s *fakeStore) GetConversationByID(conversationID string) (*domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv, ok := s.conversations[conversationID]
	if !ok {
		return nil, domain.ErrConversationNotFound
	}
	cp := *conv
	return &cp, nil
}

func (s *fakeStore) ListConversationsByUserID(userID string) ([]*domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Conversation
	for _, conv := range s.conversations {
		if conv.BuyerID == userID || conv.SellerID == userID {
			cp := *conv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeStore) CreateMessage(msg *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *msg
	s.messages[msg.ConversationID] = append(s.messages[msg.ConversationID], &cp)
	return nil
}

func (s *fakeStore) ListMessagesByConversationID(conversationID string) ([]*domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := append([]*domain.Message(nil), s.messages[conversationID]...)
	sort.Slice(msgs, func(i, j int) bool { return msgs[i].CreatedAt.Before(msgs[j].CreatedAt) })
	return msgs, nil
}

// --- rating repository ---

func (s *fakeStore) CreateRating(rating *domain.Rating) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *rating
	s.ratings = append(s.ratings, &cp)
	return nil
}

func (s *fakeStore) GetRatingByOrderAndRater(orderID, raterID string) (*domain.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.ratings {
		if r.OrderID == orderID && r.RaterID == raterID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, domain.ErrRatingNotFound
}

func (s *fakeStore) ListRatingsByOrderID(orderID string) ([]*domain.Rating, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Rating
	for _, r := range s.ratings {
		if r.OrderID == orderID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
