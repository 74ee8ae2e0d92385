package service

import (
	"context"
	"sort"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"gorm.io/gorm"
)

// cartKey 對應(user_id, product_id)唯一鍵
type cartKey struct {
	userID    uint
	productID uint
}

// memStore 測試用的記憶體Store, WithinTransaction以快照/還原模擬回滾
type memStore struct {
	users         map[uint]*model.User
	products      map[uint]*model.Product
	cartItems     map[cartKey]*model.CartItem
	addresses     map[uint]*model.Address
	orders        map[uint]*model.Order
	notifications []model.Notification

	nextUserID    uint
	nextProductID uint
	nextAddressID uint
	nextOrderID   uint
	nextCartSeq   uint
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[uint]*model.User),
		products:  make(map[uint]*model.Product),
		cartItems: make(map[cartKey]*model.CartItem),
		addresses: make(map[uint]*model.Address),
		orders:    make(map[uint]*model.Order),
	}
}

func (m *memStore) InitMigrate() error { return nil }

func (m *memStore) snapshot() *memStore {
	c := newMemStore()
	for k, v := range m.users {
		u := *v
		c.users[k] = &u
	}
	for k, v := range m.products {
		p := *v
		c.products[k] = &p
	}
	for k, v := range m.cartItems {
		i := *v
		c.cartItems[k] = &i
	}
	for k, v := range m.addresses {
		a := *v
		c.addresses[k] = &a
	}
	for k, v := range m.orders {
		o := *v
		c.orders[k] = &o
	}
	c.notifications = append(c.notifications, m.notifications...)
	c.nextUserID = m.nextUserID
	c.nextProductID = m.nextProductID
	c.nextAddressID = m.nextAddressID
	c.nextOrderID = m.nextOrderID
	c.nextCartSeq = m.nextCartSeq
	return c
}

func (m *memStore) restore(s *memStore) {
	m.users = s.users
	m.products = s.products
	m.cartItems = s.cartItems
	m.addresses = s.addresses
	m.orders = s.orders
	m.notifications = s.notifications
	m.nextUserID = s.nextUserID
	m.nextProductID = s.nextProductID
	m.nextAddressID = s.nextAddressID
	m.nextOrderID = s.nextOrderID
	m.nextCartSeq = s.nextCartSeq
}

func (m *memStore) WithinTransaction(ctx context.Context, fn func(txStore db.Store) error) error {
	before := m.snapshot()
	if err := fn(m); err != nil {
		m.restore(before)
		return err
	}
	return nil
}

// --- users ---

func (m *memStore) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	m.nextUserID++
	user.UserID = m.nextUserID
	m.users[user.UserID] = user
	return user, nil
}

func (m *memStore) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) UpdateUser(ctx context.Context, user *model.User) error {
	if _, ok := m.users[user.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *user
	m.users[user.UserID] = &cp
	return nil
}

func (m *memStore) DeleteUser(ctx context.Context, id uint) error {
	delete(m.users, id)
	return nil
}

// --- products ---

func (m *memStore) CreateProduct(ctx context.Context, product *model.Product) error {
	m.nextProductID++
	product.ProductID = m.nextProductID
	cp := *product
	m.products[product.ProductID] = &cp
	return nil
}

func (m *memStore) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	if p, ok := m.products[productID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID > out[j].ProductID })
	return out, nil
}

func (m *memStore) SearchProductsByName(ctx context.Context, query string) ([]model.Product, error) {
	var out []model.Product
	for _, p := range m.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memStore) UpdateProduct(ctx context.Context, product *model.Product) error {
	if _, ok := m.products[product.ProductID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *product
	m.products[product.ProductID] = &cp
	return nil
}

func (m *memStore) DeductProductStock(ctx context.Context, productID uint, quantity int) error {
	p, ok := m.products[productID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if int(p.Stock) < quantity {
		return db.ErrProductStockNotEnough
	}
	p.Stock -= uint(quantity)
	return nil
}

func (m *memStore) DeleteProduct(ctx context.Context, id uint) error {
	delete(m.products, id)
	return nil
}

// --- cart ---

func (m *memStore) CreateCartItem(ctx context.Context, item *model.CartItem) error {
	m.nextCartSeq++
	item.CartItemID = m.nextCartSeq
	cp := *item
	m.cartItems[cartKey{item.UserID, item.ProductID}] = &cp
	return nil
}

func (m *memStore) GetCartItem(ctx context.Context, userID, productID uint) (*model.CartItem, error) {
	if i, ok := m.cartItems[cartKey{userID, productID}]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) GetCartItemsByUser(ctx context.Context, userID uint) ([]model.CartItem, error) {
	var out []model.CartItem
	for _, i := range m.cartItems {
		if i.UserID == userID {
			cp := *i
			if p, ok := m.products[i.ProductID]; ok {
				cp.Product = *p
			}
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CartItemID < out[j].CartItemID })
	return out, nil
}

func (m *memStore) UpdateCartItem(ctx context.Context, item *model.CartItem) error {
	key := cartKey{item.UserID, item.ProductID}
	if _, ok := m.cartItems[key]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *item
	m.cartItems[key] = &cp
	return nil
}

func (m *memStore) DeleteCartItem(ctx context.Context, userID, productID uint) error {
	delete(m.cartItems, cartKey{userID, productID})
	return nil
}

func (m *memStore) ClearCart(ctx context.Context, userID uint) (int64, error) {
	var deleted int64
	for k := range m.cartItems {
		if k.userID == userID {
			delete(m.cartItems, k)
			deleted++
		}
	}
	return deleted, nil
}

// --- addresses ---

func (m *memStore) CreateAddress(ctx context.Context, address *model.Address) error {
	m.nextAddressID++
	address.AddressID = m.nextAddressID
	cp := *address
	m.addresses[address.AddressID] = &cp
	return nil
}

func (m *memStore) GetAddressByID(ctx context.Context, id uint) (*model.Address, error) {
	if a, ok := m.addresses[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) GetUserAddress(ctx context.Context, id, userID uint) (*model.Address, error) {
	if a, ok := m.addresses[id]; ok && a.UserID == userID {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) ListAddressesByUser(ctx context.Context, userID uint) ([]model.Address, error) {
	var out []model.Address
	for _, a := range m.addresses {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AddressID < out[j].AddressID })
	return out, nil
}

func (m *memStore) UpdateAddress(ctx context.Context, address *model.Address) error {
	if _, ok := m.addresses[address.AddressID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *address
	m.addresses[address.AddressID] = &cp
	return nil
}

func (m *memStore) DeleteAddress(ctx context.Context, id uint) error {
	delete(m.addresses, id)
	return nil
}

// --- orders ---

func (m *memStore) CreateOrder(ctx context.Context, order *model.Order) error {
	m.nextOrderID++
	order.OrderID = m.nextOrderID
	for i := range order.Items {
		order.Items[i].OrderID = order.OrderID
	}
	cp := *order
	m.orders[order.OrderID] = &cp
	return nil
}

func (m *memStore) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	if u, ok := m.users[o.UserID]; ok {
		cp.User = *u
	}
	for i := range cp.Items {
		if p, ok := m.products[cp.Items[i].ProductID]; ok {
			cp.Items[i].Product = *p
		}
	}
	if o.ShippingAddressID != nil {
		if a, ok := m.addresses[*o.ShippingAddressID]; ok {
			addr := *a
			cp.ShippingAddress = &addr
		}
	}
	return &cp, nil
}

func (m *memStore) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	out := make([]model.Order, 0, len(m.orders))
	for _, o := range m.orders {
		cp := *o
		if u, ok := m.users[o.UserID]; ok {
			cp.User = *u
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID > out[j].OrderID })
	return out, nil
}

func (m *memStore) UpdateOrderStatus(ctx context.Context, id uint, status string) error {
	o, ok := m.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	return nil
}

// --- notifications ---

func (m *memStore) CreateNotification(ctx context.Context, notification *model.Notification) error {
	m.notifications = append(m.notifications, *notification)
	return nil
}

func (m *memStore) ListNotificationsByUser(ctx context.Context, userID uint) ([]model.Notification, error) {
	var out []model.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

var _ db.Store = (*memStore)(nil)

// fakeSender 收集寄出的信, 不真的發送
type fakeSender struct {
	subjects []string
	contents []string
	to       [][]string
}

func (f *fakeSender) SendEmail(subject string, content string, to []string, cc []string, bcc []string, attachFiles []string) error {
	f.subjects = append(f.subjects, subject)
	f.contents = append(f.contents, content)
	f.to = append(f.to, to)
	return nil
}
