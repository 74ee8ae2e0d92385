package db

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/domain/model"
	"gorm.io/gorm"
)

// Store 統一的資料庫介面
type Store interface {
	InitMigrate() error

	// WithinTransaction fn內的所有寫入為同一交易, fn回傳錯誤即整體回滾
	WithinTransaction(ctx context.Context, fn func(txStore Store) error) error

	IUserRepository
	IProductRepository
	ICartRepository
	IAddressRepository
	IOrderRepository
	INotificationRepository
}

// IUserRepository User 相關操作介面
type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUserByID(ctx context.Context, id uint) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id uint) error
}

// IProductRepository Product 相關操作介面
type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	GetProductByID(ctx context.Context, productID uint) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	SearchProductsByName(ctx context.Context, query string) ([]model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeductProductStock(ctx context.Context, productID uint, quantity int) error
	DeleteProduct(ctx context.Context, id uint) error
}

// ICartRepository CartItem 相關操作介面
type ICartRepository interface {
	CreateCartItem(ctx context.Context, item *model.CartItem) error
	GetCartItem(ctx context.Context, userID, productID uint) (*model.CartItem, error)
	GetCartItemsByUser(ctx context.Context, userID uint) ([]model.CartItem, error)
	UpdateCartItem(ctx context.Context, item *model.CartItem) error
	DeleteCartItem(ctx context.Context, userID, productID uint) error
	ClearCart(ctx context.Context, userID uint) (int64, error)
}

// IAddressRepository Address 相關操作介面
type IAddressRepository interface {
	CreateAddress(ctx context.Context, address *model.Address) error
	GetAddressByID(ctx context.Context, id uint) (*model.Address, error)
	GetUserAddress(ctx context.Context, id, userID uint) (*model.Address, error)
	ListAddressesByUser(ctx context.Context, userID uint) ([]model.Address, error)
	UpdateAddress(ctx context.Context, address *model.Address) error
	DeleteAddress(ctx context.Context, id uint) error
}

// IOrderRepository Order 相關操作介面
type IOrderRepository interface {
	CreateOrder(ctx context.Context, order *model.Order) error
	GetOrderByID(ctx context.Context, id uint) (*model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status string) error
}

// INotificationRepository Notification 相關操作介面
type INotificationRepository interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
	ListNotificationsByUser(ctx context.Context, userID uint) ([]model.Notification, error)
}

// SQLStore 統一資料庫實現
type SQLStore struct {
	dbDao *DbDao
	*UserRepo
	*ProductRepo
	*CartRepo
	*AddressRepo
	*OrderRepo
	*NotificationRepo
}

func NewStore(conn *gorm.DB) *SQLStore {
	dbDao := NewDbDao(conn)
	return &SQLStore{
		dbDao:            dbDao,
		UserRepo:         NewUserRepo(dbDao),
		ProductRepo:      NewProductRepo(dbDao),
		CartRepo:         NewCartRepo(dbDao),
		AddressRepo:      NewAddressRepo(dbDao),
		OrderRepo:        NewOrderRepo(dbDao),
		NotificationRepo: NewNotificationRepo(dbDao),
	}
}

func (s *SQLStore) InitMigrate() error {
	return s.dbDao.InitMigrate()
}

func (s *SQLStore) WithinTransaction(ctx context.Context, fn func(txStore Store) error) error {
	return s.dbDao.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

var _ Store = (*SQLStore)(nil)
