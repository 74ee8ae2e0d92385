package appcontext

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/handler"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/router"
	"github.com/RoyceAzure/lab/shopcenter/internal/config"
	infra_mail "github.com/RoyceAzure/lab/shopcenter/internal/infra/mail"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/redisrepo"
	"github.com/RoyceAzure/lab/shopcenter/internal/pkg/token"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ApplicationContext 啟動期分階段初始化所有相依,
// 每階段失敗即中止, 關閉時反向釋放
type ApplicationContext struct {
	Config      *config.Config
	store       db.Store
	redisClient *redis.Client
	httpServer  *http.Server
}

func New(configPath string) (*ApplicationContext, error) {
	app := &ApplicationContext{}

	log.Info().Msg("loading config")
	loader, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	app.Config = loader.Get()

	log.Info().Msg("connecting postgres")
	conn, err := db.GetDbConn(app.Config.DbName, app.Config.DbHost, app.Config.DbPort, app.Config.DbUser, app.Config.DbPas)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	store := db.NewStore(conn)
	log.Info().Msg("running migrations")
	if err := store.InitMigrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	app.store = store

	log.Info().Msg("connecting redis")
	app.redisClient = redisrepo.NewRedisClient(app.Config.RedisAddr,
		redisrepo.WithPassword(app.Config.RedisPassword))
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.redisClient.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	tokenMaker, err := token.NewJWTMaker(app.Config.TokenKey)
	if err != nil {
		return nil, fmt.Errorf("token maker: %w", err)
	}

	sender := infra_mail.NewGmailSender(app.Config.EmailSender, app.Config.EmailAccount, app.Config.SmtpAuthKey)
	otpRepo := redisrepo.NewOTPRepo(app.redisClient)

	log.Info().Msg("wiring services")
	authService := service.NewAuthService(store, tokenMaker)
	resetService := service.NewPasswordResetService(store, otpRepo, sender)
	productService := service.NewProductService(store)
	cartService := service.NewCartService(store)
	checkoutService := service.NewCheckoutService(store, sender)
	orderService := service.NewOrderService(store)
	addressService := service.NewAddressService(store)
	couponService := service.NewCouponService(productService)
	notificationService := service.NewNotificationService(store)

	srv := &router.Server{
		AuthHandler:         handler.NewAuthHandler(authService, resetService),
		ProductHandler:      handler.NewProductHandler(productService),
		CartHandler:         handler.NewCartHandler(cartService),
		OrderHandler:        handler.NewOrderHandler(checkoutService, orderService),
		AddressHandler:      handler.NewAddressHandler(addressService),
		CouponHandler:       handler.NewCouponHandler(couponService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
	}

	app.httpServer = &http.Server{
		Addr:    ":" + app.Config.ServerPort,
		Handler: router.NewRouter(srv),
	}

	return app, nil
}

// Serve 阻塞直到server結束
func (app *ApplicationContext) Serve() error {
	log.Info().Str("addr", app.httpServer.Addr).Msg("http server listening")
	return app.httpServer.ListenAndServe()
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Info().Msg("shutting down http server")
	if err := app.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	log.Info().Msg("closing redis")
	return app.redisClient.Close()
}
