package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ecofinds/marketplace-service/config"
	"github.com/ecofinds/marketplace-service/internal/controller"
	"github.com/ecofinds/marketplace-service/internal/infrastructure/storage"
	"github.com/ecofinds/marketplace-service/internal/infrastructure/tracing"
	custommiddleware "github.com/ecofinds/marketplace-service/internal/middleware"
	"github.com/ecofinds/marketplace-service/internal/repository"
	"github.com/ecofinds/marketplace-service/internal/service"
	"github.com/ecofinds/marketplace-service/pkg/response"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type App struct {
	DB     *sqlx.DB
	Config *config.Config
	Server *echo.Echo
}

func (app *App) Start() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = logger

	e := echo.New()

	if app.Config.TracingConfig.CollectorHost != "" {
		traceProvider, err := tracing.InitTracing(app.Config.ServiceName, app.Config.TracingConfig.CollectorHost)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize tracing")
		} else {
			defer func() {
				if err := traceProvider.Shutdown(context.Background()); err != nil {
					logger.Error().Err(err).Msg("Failed to shutdown tracing")
				}
			}()

			tracer := traceProvider.Tracer(app.Config.ServiceName)

			e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
					defer span.End()

					req := c.Request()
					c.SetRequest(req.WithContext(ctx))

					return next(c)
				}
			})
		}
	}

	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start metrics server")
		}
	}()

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{app.Config.CORSAllowOrigins},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.Static(app.Config.UploadConfig.PublicPath, app.Config.UploadConfig.Dir)

	g := e.Group("/api")
	g.Use(custommiddleware.Logger)

	imageStorage, err := storage.NewLocalStorage(app.Config.UploadConfig.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare upload directory")
	}

	userRepo := repository.CreateUserRepository(app.DB)
	productRepo := repository.CreateProductRepository(app.DB)
	cartRepo := repository.CreateCartRepository(app.DB)
	purchaseRepo := repository.CreatePurchaseRepository(app.DB)
	wishlistRepo := repository.CreateWishlistRepository(app.DB)

	userSvc := service.CreateUserService(userRepo, *app.Config)
	productSvc := service.CreateProductService(productRepo, imageStorage, *app.Config)
	cartSvc := service.CreateCartService(cartRepo, productRepo, *app.Config)
	purchaseSvc := service.CreatePurchaseService(purchaseRepo, *app.Config)
	wishlistSvc := service.CreateWishlistService(wishlistRepo, productRepo, *app.Config)

	isLoggedIn := custommiddleware.Auth(app.Config.JWTConfig.Secret)

	controller.CreateUserController(g, userSvc, isLoggedIn)
	controller.CreateProductController(g, productSvc, isLoggedIn)
	controller.CreateCartController(g, cartSvc, isLoggedIn)
	controller.CreatePurchaseController(g, purchaseSvc, isLoggedIn)
	controller.CreateWishlistController(g, wishlistSvc, isLoggedIn)

	g.GET("/ping", func(c echo.Context) error {
		return response.WriteSuccessResponse(c, "pong", nil)
	})

	app.Server = e

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
