// @title           Mercado Granja API
// @version         1.0
// @description     Marketplace backend for buyers and farmers: products, cart, favourites, addresses and orders.
// @BasePath        /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "github.com/MikeMC777/mercado-granja/docs"
	"github.com/MikeMC777/mercado-granja/internal/address"
	"github.com/MikeMC777/mercado-granja/internal/cart"
	"github.com/MikeMC777/mercado-granja/internal/config"
	"github.com/MikeMC777/mercado-granja/internal/database"
	"github.com/MikeMC777/mercado-granja/internal/favourite"
	"github.com/MikeMC777/mercado-granja/internal/logger"
	"github.com/MikeMC777/mercado-granja/internal/order"
	"github.com/MikeMC777/mercado-granja/internal/product"
	"github.com/MikeMC777/mercado-granja/internal/seller"
	"github.com/MikeMC777/mercado-granja/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		l := logger.New("local", "info")
		l.Fatal().Err(err).Msg("load config")
	}
	log := logger.New(cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MigrateOnStart {
		if err := database.Migrate(ctx, cfg.DatabaseURL, log); err != nil {
			log.Fatal().Err(err).Msg("migrate database")
		}
	}

	pool, err := database.New(ctx, cfg.DatabaseURL, log, cfg.Env == "local")
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	defer pool.Close()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := newRouter(log, pool, repos{
		users:      user.NewPGRepo(pool),
		sellers:    seller.NewPGRepo(pool),
		products:   product.NewPGRepo(pool),
		cart:       cart.NewPGRepo(pool),
		favourites: favourite.NewPGRepo(pool),
		addresses:  address.NewPGRepo(pool),
		orders:     order.NewPGRepo(pool),
	}, cfg.BcryptCost)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("market-service listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}
