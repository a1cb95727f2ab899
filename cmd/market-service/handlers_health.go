package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/mercado-granja/internal/httpx"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// healthHandler godoc
// @Summary  Liveness and database reachability
// @Tags     system
// @Produce  plain
// @Success  200 {string} string "ok"
// @Failure  503 {object} product.HTTPError
// @Router   /healthz [get]
func healthHandler(db pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			l := httpx.LoggerFrom(c)
			l.Error().Err(err).Msg("database ping failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
			return
		}
		c.String(http.StatusOK, "ok")
	}
}
