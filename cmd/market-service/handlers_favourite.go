package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/mercado-granja/internal/errs"
	"github.com/MikeMC777/mercado-granja/internal/favourite"
	"github.com/MikeMC777/mercado-granja/internal/httpx"
)

// addFavouriteHandler godoc
// @Summary  Mark a product as favourite
// @Tags     favourites
// @Accept   json
// @Produce  json
// @Param    body body favourite.Request true "user and product"
// @Success  200 {object} product.MessageResponse
// @Failure  400 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /favourites [post]
func addFavouriteHandler(repo favourite.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in favourite.Request
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		if err := repo.Add(c.Request.Context(), &favourite.Favourite{UserID: in.UserID, ProductID: in.ProductID}); err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Failed to add to favourites", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product added to favourites"})
	}
}

// listFavouritesHandler godoc
// @Summary  Favourites joined with products
// @Tags     favourites
// @Produce  json
// @Param    userId path int true "user id"
// @Success  200 {array}  favourite.Line
// @Failure  400 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /favourites/{userId} [get]
func listFavouritesHandler(repo favourite.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := httpx.ParseID(c, "userId")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		lines, err := repo.ListByUser(c.Request.Context(), userID)
		if err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Failed to fetch favourites", err))
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

// removeFavouriteHandler godoc
// @Summary  Unmark a favourite product
// @Tags     favourites
// @Accept   json
// @Produce  json
// @Param    body body favourite.Request true "user and product"
// @Success  200 {object} product.MessageResponse
// @Failure  400 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /favourites [delete]
func removeFavouriteHandler(repo favourite.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in favourite.Request
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		if _, err := repo.Remove(c.Request.Context(), in.UserID, in.ProductID); err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Failed to remove from favourites", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from favourites"})
	}
}
