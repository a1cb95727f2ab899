package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/mercado-granja/internal/address"
	"github.com/MikeMC777/mercado-granja/internal/errs"
	"github.com/MikeMC777/mercado-granja/internal/httpx"
)

// createAddressHandler godoc
// @Summary  Add a shipping address
// @Tags     address
// @Accept   json
// @Produce  json
// @Param    body body address.CreateRequest true "address"
// @Success  200 {object} address.Address
// @Failure  400 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /address [post]
func createAddressHandler(repo address.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in address.CreateRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		a := &address.Address{
			UserID:      in.UserID,
			AddressLine: in.AddressLine,
			City:        in.City,
			PostalCode:  in.PostalCode,
			Country:     in.Country,
			IsDefault:   in.IsDefault,
		}
		if err := repo.Create(c.Request.Context(), a); err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Failed to save address", err))
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

// getAddressHandler godoc
// @Summary  The user's default address, else the earliest one
// @Tags     address
// @Produce  json
// @Param    userId path int true "user id"
// @Success  200 {object} address.Address
// @Failure  404 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /address/{userId} [get]
func getAddressHandler(repo address.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := httpx.ParseID(c, "userId")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		a, err := repo.Primary(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, address.ErrNotFound) {
				httpx.Fail(c, errs.NewNotFoundError("No address found"))
				return
			}
			httpx.Fail(c, errs.NewPersistenceError("Failed to fetch address", err))
			return
		}
		c.JSON(http.StatusOK, a)
	}
}
