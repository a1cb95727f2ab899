package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/mercado-granja/internal/cart"
	"github.com/MikeMC777/mercado-granja/internal/errs"
	"github.com/MikeMC777/mercado-granja/internal/httpx"
)

// addToCartHandler godoc
// @Summary  Add a product to a user's cart
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    body body cart.AddRequest true "cart item"
// @Success  200 {object} product.MessageResponse
// @Failure  400 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /cart [post]
func addToCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cart.AddRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		it := &cart.Item{UserID: in.UserID, ProductID: in.ProductID, Quantity: in.Quantity}
		if err := repo.Add(c.Request.Context(), it); err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Failed to add to cart", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product added to cart"})
	}
}

// getCartHandler godoc
// @Summary  Cart contents joined with products
// @Tags     cart
// @Produce  json
// @Param    userId path int true "user id"
// @Success  200 {array}  cart.Line
// @Failure  400 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /cart/{userId} [get]
func getCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := httpx.ParseID(c, "userId")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		lines, err := repo.ListByUser(c.Request.Context(), userID)
		if err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Failed to fetch cart", err))
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

// deleteCartItemHandler godoc
// @Summary  Remove one cart row by its cart id
// @Tags     cart
// @Produce  json
// @Param    cartId path int true "cart row id"
// @Success  200 {object} product.MessageResponse
// @Failure  404 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /cart/{cartId} [delete]
func deleteCartItemHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID, err := httpx.ParseID(c, "cartId")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		ok, err := repo.DeleteByID(c.Request.Context(), cartID)
		if err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Failed to delete cart item", err))
			return
		}
		if !ok {
			httpx.Fail(c, errs.NewNotFoundError("Cart item not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// removeFromCartHandler godoc
// @Summary  Remove a product from a user's cart
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    body body cart.RemoveRequest true "user and product"
// @Success  200 {object} product.MessageResponse
// @Failure  400 {object} product.HTTPError
// @Failure  404 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /cart [delete]
func removeFromCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cart.RemoveRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		n, err := repo.DeleteByUserProduct(c.Request.Context(), in.UserID, in.ProductID)
		if err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Failed to remove from cart", err))
			return
		}
		if n == 0 {
			httpx.Fail(c, errs.NewNotFoundError("Cart item not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart"})
	}
}

// clearCartHandler godoc
// @Summary  Remove every cart row of a user
// @Tags     cart
// @Produce  json
// @Param    userId path int true "user id"
// @Success  200 {object} map[string]interface{}
// @Failure  404 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /users/{userId}/cart [delete]
func clearCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := httpx.ParseID(c, "userId")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		n, err := repo.DeleteByUser(c.Request.Context(), userID)
		if err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Failed to clear cart", err))
			return
		}
		if n == 0 {
			httpx.Fail(c, errs.NewNotFoundError("Cart is already empty"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared", "deleted": n})
	}
}
