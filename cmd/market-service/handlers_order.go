package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/mercado-granja/internal/address"
	"github.com/MikeMC777/mercado-granja/internal/errs"
	"github.com/MikeMC777/mercado-granja/internal/httpx"
	"github.com/MikeMC777/mercado-granja/internal/order"
)

// resolveAddress picks the order's address: explicit id, then matching fields, then the user's primary.
func resolveAddress(ctx context.Context, repo address.Repository, in order.CreateOrderRequest) (*address.Address, error) {
	switch {
	case in.AddressID > 0:
		return repo.GetForUser(ctx, in.AddressID, in.UserID)
	case in.Address != nil:
		return repo.FindByFields(ctx, in.UserID, *in.Address)
	default:
		return repo.Primary(ctx, in.UserID)
	}
}

// createOrderHandler godoc
// @Summary  Place an order, optionally with its line items in the same transaction
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body order.CreateOrderRequest true "order"
// @Success  200 {object} order.Order
// @Failure  400 {object} product.HTTPError
// @Failure  404 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /orders [post]
func createOrderHandler(orders order.Repository, addrs address.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CreateOrderRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}

		ctx := c.Request.Context()
		addr, err := resolveAddress(ctx, addrs, in)
		if err != nil {
			if errors.Is(err, address.ErrNotFound) {
				httpx.Fail(c, errs.NewNotFoundError("Address not found"))
				return
			}
			httpx.Fail(c, errs.NewPersistenceError("Failed to create order", err))
			return
		}

		items := make([]order.Detail, 0, len(in.Items))
		for _, it := range in.Items {
			items = append(items, order.Detail{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price.StringFixed(2),
			})
		}
		o := &order.Order{
			UserID:     in.UserID,
			TotalPrice: in.TotalPrice.StringFixed(2),
			AddressID:  addr.ID,
		}
		if err := orders.Create(ctx, o, items); err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Failed to create order", err))
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// getOrderHandler godoc
// @Summary  An order with its line items
// @Tags     orders
// @Produce  json
// @Param    orderId path int true "order id"
// @Success  200 {object} order.Order
// @Failure  404 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /orders/{orderId} [get]
func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParseID(c, "orderId")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		o, items, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, order.ErrNotFound) {
				httpx.Fail(c, errs.NewNotFoundError("Order not found"))
				return
			}
			httpx.Fail(c, errs.NewPersistenceError("Failed to fetch order", err))
			return
		}
		o.Items = items
		c.JSON(http.StatusOK, o)
	}
}

// listOrdersByUserHandler godoc
// @Summary  Orders of a user, newest first
// @Tags     orders
// @Produce  json
// @Param    userId path int true "user id"
// @Success  200 {array}  order.Order
// @Failure  400 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /users/{userId}/orders [get]
func listOrdersByUserHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := httpx.ParseID(c, "userId")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		out, err := repo.ListByUser(c.Request.Context(), userID)
		if err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Failed to fetch orders", err))
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// createOrderDetailHandler godoc
// @Summary  Append a line item to an existing order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body order.CreateDetailRequest true "line item"
// @Success  200 {object} order.Detail
// @Failure  400 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /order-details [post]
func createOrderDetailHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CreateDetailRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		d := &order.Detail{
			OrderID:   in.OrderID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			Price:     in.Price.StringFixed(2),
		}
		if err := repo.AddDetail(c.Request.Context(), d); err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Failed to add order detail", err))
			return
		}
		c.JSON(http.StatusOK, d)
	}
}
