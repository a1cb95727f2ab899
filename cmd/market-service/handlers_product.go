package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/mercado-granja/internal/errs"
	"github.com/MikeMC777/mercado-granja/internal/httpx"
	"github.com/MikeMC777/mercado-granja/internal/product"
)

// listProductsHandler godoc
// @Summary  List every product
// @Tags     products
// @Produce  json
// @Success  200 {array}  product.Product
// @Failure  500 {object} product.HTTPError
// @Router   /products [get]
func listProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.List(c.Request.Context())
		if err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Failed to fetch products", err))
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// getProductHandler godoc
// @Summary  Get a product
// @Tags     products
// @Produce  json
// @Param    productId path int true "product id"
// @Success  200 {object} product.Product
// @Failure  400 {object} product.HTTPError
// @Failure  404 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /products/{productId} [get]
func getProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := httpx.ParseID(c, "productId")
		if err != nil {
			httpx.Fail(c, err)
			return
		}
		p, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, product.ErrNotFound) {
				httpx.Fail(c, errs.NewNotFoundError("Product not found"))
				return
			}
			httpx.Fail(c, errs.NewPersistenceError("Failed to fetch product", err))
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// createProductHandler godoc
// @Summary  Publish a product for a seller
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    body body product.CreateProductRequest true "product"
// @Success  200 {object} product.MessageResponse
// @Failure  400 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /products [post]
func createProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in product.CreateProductRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		p := &product.Product{
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price.StringFixed(2),
			ImageURL:    in.ImageURL,
			SellerID:    in.SellerID,
		}
		if err := repo.Create(c.Request.Context(), p); err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Failed to add product", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product added successfully"})
	}
}
