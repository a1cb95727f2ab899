package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MikeMC777/mercado-granja/internal/address"
	"github.com/MikeMC777/mercado-granja/internal/cart"
	"github.com/MikeMC777/mercado-granja/internal/favourite"
	"github.com/MikeMC777/mercado-granja/internal/httpx"
	"github.com/MikeMC777/mercado-granja/internal/order"
	"github.com/MikeMC777/mercado-granja/internal/product"
	"github.com/MikeMC777/mercado-granja/internal/seller"
	"github.com/MikeMC777/mercado-granja/internal/user"
)

type repos struct {
	users      user.Repository
	sellers    seller.Repository
	products   product.Repository
	cart       cart.Repository
	favourites favourite.Repository
	addresses  address.Repository
	orders     order.Repository
}

func newRouter(log zerolog.Logger, db pinger, rp repos, bcryptCost int) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(log), httpx.CORS())

	r.GET("/healthz", healthHandler(db))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/register", registerHandler(rp.users, bcryptCost))
	r.POST("/login", loginHandler(rp.users))
	r.POST("/register-farmer", registerFarmerHandler(rp.sellers, bcryptCost))
	r.POST("/login-farmer", loginFarmerHandler(rp.sellers))

	r.GET("/products", listProductsHandler(rp.products))
	r.GET("/products/:productId", getProductHandler(rp.products))
	r.POST("/products", createProductHandler(rp.products))

	r.POST("/cart", addToCartHandler(rp.cart))
	r.GET("/cart/:userId", getCartHandler(rp.cart))
	r.DELETE("/cart/:cartId", deleteCartItemHandler(rp.cart))
	r.DELETE("/cart", removeFromCartHandler(rp.cart))
	r.DELETE("/users/:userId/cart", clearCartHandler(rp.cart))

	r.POST("/favourites", addFavouriteHandler(rp.favourites))
	r.GET("/favourites/:userId", listFavouritesHandler(rp.favourites))
	r.DELETE("/favourites", removeFavouriteHandler(rp.favourites))

	r.POST("/address", createAddressHandler(rp.addresses))
	r.GET("/address/:userId", getAddressHandler(rp.addresses))

	r.POST("/orders", createOrderHandler(rp.orders, rp.addresses))
	r.GET("/orders/:orderId", getOrderHandler(rp.orders))
	r.GET("/users/:userId/orders", listOrdersByUserHandler(rp.orders))
	r.POST("/order-details", createOrderDetailHandler(rp.orders))

	return r
}
