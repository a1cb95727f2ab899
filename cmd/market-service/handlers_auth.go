package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/mercado-granja/internal/errs"
	"github.com/MikeMC777/mercado-granja/internal/httpx"
	"github.com/MikeMC777/mercado-granja/internal/seller"
	"github.com/MikeMC777/mercado-granja/internal/user"
)

// registerHandler godoc
// @Summary  Register a buyer
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body user.RegisterRequest true "new user"
// @Success  200 {object} product.MessageResponse
// @Failure  400 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /register [post]
func registerHandler(repo user.Repository, cost int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.RegisterRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		hash, err := user.HashPassword(in.Password, cost)
		if err != nil {
			httpx.Fail(c, hashError(err))
			return
		}
		u := &user.User{Email: in.Email, PasswordHash: hash, UserName: in.UserName}
		if err := repo.Create(c.Request.Context(), u); err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Registration failed", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
	}
}

// loginHandler godoc
// @Summary  Buyer login
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body user.LoginRequest true "credentials"
// @Success  200 {object} user.User
// @Failure  401 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /login [post]
func loginHandler(repo user.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.LoginRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		u, err := repo.GetByEmail(c.Request.Context(), in.Email)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				httpx.Fail(c, errs.NewUnauthorizedError("Invalid credentials"))
				return
			}
			httpx.Fail(c, errs.NewPersistenceError("Login failed", err))
			return
		}
		if !user.CheckPassword(u.PasswordHash, in.Password) {
			httpx.Fail(c, errs.NewUnauthorizedError("Invalid credentials"))
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// registerFarmerHandler godoc
// @Summary  Register a farmer store
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body seller.RegisterRequest true "new seller"
// @Success  200 {object} product.MessageResponse
// @Failure  400 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /register-farmer [post]
func registerFarmerHandler(repo seller.Repository, cost int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in seller.RegisterRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		hash, err := user.HashPassword(in.Password, cost)
		if err != nil {
			httpx.Fail(c, hashError(err))
			return
		}
		s := &seller.Seller{Email: in.Email, PasswordHash: hash, StoreName: in.StoreName, ContactNumber: in.ContactNumber}
		if err := repo.Create(c.Request.Context(), s); err != nil {
			httpx.Fail(c, errs.NewPersistenceError("Registration failed", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Farmer registered successfully"})
	}
}

// loginFarmerHandler godoc
// @Summary  Farmer login
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body user.LoginRequest true "credentials"
// @Success  200 {object} seller.Seller
// @Failure  401 {object} product.HTTPError
// @Failure  500 {object} product.HTTPError
// @Router   /login-farmer [post]
func loginFarmerHandler(repo seller.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.LoginRequest
		if err := httpx.Bind(c, &in); err != nil {
			httpx.Fail(c, err)
			return
		}
		s, err := repo.GetByEmail(c.Request.Context(), in.Email)
		if err != nil {
			if errors.Is(err, seller.ErrNotFound) {
				httpx.Fail(c, errs.NewUnauthorizedError("Invalid credentials"))
				return
			}
			httpx.Fail(c, errs.NewPersistenceError("Login failed", err))
			return
		}
		if !user.CheckPassword(s.PasswordHash, in.Password) {
			httpx.Fail(c, errs.NewUnauthorizedError("Invalid credentials"))
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

func hashError(err error) error {
	if errors.Is(err, user.ErrPasswordTooLong) {
		return errs.NewValidationError("Password too long")
	}
	return errs.NewPersistenceError("Registration failed", err)
}
