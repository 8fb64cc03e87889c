// Package handler exposes the users feature over HTTP.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront_backend/internal/api"
	"storefront_backend/internal/feature/users/domain/entity"
	"storefront_backend/internal/feature/users/transport/http/dto"
	"storefront_backend/internal/feature/users/usecase"
)

// UserUsecase is the consumer-side contract the handler depends on.
type UserUsecase interface {
	Signup(ctx context.Context, in usecase.NewUser) (string, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
	GetAll(ctx context.Context) ([]entity.User, error)
	GetDetail(ctx context.Context, id int64) (entity.User, error)
	Update(ctx context.Context, id int64, in usecase.UserUpdate) (entity.User, error)
	Delete(ctx context.Context, id int64) (entity.User, error)
}

// UserHandler handles the /users routes.
type UserHandler struct {
	users UserUsecase
	log   zerolog.Logger
	errs  api.ErrorWriter
}

// NewUserHandler builds the handler with its injected dependencies.
func NewUserHandler(users UserUsecase, log zerolog.Logger, errs api.ErrorWriter) *UserHandler {
	return &UserHandler{users: users, log: log, errs: errs}
}

// Create registers a new account and replies with a signed token for it.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	token, err := h.users.Signup(c.Request.Context(), usecase.NewUser{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Username:  req.Username,
		Password:  req.Password,
	})
	if err != nil {
		h.log.Warn().Err(err).Str("username", req.Username).Msg("signup failed")
		h.errs.Write(c, err)
		return
	}

	h.log.Info().Str("username", req.Username).Msg("user created")
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// Authenticate exchanges a username/password pair for a token.
func (h *UserHandler) Authenticate(c *gin.Context) {
	var req dto.AuthReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	token, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			h.log.Warn().Str("username", req.Username).Str("remote_addr", c.ClientIP()).Msg("login failed")
			c.String(http.StatusUnauthorized, "username or password is incorrect, plz check again")
			return
		}
		h.errs.Write(c, err)
		return
	}

	h.log.Info().Str("username", req.Username).Msg("user login successful")
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

func (h *UserHandler) Index(c *gin.Context) {
	users, err := h.users.GetAll(c.Request.Context())
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Show(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}

	user, err := h.users.GetDetail(c.Request.Context(), id)
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BindError(c, err)
		return
	}

	user, err := h.users.Update(c.Request.Context(), req.ID, usecase.UserUpdate{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
	})
	if err != nil {
		h.errs.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return
	}

	if _, err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.errs.Write(c, err)
		return
	}
	c.String(http.StatusOK, "Delete id successfully")
}
