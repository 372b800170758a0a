package handler

import (
	"errors"
	"net/http"

	"mediavault/backend/common"
	"mediavault/backend/model"
	"mediavault/backend/service"

	"github.com/gin-gonic/gin"
)

// UserHandler serves register and login.
type UserHandler struct {
	auth *service.AuthService
}

func NewUserHandler(auth *service.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, "Email and password required")
		return
	}

	result, err := h.auth.Register(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCredentials):
			common.RespError(c, http.StatusBadRequest, "Email and password required")
		case errors.Is(err, model.ErrDuplicateEmail):
			common.RespError(c, http.StatusBadRequest, "Email already registered")
		default:
			common.SysError("register failed: " + err.Error())
			common.RespError(c, http.StatusInternalServerError, "Registration failed")
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *UserHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespError(c, http.StatusBadRequest, "Invalid credentials")
		return
	}

	result, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			common.RespError(c, http.StatusBadRequest, "Invalid credentials")
		} else {
			common.SysError("login failed: " + err.Error())
			common.RespError(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
