package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/prepai/api/http/presenter"
	"github.com/artem13815/prepai/pkg/auth"
	"github.com/artem13815/prepai/pkg/security/jwt"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Signup handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body signupRequest true "registration payload"
// @Success 201 {object} userResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	user, err := h.useCase.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return presenter.Fail(c, err, "failed to register user")
	}
	return presenter.JSON(c, http.StatusCreated, userResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} loginResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	result, err := h.useCase.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return presenter.Fail(c, err, "failed to login")
	}
	return presenter.JSON(c, http.StatusOK, loginResponse{
		Token:  result.Token,
		UserID: result.User.ID.String(),
		Email:  result.User.Email,
		Name:   result.User.Name,
	})
}

// Logout revokes the presented token.
// @Summary  Logout
// @Tags     auth
// @Security BearerAuth
// @Success  204
// @Failure  401 {object} presenter.ErrorResponse
// @Router   /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	tokenID, expiresAt := jwt.TokenID(c)
	if err := h.useCase.Logout(c.UserContext(), tokenID, expiresAt); err != nil {
		return presenter.Fail(c, err, "failed to logout")
	}
	return c.SendStatus(http.StatusNoContent)
}
