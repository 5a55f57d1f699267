package handler

import (
	"github.com/Brunera17/TCC/internal/auth/dto"
	"github.com/Brunera17/TCC/internal/auth/service"
	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/Brunera17/TCC/internal/middleware"
	"github.com/Brunera17/TCC/pkg/httputil"
	"github.com/Brunera17/TCC/pkg/validator"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	userService  *service.UserService
	tokenService service.TokenGenerator
	validator    *validator.Validator
}

func NewAuthHandler(userService *service.UserService, tokenService service.TokenGenerator) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		tokenService: tokenService,
		validator:    validator.NewValidator(),
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := httputil.Bind(c, h.validator, &input); err != nil {
		return httputil.BadRequest(c, err)
	}

	user, err := h.userService.Register(c.UserContext(), input)
	if err != nil {
		return httputil.WriteError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewUserOutput(user))
}

// CreateUser is mounted behind RequireRole("admin") and may set any role.
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := httputil.Bind(c, h.validator, &input); err != nil {
		return httputil.BadRequest(c, err)
	}

	user, err := h.userService.CreateUser(c.UserContext(), input)
	if err != nil {
		return httputil.WriteError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewUserOutput(user))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := httputil.Bind(c, h.validator, &input); err != nil {
		return httputil.BadRequest(c, err)
	}
	input.IPAddress = c.IP()

	tokenPair, err := h.userService.Login(c.UserContext(), input)
	if err != nil {
		return httputil.WriteError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokenPair)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := httputil.Bind(c, h.validator, &input); err != nil {
		return httputil.BadRequest(c, err)
	}

	tokens, err := h.userService.Refresh(c.UserContext(), input)
	if err != nil {
		return httputil.WriteError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tokens)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var input dto.RefreshInput
	if err := httputil.Bind(c, h.validator, &input); err != nil {
		return httputil.BadRequest(c, err)
	}

	if err := h.userService.Logout(c.UserContext(), input); err != nil {
		return httputil.WriteError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "logged out"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, ok := middleware.CurrentUser(c)
	if !ok {
		return httputil.WriteError(c, autherror.ErrTokenInvalid)
	}

	user, err := h.userService.Me(c.UserContext(), claims.UserID)
	if err != nil {
		return httputil.WriteError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.NewUserOutput(user))
}

// RequireAuth admits requests carrying a valid access token.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return middleware.RequireAuth(h.tokenService)
}

// RequireRole admits authenticated requests whose role is one of roles.
func (h *AuthHandler) RequireRole(roles ...string) fiber.Handler {
	return middleware.RequireRole(h.tokenService, roles...)
}
