package middleware

import (
	"errors"
	"strings"

	"github.com/Brunera17/TCC/internal/auth/service"
	autherror "github.com/Brunera17/TCC/internal/errors"
	"github.com/Brunera17/TCC/internal/metrics"
	"github.com/gofiber/fiber/v2"
)

const userKey = "user"

// RequireAuth verifies the Bearer access token and stores its claims in the
// request locals.
func RequireAuth(tokens service.TokenGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := authenticate(c, tokens); err != nil {
			return unauthorized(c, err)
		}
		return c.Next()
	}
}

// RequireRole authenticates the request if an earlier handler has not done so
// and then checks the role.
func RequireRole(tokens service.TokenGenerator, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		claims, ok := CurrentUser(c)
		if !ok {
			var err error
			if claims, err = authenticate(c, tokens); err != nil {
				return unauthorized(c, err)
			}
		}
		if _, ok := allowed[claims.Role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": autherror.ErrForbidden.Error()})
		}
		return c.Next()
	}
}

// CurrentUser returns the identity stored by RequireAuth or RequireRole.
func CurrentUser(c *fiber.Ctx) (service.UserClaims, bool) {
	claims, ok := c.Locals(userKey).(service.UserClaims)
	return claims, ok
}

func authenticate(c *fiber.Ctx, tokens service.TokenGenerator) (service.UserClaims, error) {
	header := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return service.UserClaims{}, autherror.ErrTokenInvalid
	}

	claims, err := tokens.VerifyAccessToken(parts[1])
	metrics.TokenVerifications.WithLabelValues("access", metrics.Outcome(err)).Inc()
	if err != nil {
		return service.UserClaims{}, err
	}

	user := claims.Subject()
	c.Locals(userKey, user)
	return user, nil
}

func unauthorized(c *fiber.Ctx, err error) error {
	msg := autherror.ErrTokenInvalid.Error()
	if errors.Is(err, autherror.ErrTokenExpired) {
		msg = err.Error()
	}
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
