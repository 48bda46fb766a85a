package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/utils"
	"golang.org/x/crypto/bcrypt"

	"productapi/internal/dto"
)

// BasicAuth builds the write gate: HTTP Basic authentication against the
// configured principals. Plaintext passwords from the config are hashed once
// at startup so per-request comparison never touches them directly. Requests
// without valid credentials get a 401 envelope.
func BasicAuth(users map[string]string) fiber.Handler {
	hashed := make(map[string][]byte, len(users))
	for username, password := range users {
		// bcrypt only errors on over-long input, which config parsing caps.
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			continue
		}
		hashed[username] = hash
	}

	return basicauth.New(basicauth.Config{
		Realm: "Restricted",
		Authorizer: func(username, password string) bool {
			hash, ok := hashed[username]
			if !ok {
				return false
			}
			return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
		},
		Unauthorized: func(c *fiber.Ctx) error {
			c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="Restricted"`)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Timestamp: time.Now(),
				Status:    fiber.StatusUnauthorized,
				Error:     utils.StatusMessage(fiber.StatusUnauthorized),
				Message:   "Authentication required",
				Path:      c.Path(),
			})
		},
	})
}
