package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/martijn/habilitations/internal/api/dto"
	"github.com/rs/zerolog/log"
)

const (
	AuthContextKey = "admin"
	authRealm      = `Basic realm="habilitations"`
)

// Authenticator checks administrator credentials
type Authenticator interface {
	Authenticate(ctx context.Context, lastName, firstName, password string) (bool, error)
}

// AdminIdentity is stored in the gin context once a request is authenticated
type AdminIdentity struct {
	LastName  string
	FirstName string
}

// AuthMiddleware checks HTTP Basic credentials on every request. The username
// is "LastName/FirstName". Nothing is kept between requests.
func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			unauthorized(c, "Missing basic authorization header")
			return
		}

		lastName, firstName, found := strings.Cut(username, "/")
		if !found || lastName == "" || firstName == "" {
			unauthorized(c, "Invalid username format. Expected 'LastName/FirstName'")
			return
		}

		granted, err := auth.Authenticate(c.Request.Context(), lastName, firstName, password)
		if err != nil {
			log.Error().Err(err).Msg("Authentication check failed")
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Internal Server Error",
				Message: "Authentication is unavailable",
				Code:    http.StatusInternalServerError,
			})
			c.Abort()
			return
		}
		if !granted {
			unauthorized(c, "Invalid credentials")
			return
		}

		c.Set(AuthContextKey, AdminIdentity{LastName: lastName, FirstName: firstName})
		c.Next()
	}
}

// GetAdminIdentity retrieves the authenticated administrator from context
func GetAdminIdentity(c *gin.Context) (AdminIdentity, bool) {
	value, exists := c.Get(AuthContextKey)
	if !exists {
		return AdminIdentity{}, false
	}

	identity, ok := value.(AdminIdentity)
	return identity, ok
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", authRealm)
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error:   "Unauthorized",
		Message: message,
		Code:    http.StatusUnauthorized,
	})
	c.Abort()
}
