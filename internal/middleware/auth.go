package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/renohub/backend/internal/models"
	"github.com/renohub/backend/internal/roles"
	"github.com/renohub/backend/internal/utils"
	"github.com/renohub/backend/pkg/response"
	"gorm.io/gorm"
)

const (
	ContextUserID   = "user_id"
	ContextEmail    = "email"
	ContextRole     = "role"
	ContextMetadata = "metadata"
	ContextClaims   = "claims"
)

// Guard fallback routes, one per gate variant.
const (
	RedirectLogin     = "/login"
	RedirectDashboard = "/dashboard"
	RedirectSignin    = "/signin"
)

// AuthRequired validates the Bearer session token and loads the caller's
// profile into the request context. The profile fetch is best effort:
// when it fails, the role gates fall through to their other sources
// instead of failing the request here.
func AuthRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Denied(c, http.StatusUnauthorized, "authorization header required", RedirectLogin)
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Denied(c, http.StatusUnauthorized, "invalid authorization header format", RedirectLogin)
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			response.Denied(c, http.StatusUnauthorized, "invalid or expired token", RedirectLogin)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextClaims, claims)

		var user models.User
		if err := db.Select("id", "role", "metadata").First(&user, claims.UserID).Error; err == nil {
			c.Set(ContextRole, user.Role)
			c.Set(ContextMetadata, user.Metadata)
		}

		c.Next()
	}
}

// roleResolver builds the precedence chain for a request: loaded profile
// role, session token claim, provider metadata, then a direct profile
// re-query. The profile role, when present, is authoritative; the later
// sources only cover windows where it has not been loaded yet.
func roleResolver(c *gin.Context, db *gorm.DB) *roles.Resolver {
	return roles.NewResolver(
		roles.Source{Name: "profile", Lookup: func() (string, error) {
			if role, exists := c.Get(ContextRole); exists {
				return role.(string), nil
			}
			return "", nil
		}},
		roles.Source{Name: "token_claim", Lookup: func() (string, error) {
			if claims, exists := c.Get(ContextClaims); exists {
				return claims.(*utils.Claims).AppRole, nil
			}
			return "", nil
		}},
		roles.Source{Name: "provider_metadata", Lookup: func() (string, error) {
			if metadata, exists := c.Get(ContextMetadata); exists {
				return roles.FromMetadata(metadata.(string))
			}
			return "", nil
		}},
		roles.Source{Name: "profile_requery", Lookup: func() (string, error) {
			var user models.User
			if err := db.Select("role").First(&user, GetUserID(c)).Error; err != nil {
				return "", err
			}
			return user.Role, nil
		}},
	)
}

// CoachRequired gates a route group to coaches. All sources missing or
// failing means denied, never granted.
func CoachRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := roleResolver(c, db).Resolve()
		if !roles.IsCoach(role) {
			response.Denied(c, http.StatusForbidden, "coach access required", RedirectDashboard)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ServiceProRequired gates a route group to service professionals.
// Both historical role spellings are accepted.
func ServiceProRequired(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := roleResolver(c, db).Resolve()
		if !roles.IsServicePro(role) {
			response.Denied(c, http.StatusForbidden, "service pro access required", RedirectSignin)
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID gets the current user ID from context
func GetUserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextUserID); exists {
		return id.(uint)
	}
	return 0
}

// GetEmail gets the current user email from context
func GetEmail(c *gin.Context) string {
	if email, exists := c.Get(ContextEmail); exists {
		return email.(string)
	}
	return ""
}

// GetRole gets the current user role from context
func GetRole(c *gin.Context) string {
	if role, exists := c.Get(ContextRole); exists {
		return role.(string)
	}
	return ""
}
