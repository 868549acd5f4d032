package middleware

import (
	"fmt"
	"os"
	"strings"

	"github.com/arjun-629/WealthNest/config"
	"github.com/arjun-629/WealthNest/models"
	"github.com/arjun-629/WealthNest/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

// AuthMiddleware verifies the bearer token and loads the user into context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.LogError("Missing Authorization header")
			utils.Unauthorized(c, "Access token required")
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			utils.LogError("Invalid token: %v", err)
			utils.Forbidden(c, "Invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			utils.LogError("Invalid token claims")
			utils.Forbidden(c, "Invalid or expired token")
			c.Abort()
			return
		}

		userIDClaim, ok := claims["user_id"].(float64)
		if !ok {
			utils.LogError("User ID not found in token claims")
			utils.Forbidden(c, "Invalid or expired token")
			c.Abort()
			return
		}

		userID := uint(userIDClaim)
		utils.LogDebug("Authenticating user ID: %d", userID)

		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			utils.LogError("User not found: %v", err)
			utils.Unauthorized(c, "User not found")
			c.Abort()
			return
		}

		if !user.IsActive {
			utils.LogError("Deactivated user attempted access: %d", userID)
			utils.Forbidden(c, "Account is deactivated")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// AdminMiddleware requires the authenticated user to be an admin
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userVal, exists := c.Get("user")
		if !exists {
			utils.LogError("User not found in context")
			utils.Unauthorized(c, "User not found in context")
			c.Abort()
			return
		}

		user, ok := userVal.(models.User)
		if !ok {
			utils.LogError("Invalid user type in context")
			utils.InternalServerError(c)
			c.Abort()
			return
		}

		if !user.IsAdmin {
			utils.LogError("Non-admin user attempted admin access: %d", user.ID)
			utils.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		c.Next()
	}
}
