package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	autherrors "go-hrm/internal/auth/errors"
	"go-hrm/internal/shared/contextutil"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the bearer token (with a cookie fallback for
// browser clients) and exposes the identity claims on the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token claims", nil)
			c.Abort()
			return
		}

		// Numeric claims decode as float64.
		userIDClaim, ok := claims["user_id"].(float64)
		if !ok || userIDClaim <= 0 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User ID not found in token", nil)
			c.Abort()
			return
		}
		userID := int(userIDClaim)

		username, _ := claims["username"].(string)
		isAdmin, _ := claims["is_admin"].(bool)

		c.Set("user_id", userID)
		c.Set("username", username)
		c.Set("is_admin", isAdmin)

		ctx := contextutil.WithUserID(c.Request.Context(), strconv.Itoa(userID))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
