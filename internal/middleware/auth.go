package middleware

import (
	"net/http"
	"strings"

	"dsa_prep_backend/internal/config"
	"dsa_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

// AuthMiddleware 校验访问令牌，过期和非法分别返回不同的提示
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			util.Error(c, http.StatusUnauthorized, "Authorization token required")
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			if err == util.ErrTokenExpired {
				util.Error(c, http.StatusUnauthorized, "Token has expired")
			} else {
				util.Error(c, http.StatusUnauthorized, "Invalid token")
			}
			c.Abort()
			return
		}

		// 刷新令牌不能当访问令牌用
		if claims.TokenType != util.TokenTypeAccess {
			util.Error(c, http.StatusUnauthorized, "Invalid token")
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RefreshMiddleware 只接受刷新令牌，/auth/refresh专用
func RefreshMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			util.Error(c, http.StatusUnauthorized, "Authorization token required")
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			if err == util.ErrTokenExpired {
				util.Error(c, http.StatusUnauthorized, "Token has expired")
			} else {
				util.Error(c, http.StatusUnauthorized, "Invalid token")
			}
			c.Abort()
			return
		}

		if claims.TokenType != util.TokenTypeRefresh {
			util.Error(c, http.StatusUnauthorized, "Refresh token required")
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
