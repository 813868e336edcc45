package middleware

import (
	"errors"
	"fmt"
	"os"

	autherrors "qaleb-store/internal/auth/errors"
	"qaleb-store/internal/pkg/apperror"
	"qaleb-store/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type sessionClaims struct {
	UserID string
	Role   string
}

// parseAccessToken reads the access_token cookie and verifies it. HMAC
// only; tokens signed with any other method are rejected.
func parseAccessToken(c *gin.Context) (sessionClaims, error) {
	tokenString, err := c.Cookie("access_token")
	if err != nil {
		return sessionClaims{}, autherrors.ErrUnauthorized
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return sessionClaims{}, autherrors.ErrTokenExpired
		}
		return sessionClaims{}, autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return sessionClaims{}, autherrors.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return sessionClaims{}, autherrors.ErrInvalidToken
	}
	role, _ := claims["role"].(string)

	return sessionClaims{UserID: userID, Role: role}, nil
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseAccessToken(c)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		c.Set("user_id_validated", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("role")

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.Error(c, autherrors.ErrForbidden.HTTPStatus, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message, nil)
		c.Abort()
	}
}
