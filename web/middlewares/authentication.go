package middlewares

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"shiftbook.com.au/shiftbook/web/common"
)

func parseJwt(tokenStr string, jwtSecret []byte) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})
	return token, err
}

// Authentication checks for a valid Bearer token, falling back to the
// application cookie for browser clients.
func Authentication(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			cookie, err := c.Cookie("shiftbook.ApplicationCookie")
			if err != nil {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = cookie
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			tokenStr = parts[1]
		}

		token, err := parseJwt(tokenStr, jwtSecret)

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("invalid or expired token"))
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok && int64(exp) < time.Now().Unix() {
				c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("token expired"))
				return
			}

			c.Set("claims", claims)
		}

		c.Next()
	}
}

// CreateJWT mints a device token for the API.
func CreateJWT(deviceID string, jwtSecret []byte, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:    "shiftbook",
		Subject:   deviceID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}
