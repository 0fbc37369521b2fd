// Package middleware provides JWT authentication middleware.
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medpak/webster-service/internal/domain/dto"
	"github.com/medpak/webster-service/internal/i18n"
)

const (
	// PharmacistIDKey is the context key for the authenticated pharmacist id.
	PharmacistIDKey = "pharmacist_id"
	// PharmacistNameKey is the context key for the authenticated pharmacist name.
	PharmacistNameKey = "pharmacist_name"
)

// PharmacistClaims are the claims the pharmacy identity provider puts in its
// tokens. Subject carries the pharmacist id.
type PharmacistClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTAuth returns a middleware that validates bearer tokens issued by the
// pharmacy identity provider and stores the pharmacist identity in the
// request context.
func JWTAuth(secret string) gin.HandlerFunc {
	secretBytes := []byte(secret)

	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired, locale, requestID)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken, locale, requestID)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired, locale, requestID)
			return
		}

		claims := &PharmacistClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secretBytes, nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken, locale, requestID)
			return
		}

		pharmacistID, err := primitive.ObjectIDFromHex(claims.Subject)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken, locale, requestID)
			return
		}

		c.Set(PharmacistIDKey, pharmacistID)
		c.Set(PharmacistNameKey, claims.Name)

		c.Next()
	}
}

// GetPharmacistID retrieves the authenticated pharmacist id from the context.
func GetPharmacistID(c *gin.Context) (primitive.ObjectID, bool) {
	if v, exists := c.Get(PharmacistIDKey); exists {
		if id, ok := v.(primitive.ObjectID); ok {
			return id, true
		}
	}
	return primitive.NilObjectID, false
}

// GetPharmacistName retrieves the authenticated pharmacist name, if present.
func GetPharmacistName(c *gin.Context) string {
	if v, exists := c.Get(PharmacistNameKey); exists {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}

func abortUnauthorized(c *gin.Context, messageKey, locale, requestID string) {
	message := i18n.GetTranslator().Translate(messageKey, locale)
	errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
		WithRequestID(requestID)
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
}
