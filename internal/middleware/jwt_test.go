package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims PharmacistClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func jwtTestRouter() (*gin.Engine, *primitive.ObjectID) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	var captured primitive.ObjectID
	router.Use(JWTAuth(testSecret))
	router.GET("/protected", func(c *gin.Context) {
		if id, ok := GetPharmacistID(c); ok {
			captured = id
		}
		c.JSON(http.StatusOK, gin.H{"name": GetPharmacistName(c)})
	})
	return router, &captured
}

func TestJWTAuth(t *testing.T) {
	pharmacistID := primitive.NewObjectID()

	validClaims := PharmacistClaims{
		Name: "Priya Sharma",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   pharmacistID.Hex(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	tests := []struct {
		name           string
		authorization  string
		expectedStatus int
	}{
		{
			name:           "valid token",
			authorization:  "Bearer " + signTokenHelper(t, validClaims),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			authorization:  "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not a bearer token",
			authorization:  "Basic abc123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty bearer token",
			authorization:  "Bearer ",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			authorization:  "Bearer not.a.token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			authorization: "Bearer " + signTokenHelper(t, PharmacistClaims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   pharmacistID.Hex(),
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				},
			}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "subject is not an object id",
			authorization: "Bearer " + signTokenHelper(t, PharmacistClaims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "someone",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, captured := jwtTestRouter()

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, pharmacistID, *captured)
				assert.Contains(t, w.Body.String(), "Priya Sharma")
			}
		})
	}
}

func signTokenHelper(t *testing.T, claims PharmacistClaims) string {
	return signToken(t, testSecret, claims)
}

func TestJWTAuth_RejectsWrongSecret(t *testing.T) {
	router, _ := jwtTestRouter()

	claims := PharmacistClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   primitive.NewObjectID().Hex(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", claims))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetPharmacistID_Absent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetPharmacistID(c)
	assert.False(t, ok)
	assert.Empty(t, GetPharmacistName(c))
}
