package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCustomClaimsHasScope(t *testing.T) {
	claims := CustomClaims{Scope: "read:orders admin:orders"}

	assert.True(t, claims.HasScope("admin:orders"))
	assert.True(t, claims.HasScope("read:orders"))
	assert.False(t, claims.HasScope("write:orders"))

	empty := CustomClaims{}
	assert.False(t, empty.HasScope("admin:orders"))
}

func TestCustomClaimsValidate(t *testing.T) {
	claims := CustomClaims{Scope: "admin:orders"}
	assert.NoError(t, claims.Validate(context.Background()))
}

func TestGetClaimsMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	claims, err := GetClaims(c)
	assert.Nil(t, claims)
	assert.Error(t, err)

	authErr, ok := err.(*AuthError)
	assert.True(t, ok)
	assert.Equal(t, "MISSING_CLAIMS", authErr.Code)
}

func TestGetClaimsPresent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	validated := &validator.ValidatedClaims{
		CustomClaims: &CustomClaims{Scope: "admin:orders"},
	}
	c.Set("validated_claims", validated)

	claims, err := GetClaims(c)
	assert.NoError(t, err)
	assert.Equal(t, validated, claims)
}

func TestRequireScopeWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", RequireScope("admin:orders"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireScopeInsufficient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected",
		func(c *gin.Context) {
			c.Set("validated_claims", &validator.ValidatedClaims{
				CustomClaims: &CustomClaims{Scope: "read:orders"},
			})
		},
		RequireScope("admin:orders"),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireScopeGranted(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected",
		func(c *gin.Context) {
			c.Set("validated_claims", &validator.ValidatedClaims{
				CustomClaims: &CustomClaims{Scope: "read:orders admin:orders"},
			})
		},
		RequireScope("admin:orders"),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
