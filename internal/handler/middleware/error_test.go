//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"condo-parking/internal/handler/httperr"
	"condo-parking/internal/handler/middleware"
	"condo-parking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performGet(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("public error renders the attached response", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/boom", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusConflict, errs.New("taken"), "Spot is not available", nil)
		})

		w := performGet(router)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Spot is not available"}}`, w.Body.String())
	})

	t.Run("server errors render and keep the wrapped cause out of the body", func(t *testing.T) {
		router := gin.New()
		router.Use(middleware.ErrorHandler())
		router.GET("/boom", func(c *gin.Context) {
			cause := errs.Wrap(errs.New("connection reset"), "failed to load booking")
			httperr.AbortWithError(c, http.StatusInternalServerError, cause, "Internal server error", nil)
		})

		w := performGet(router)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery())
	router.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w := performGet(router)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
}
