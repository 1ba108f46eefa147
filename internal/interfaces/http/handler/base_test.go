package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInternalErrorLogsThroughRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/projectors", nil)
	c.Set("logger", zap.New(core))

	h := &BaseHandler{}
	h.InternalError(c, "Failed to fetch projectors", errors.New("store down"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Failed to fetch projectors", entry.Message)
	assert.Equal(t, "store down", entry.ContextMap()["error"])
}

func TestInternalErrorWithoutRequestLogger(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/projectors", nil)

	h := &BaseHandler{}
	h.InternalError(c, "Failed to fetch projectors", errors.New("store down"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch projectors","details":"store down"}`, w.Body.String())
}
