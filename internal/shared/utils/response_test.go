package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpndash/vpndash/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorResponseWithError_AppError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponseWithError(c, fmt.Errorf("wrap: %w", errors.NewConflictError("connection already active")))

	assert.Equal(t, http.StatusConflict, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "conflict", resp.Error.Type)
	assert.Equal(t, "connection already active", resp.Error.Message)
}

func TestErrorResponseWithError_HidesInternalDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponseWithError(c, fmt.Errorf("dial tcp 10.0.0.3:3306: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.3")
}

func TestSuccessResponse(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})

	assert.JSONEq(t, `{"success":true,"data":{"status":"ok"}}`, w.Body.String())
}
