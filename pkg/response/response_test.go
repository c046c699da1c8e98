package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(f func(c *gin.Context)) (*httptest.ResponseRecorder, Response) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	f(c)

	var resp Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestEnvelope(t *testing.T) {
	w, resp := record(func(c *gin.Context) { Created(c, map[string]string{"id": "x"}) })
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)

	w, resp = record(func(c *gin.Context) { MalformedIdentifier(c, "bad") })
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, CodeMalformedIdentifier, resp.Error.Code)
	assert.Equal(t, "bad", resp.Error.Message)
	assert.NotContains(t, w.Body.String(), `"data"`)

	w, resp = record(func(c *gin.Context) { InternalError(c, "boom") })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, CodeInternal, resp.Error.Code)
}
