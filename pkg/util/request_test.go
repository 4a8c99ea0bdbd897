package util

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	id, ok := ParseID("12")
	assert.True(t, ok)
	assert.Equal(t, uint(12), id)

	for _, s := range []string{"", "0", "-1", "abc", "1.5"} {
		_, ok := ParseID(s)
		assert.False(t, ok, s)
	}
}

func TestBindJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bind := func(body string) (map[string]any, error) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")

		v := map[string]any{}
		return v, BindJSON(c, &v)
	}

	v, err := bind(`{"title":"x"}`)
	assert.NoError(t, err)
	assert.Equal(t, "x", v["title"])

	v, err = bind("")
	assert.NoError(t, err)
	assert.Empty(t, v)

	_, err = bind("{nope")
	assert.Error(t, err)
}
