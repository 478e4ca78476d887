package validation

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{" 42 ", 42, false},
		{"-3", -3, false},
		{"9223372036854775807", 9223372036854775807, false},
		{"9223372036854775808", 0, true},
		{"", 0, true},
		{"abc", 0, true},
		{"1.5", 0, true},
		{"0x10", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseID(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidID, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestRequestSizeMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestSizeMiddleware(16))
	r.POST("/projects", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.String(http.StatusBadRequest, "read failed")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/projects", strings.NewReader(`{"a":1}`)))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/projects", strings.NewReader(strings.Repeat("x", 64))))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "request_too_large")

	// Unknown length is cut off while reading.
	req := httptest.NewRequest("POST", "/projects", strings.NewReader(strings.Repeat("x", 64)))
	req.ContentLength = -1
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    Int
		wantErr bool
	}{
		{`20`, 20, false},
		{`20.0`, 20, false},
		{`-3`, -3, false},
		{`"20"`, 20, false},
		{`" 7 "`, 7, false},
		{`"20.0"`, 20, false},
		{`1e2`, 100, false},
		{`20.5`, 0, true},
		{`"abc"`, 0, true},
		{`""`, 0, true},
		{`true`, 0, true},
		{`[1]`, 0, true},
	}

	for _, tt := range tests {
		var got Int
		err := json.Unmarshal([]byte(tt.in), &got)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestInt_PointerField(t *testing.T) {
	var body struct {
		Green *Int `json:"green_ratio"`
	}
	assert.NoError(t, json.Unmarshal([]byte(`{}`), &body))
	assert.Nil(t, body.Green)

	assert.NoError(t, json.Unmarshal([]byte(`{"green_ratio":"25"}`), &body))
	if assert.NotNil(t, body.Green) {
		assert.Equal(t, Int(25), *body.Green)
	}
}
