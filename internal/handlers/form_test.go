package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"portfolio/internal/auth"
	"portfolio/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func formContext(form url.Values) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/add/skill", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c
}

func TestReadForm(t *testing.T) {
	fields := []field{required("title"), optional("link")}

	t.Run("empty value counts as present", func(t *testing.T) {
		vals, err := readForm(formContext(url.Values{"title": {""}}), fields)
		require.NoError(t, err)
		assert.Equal(t, formValues{"title": "", "link": ""}, vals)
	})

	t.Run("values are kept verbatim", func(t *testing.T) {
		vals, err := readForm(formContext(url.Values{"title": {"  spaced  "}, "link": {"x"}}), fields)
		require.NoError(t, err)
		assert.Equal(t, "  spaced  ", vals["title"])
		assert.Equal(t, "x", vals["link"])
	})

	t.Run("missing required field", func(t *testing.T) {
		_, err := readForm(formContext(url.Values{"link": {"x"}}), fields)
		var missing *MissingFieldError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "title", missing.Field)
	})
}

func TestFormValuesInt(t *testing.T) {
	n, err := formValues{"percentage": " 80 "}.int("percentage")
	require.NoError(t, err)
	assert.Equal(t, 80, n)

	_, err = formValues{"percentage": "eighty"}.int("percentage")
	var invalid *InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "percentage", invalid.Field)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw  string
		want uint
		ok   bool
	}{
		{raw: "7", want: 7, ok: true},
		{raw: "0"},
		{raw: "-1"},
		{raw: "abc"},
		{raw: "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}

			id, err := parseID(c)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.want, id)
				return
			}
			assert.ErrorIs(t, err, database.ErrNotFound)
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: &MissingFieldError{Field: "name"}, want: http.StatusBadRequest},
		{err: &InvalidFieldError{Field: "percentage", Reason: "must be an integer"}, want: http.StatusBadRequest},
		{err: ErrNoData, want: http.StatusBadRequest},
		{err: ErrMalformedBody, want: http.StatusBadRequest},
		{err: auth.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{err: fmt.Errorf("get skill 3: %w", database.ErrNotFound), want: http.StatusNotFound},
		{err: errors.New("connection refused"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
