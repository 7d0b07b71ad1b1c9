package utils

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUint(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected uint64
		hasError bool
	}{
		{"Vazio usa o padrão", "", 50, false},
		{"Número válido", "10", 10, false},
		{"Zero", "0", 0, false},
		{"Negativo", "-1", 0, true},
		{"Texto", "abc", 0, true},
		{"Decimal", "1.5", 0, true},
		{"Maior valor do bigint", "9223372036854775807", math.MaxInt64, false},
		{"Acima do bigint", "9223372036854775808", 0, true},
		{"Máximo de uint64", "18446744073709551615", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUint(tt.value, 50)

			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, invalid := range []string{"", "0", "-3", "abc", "1e3"} {
		_, err := ParseID(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, 31, date.Day())

	empty, err := ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, empty)

	_, err = ParseDate("31/03/2024")
	assert.Error(t, err)
}

func TestGenerateReferenceID(t *testing.T) {
	first, err := GenerateReferenceID()
	require.NoError(t, err)
	second, err := GenerateReferenceID()
	require.NoError(t, err)

	assert.Len(t, first, ReferenceIDSize)
	assert.NotEqual(t, first, second)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Query string `json:"query"`
	}

	t.Run("Decodifica corpo válido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"query":"cloud"}`))
		var got payload

		require.NoError(t, DecodeJSON(httptest.NewRecorder(), req, 1024, &got))
		assert.Equal(t, "cloud", got.Query)
	})

	t.Run("Corpo vazio", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
		var got payload

		assert.ErrorIs(t, DecodeJSON(httptest.NewRecorder(), req, 1024, &got), ErrEmptyBody)
	})

	t.Run("Corpo acima do limite", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"query":"`+strings.Repeat("a", 100)+`"}`))
		var got payload

		assert.Error(t, DecodeJSON(httptest.NewRecorder(), req, 16, &got))
	})
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, WriteJSON(rec, http.StatusCreated, map[string]bool{"received": true}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
}
