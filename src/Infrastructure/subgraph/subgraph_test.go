package subgraph

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bundleResult struct {
	Bundle struct {
		NativeCurrencyPrice string `json:"nativeCurrencyPrice" validate:"required,decimal"`
		Decimals            Int    `json:"decimals"`
	} `json:"bundle"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(srv.URL, WithLogger(zerolog.Nop()), WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c
}

func TestQueryDecodesData(t *testing.T) {
	var got request
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		_, _ = w.Write([]byte(`{"data":{"bundle":{"nativeCurrencyPrice":"1800.5","decimals":"18"}}}`))
	})

	res, err := Query[bundleResult](context.Background(), c, `query { bundle(id: "1") { nativeCurrencyPrice } }`, map[string]any{"id": "1"})
	require.NoError(t, err)
	assert.Equal(t, "1800.5", res.Bundle.NativeCurrencyPrice)
	assert.Equal(t, Int(18), res.Bundle.Decimals)
	assert.Contains(t, got.Query, "bundle")
	assert.Equal(t, "1", got.Variables["id"])
}

func TestQueryNon2xxIsNetworkError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := Query[bundleResult](context.Background(), c, "query {}", nil)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestQueryGraphQLErrorsAreNetworkErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"indexing error"}]}`))
	})

	_, err := Query[bundleResult](context.Background(), c, "query {}", nil)
	require.ErrorIs(t, err, ErrNetwork)
	assert.Contains(t, err.Error(), "indexing error")
}

func TestQuerySchemaErrors(t *testing.T) {
	cases := map[string]string{
		"not json":          `<html>`,
		"missing data":      `{}`,
		"wrong field type":  `{"data":{"bundle":{"nativeCurrencyPrice":12}}}`,
		"failed validation": `{"data":{"bundle":{"nativeCurrencyPrice":"abc","decimals":1}}}`,
		"empty required":    `{"data":{"bundle":{}}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})
			_, err := Query[bundleResult](context.Background(), c, "query {}", nil)
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestIntUnmarshal(t *testing.T) {
	var v struct {
		A Int `json:"a"`
		B Int `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":6,"b":"1700000000"}`), &v))
	assert.Equal(t, Int(6), v.A)
	assert.Equal(t, Int(1700000000), v.B)

	assert.Error(t, json.Unmarshal([]byte(`{"a":"1.5"}`), &v))
}

func TestNewClientRequiresURL(t *testing.T) {
	_, err := NewClient("")
	assert.Error(t, err)
}
