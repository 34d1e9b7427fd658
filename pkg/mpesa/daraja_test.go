package mpesa

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:        baseURL,
		ConsumerKey:    "test-key",
		ConsumerSecret: "test-secret",
		ShortCode:      "174379",
		Passkey:        "test-passkey",
		CallbackURL:    "https://example.com/token/callback",
		AccountRef:     "Canaville",
		Timeout:        5 * time.Second,
	}
}

func TestAccessToken(t *testing.T) {
	t.Run("Fetches And Caches Token", func(t *testing.T) {
		var hits int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/oauth/v1/generate", r.URL.Path)
			require.Equal(t, "grant_type=client_credentials", r.URL.RawQuery)

			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "test-key", user)
			assert.Equal(t, "test-secret", pass)

			hits++
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"abc123","expires_in":"3599"}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))

		token, err := client.AccessToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "abc123", token)

		// Second call serves from cache
		token, err = client.AccessToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "abc123", token)
		assert.Equal(t, 1, hits)
	})

	t.Run("Refreshes Expired Token", func(t *testing.T) {
		var hits int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"abc123","expires_in":"3599"}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))
		current := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
		client.now = func() time.Time { return current }

		_, err := client.AccessToken(context.Background())
		require.NoError(t, err)

		current = current.Add(2 * time.Hour)
		_, err = client.AccessToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, hits)
	})

	t.Run("Rejected Credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errorMessage":"Invalid credentials"}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))
		_, err := client.AccessToken(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("Missing Token In Response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))
		_, err := client.AccessToken(context.Background())
		assert.Error(t, err)
	})
}

func TestSTKPush(t *testing.T) {
	fixedNow := time.Date(2026, 9, 1, 14, 30, 45, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/mpesa/stkpush/v1/processrequest", r.URL.Path)
			assert.Equal(t, "Bearer abc123", r.Header.Get("Authorization"))

			var req STKPushRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

			assert.Equal(t, "174379", req.BusinessShortCode)
			assert.Equal(t, "20260901143045", req.Timestamp)
			expectedPassword := base64.StdEncoding.EncodeToString([]byte("174379" + "test-passkey" + "20260901143045"))
			assert.Equal(t, expectedPassword, req.Password)
			assert.Equal(t, "CustomerBuyGoodsOnline", req.TransactionType)
			assert.Equal(t, int64(1500), req.Amount)
			assert.Equal(t, "254712345678", req.PartyA)
			assert.Equal(t, "254712345678", req.PhoneNumber)
			assert.Equal(t, "174379", req.PartyB)
			assert.Equal(t, "https://example.com/token/callback", req.CallBackURL)
			assert.Equal(t, "Canaville", req.AccountReference)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": "ws_CO_191220191020363925",
				"ResponseCode": "0",
				"ResponseDescription": "Success. Request accepted for processing",
				"CustomerMessage": "Success. Request accepted for processing"
			}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))
		client.now = func() time.Time { return fixedNow }

		resp, err := client.STKPush(context.Background(), "abc123", "254712345678", 1500)
		require.NoError(t, err)
		assert.Equal(t, "29115-34620561-1", resp.MerchantRequestID)
		assert.Equal(t, "ws_CO_191220191020363925", resp.CheckoutRequestID)
	})

	t.Run("Gateway Error Response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errorCode":"400.002.02","errorMessage":"Bad Request - Invalid Timestamp"}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))
		client.now = func() time.Time { return fixedNow }

		_, err := client.STKPush(context.Background(), "abc123", "254712345678", 1500)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid Timestamp")
	})

	t.Run("Non-Zero Response Code", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"ResponseCode":"1","ResponseDescription":"Insufficient balance"}`))
		}))
		defer server.Close()

		client := NewClient(testConfig(server.URL))
		client.now = func() time.Time { return fixedNow }

		_, err := client.STKPush(context.Background(), "abc123", "254712345678", 1500)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Insufficient balance")
	})
}

func TestPassword(t *testing.T) {
	password := Password("174379", "passkey", "20260901143045")
	decoded, err := base64.StdEncoding.DecodeString(password)
	require.NoError(t, err)
	assert.Equal(t, "174379passkey20260901143045", string(decoded))
}
