package portal_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	errs "github.com/gisportal/go-portal-gateway/internal/errors"
	"github.com/gisportal/go-portal-gateway/portal"
	"github.com/stretchr/testify/require"
)

func TestClient_GenerateToken(t *testing.T) {
	var requests atomic.Int64
	var lastForm map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/portal/sharing/rest/generateToken", r.URL.Path)
		require.NoError(t, r.ParseForm())
		lastForm = map[string]string{}
		for k := range r.PostForm {
			lastForm[k] = r.PostForm.Get(k)
		}

		switch r.PostForm.Get("username") {
		case "claudine_bugesera":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"token":"TOK-abc","expires":1700000000000,"ssl":true,"user":{"username":"claudine_bugesera"}}`))
		default:
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"Invalid username or password.","details":[]}}`))
		}
	}))
	defer srv.Close()

	client, err := portal.NewClient(srv.URL+"/portal", portal.WithExpirationMinutes(1440))
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		reply, err := client.GenerateToken(context.Background(), "claudine_bugesera", "pw", "http://localhost:8080")
		require.NoError(t, err)
		require.Equal(t, "TOK-abc", reply.Token)
		require.Equal(t, int64(1_700_000_000_000), reply.Expires)
		require.JSONEq(t, `{"username":"claudine_bugesera"}`, string(reply.User))

		require.Equal(t, "claudine_bugesera", lastForm["username"])
		require.Equal(t, "pw", lastForm["password"])
		require.Equal(t, "http://localhost:8080", lastForm["referer"])
		require.Equal(t, "json", lastForm["f"])
		require.Equal(t, "1440", lastForm["expiration"])
	})

	t.Run("provider rejection carries code and message", func(t *testing.T) {
		before := requests.Load()
		_, err := client.GenerateToken(context.Background(), "wrong", "pw", "http://localhost:8080")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidCredentials)

		var providerErr *portal.ProviderError
		require.ErrorAs(t, err, &providerErr)
		require.Equal(t, 400, providerErr.Code)
		require.Equal(t, "Invalid username or password.", providerErr.Message)

		// Single attempt, no retry.
		require.Equal(t, before+1, requests.Load())
	})
}

func TestClient_GenerateToken_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	client, err := portal.NewClient(srv.URL)
	require.NoError(t, err)

	_, err = client.GenerateToken(context.Background(), "u", "p", "r")
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNetwork)
	require.NotErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestClient_GenerateToken_BadStatusIsNetworkClass(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := portal.NewClient(srv.URL)
	require.NoError(t, err)

	_, err = client.GenerateToken(context.Background(), "u", "p", "r")
	require.ErrorIs(t, err, errs.ErrNetwork)
}

func TestClient_GenerateToken_EmptyReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client, err := portal.NewClient(srv.URL)
	require.NoError(t, err)

	_, err = client.GenerateToken(context.Background(), "u", "p", "r")
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestNewClient_RequiresURL(t *testing.T) {
	_, err := portal.NewClient("  ")
	require.Error(t, err)
}
