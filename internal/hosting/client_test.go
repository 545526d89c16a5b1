package hosting

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/hostfleet/hostmcp/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(hclog.NewNullLogger(), srv.URL, "test-key", opts...)
	require.NoError(t, err)
	return c
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	c, err := New(hclog.NewNullLogger(), "", "key")
	require.NoError(t, err)
	require.Equal(t, DefaultBaseURL, c.BaseURL())

	c, err = New(hclog.NewNullLogger(), "https://api.example.test/v2/", "key")
	require.NoError(t, err)
	require.Equal(t, "https://api.example.test/v2", c.BaseURL())
}

func TestClient_SendsBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"id":"r1","name":"acme"}`))
	}))

	_, err := c.Reseller(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer test-key", gotAuth)
}

func TestClient_ObjectOperations(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /reseller", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id":"r1","name":"acme","balance":12.5,"currency":"USD"}`))
	})
	mux.HandleFunc("GET /domain/example.com", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"name":"example.com","autoRenew":true}`))
	})
	mux.HandleFunc("POST /package", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"id":"p9","label":"shop","typeRef":"web-pro","domainName":"example.com","enabled":true}`))
	})
	c := newTestClient(t, mux)

	reseller, err := c.Reseller(context.Background())
	require.NoError(t, err)
	require.Equal(t, "acme", reseller.Name)
	require.InDelta(t, 12.5, reseller.Balance, 0.001)

	domain, err := c.GetDomain(context.Background(), "example.com")
	require.NoError(t, err)
	require.True(t, domain.AutoRenew)

	pkg, err := c.CreatePackage(context.Background(), CreatePackageRequest{
		DomainName: "example.com",
		TypeRef:    "web-pro",
		Label:      "shop",
	})
	require.NoError(t, err)
	require.Equal(t, "p9", pkg.ID)
}

func TestClient_ListOperations(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /domain", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"a.com"},{"name":"b.com"}]`))
	})
	mux.HandleFunc("GET /package", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"p1"},{"id":"p2"},{"id":"p3"}]`))
	})
	mux.HandleFunc("GET /package/p1/web/mysql-databases", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"db1","name":"wp_main"}]`))
	})
	c := newTestClient(t, mux)

	domains, err := c.ListDomains(context.Background())
	require.NoError(t, err)
	require.Len(t, domains, 2)

	packages, err := c.ListPackages(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 3)

	databases, err := c.ListDatabases(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, databases, 1)
	require.Equal(t, "wp_main", databases[0].Name)
}

func TestClient_ErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		call        func(c *Client) error
		wantCode    errors.Code
		wantMessage string
	}{
		{
			name:   "401 becomes authentication error",
			status: http.StatusUnauthorized,
			body:   `{"message":"invalid bearer token"}`,
			call: func(c *Client) error {
				_, err := c.Reseller(context.Background())
				return err
			},
			wantCode:    errors.CodeAuthentication,
			wantMessage: "Authentication failed in getReseller: invalid bearer token",
		},
		{
			name:   "404 becomes not found with generic message",
			status: http.StatusNotFound,
			body:   `{"message":"no such domain"}`,
			call: func(c *Client) error {
				_, err := c.GetDomain(context.Background(), "missing.com")
				return err
			},
			wantCode:    errors.CodeNotFound,
			wantMessage: "Resource in getDomain",
		},
		{
			name:   "429 becomes rate limit",
			status: http.StatusTooManyRequests,
			body:   `{"message":"quota exhausted"}`,
			call: func(c *Client) error {
				_, err := c.ListDomains(context.Background())
				return err
			},
			wantCode:    errors.CodeRateLimit,
			wantMessage: "Rate limit exceeded in listDomains: quota exhausted",
		},
		{
			name:   "other status becomes api error with status text fallback",
			status: http.StatusBadGateway,
			body:   `not json`,
			call: func(c *Client) error {
				_, err := c.ListPackages(context.Background())
				return err
			},
			wantCode:    errors.CodeAPI,
			wantMessage: "API error in listPackages: Bad Gateway",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))

			err := tc.call(c)
			var domainErr *errors.Error
			require.ErrorAs(t, err, &domainErr)
			require.Equal(t, tc.wantCode, domainErr.Code())
			require.Equal(t, tc.wantMessage, domainErr.Message())
		})
	}
}

func TestClient_TimeoutBecomesDomainTimeout(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"id":"r1"}`))
	}), WithTimeout(20*time.Millisecond))

	_, err := c.Reseller(context.Background())
	var domainErr *errors.Error
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, errors.CodeTimeout, domainErr.Code())
	require.Equal(t, "Request timeout in getReseller", domainErr.Message())
}

func TestClient_MalformedSuccessBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name:        "embedded error field",
			body:        `{"error":"quota exceeded","status":403}`,
			wantMessage: "API returned error in createPackage: quota exceeded",
		},
		{
			name:        "error status string",
			body:        `{"status":"error","message":"provisioning failed"}`,
			wantMessage: "API returned error status in createPackage: provisioning failed",
		},
		{
			name:        "empty object",
			body:        `{}`,
			wantMessage: "Empty response from createPackage",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))

			_, err := c.CreatePackage(context.Background(), CreatePackageRequest{
				DomainName: "example.com",
				TypeRef:    "web-pro",
			})
			var domainErr *errors.Error
			require.ErrorAs(t, err, &domainErr)
			require.Equal(t, errors.CodeAPI, domainErr.Code())
			require.Equal(t, tc.wantMessage, domainErr.Message())
		})
	}
}

func TestClient_InputValidation(t *testing.T) {
	t.Parallel()

	c, err := New(hclog.NewNullLogger(), "", "key")
	require.NoError(t, err)

	ctx := context.Background()

	checks := []struct {
		name string
		call func() error
	}{
		{"empty domain name", func() error { _, err := c.GetDomain(ctx, "  "); return err }},
		{"empty search query", func() error { _, err := c.SearchDomains(ctx, ""); return err }},
		{"empty package id", func() error { _, err := c.GetPackage(ctx, ""); return err }},
		{"create package without domain", func() error {
			_, err := c.CreatePackage(ctx, CreatePackageRequest{TypeRef: "web-pro"})
			return err
		}},
		{"create package without type", func() error {
			_, err := c.CreatePackage(ctx, CreatePackageRequest{DomainName: "example.com"})
			return err
		}},
		{"create database without name", func() error { _, err := c.CreateDatabase(ctx, "p1", ""); return err }},
	}

	for _, tc := range checks {
		t.Run(tc.name, func(t *testing.T) {
			var domainErr *errors.Error
			require.ErrorAs(t, tc.call(), &domainErr)
			require.Equal(t, errors.CodeValidation, domainErr.Code())
		})
	}
}
