package gateway

import (
	"context"
	stdErrors "errors"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/hostfleet/hostmcp/internal/errors"
	"github.com/hostfleet/hostmcp/internal/hosting"
)

// probeAPI implements contracts.HostingAPI; only Reseller matters here.
type probeAPI struct {
	reseller *hosting.Reseller
	err      error
}

func (p *probeAPI) Reseller(context.Context) (*hosting.Reseller, error) { return p.reseller, p.err }

func (p *probeAPI) ListDomains(context.Context) ([]hosting.Domain, error) { return nil, p.err }

func (p *probeAPI) GetDomain(context.Context, string) (*hosting.Domain, error) { return nil, p.err }

func (p *probeAPI) SearchDomains(context.Context, string) (*hosting.DomainSearch, error) {
	return nil, p.err
}

func (p *probeAPI) ListPackages(context.Context) ([]hosting.Package, error) { return nil, p.err }

func (p *probeAPI) GetPackage(context.Context, string) (*hosting.Package, error) {
	return nil, p.err
}

func (p *probeAPI) CreatePackage(context.Context, hosting.CreatePackageRequest) (*hosting.Package, error) {
	return nil, p.err
}

func (p *probeAPI) ListDatabases(context.Context, string) ([]hosting.Database, error) {
	return nil, p.err
}

func (p *probeAPI) CreateDatabase(context.Context, string, string) (*hosting.Database, error) {
	return nil, p.err
}

func TestNewServer_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewServer(hclog.NewNullLogger(), &probeAPI{}, nil, "  ", CORSConfig{})
	require.Error(t, err)

	_, err = NewServer(hclog.NewNullLogger(), nil, nil, "localhost:8090", CORSConfig{})
	require.Error(t, err)

	s, err := NewServer(hclog.NewNullLogger(), &probeAPI{}, nil, "localhost:8090", CORSConfig{})
	require.NoError(t, err)
	require.Equal(t, DefaultShutdownTimeout, s.shutdownTimeout)
}

func TestHandleHealth(t *testing.T) {
	t.Parallel()

	resp, err := handleHealth(context.Background(), &probeAPI{reseller: &hosting.Reseller{Name: "acme"}})
	require.NoError(t, err)
	require.Equal(t, HealthStatusOK, resp.Body.Status)
	require.Equal(t, "acme", resp.Body.Account)
	require.NotEmpty(t, resp.Body.Latency)

	resp, err = handleHealth(context.Background(), &probeAPI{err: errors.Network("Network error in getReseller: connection refused")})
	require.NoError(t, err)
	require.Equal(t, HealthStatusUnavailable, resp.Body.Status)
	require.Empty(t, resp.Body.Account)
}

func TestHandleTools(t *testing.T) {
	t.Parallel()

	tools := []mcp.Tool{
		mcp.NewTool("list_domains", mcp.WithDescription("List all domains on the account.")),
		mcp.NewTool("get_domain_info", mcp.WithDescription("Get details for a single domain.")),
	}

	resp := handleTools(tools)
	require.Len(t, resp.Body.Tools, 2)
	require.Equal(t, "list_domains", resp.Body.Tools[0].Name)
	require.Equal(t, "Get details for a single domain.", resp.Body.Tools[1].Description)
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation maps to 400", errors.Validation("domain name is required"), 400},
		{"not found maps to 404", errors.NotFoundMessage("Resource in getDomain"), 404},
		{"rate limit maps to 429", errors.RateLimit("Rate limit exceeded in listDomains: slow down"), 429},
		{"authentication maps to 502", errors.Authentication("Authentication failed in getReseller: bad token"), 502},
		{"api maps to 502", errors.API("API error in createPackage: quota exceeded", 403), 502},
		{"network maps to 502", errors.Network("Network error in listDomains: connection refused"), 502},
		{"timeout maps to 502", errors.Timeout("Request timeout in listDomains"), 502},
		{"unknown maps to 500", errors.New("something odd"), 500},
		{"non-domain error maps to 500", stdErrors.New("boom"), 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			statusErr := mapError(hclog.NewNullLogger(), tc.err)
			require.Equal(t, tc.wantStatus, statusErr.GetStatus())
		})
	}
}
