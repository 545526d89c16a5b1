package diag

import (
	"bytes"
	"context"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/hostfleet/hostmcp/internal/errors"
	"github.com/hostfleet/hostmcp/internal/flags"
	"github.com/hostfleet/hostmcp/internal/hosting"
)

// stubAPI implements contracts.HostingAPI with per-call outcomes.
type stubAPI struct {
	resellerErr error
	domainsErr  error
	packagesErr error
}

func (s *stubAPI) Reseller(context.Context) (*hosting.Reseller, error) {
	if s.resellerErr != nil {
		return nil, s.resellerErr
	}
	return &hosting.Reseller{Name: "acme"}, nil
}

func (s *stubAPI) ListDomains(context.Context) ([]hosting.Domain, error) {
	if s.domainsErr != nil {
		return nil, s.domainsErr
	}
	return []hosting.Domain{{Name: "a.com"}, {Name: "b.com"}}, nil
}

func (s *stubAPI) GetDomain(context.Context, string) (*hosting.Domain, error) {
	return nil, nil
}

func (s *stubAPI) SearchDomains(context.Context, string) (*hosting.DomainSearch, error) {
	return nil, nil
}

func (s *stubAPI) ListPackages(context.Context) ([]hosting.Package, error) {
	if s.packagesErr != nil {
		return nil, s.packagesErr
	}
	return []hosting.Package{{ID: "p1"}}, nil
}

func (s *stubAPI) GetPackage(context.Context, string) (*hosting.Package, error) {
	return nil, nil
}

func (s *stubAPI) CreatePackage(context.Context, hosting.CreatePackageRequest) (*hosting.Package, error) {
	return nil, nil
}

func (s *stubAPI) ListDatabases(context.Context, string) ([]hosting.Database, error) {
	return nil, nil
}

func (s *stubAPI) CreateDatabase(context.Context, string, string) (*hosting.Database, error) {
	return nil, nil
}

func TestRunner_AllPass(t *testing.T) {
	t.Setenv(flags.EnvVarAPIKey, "secret")

	var buf bytes.Buffer
	r := NewRunner(hclog.NewNullLogger(), &stubAPI{}, &buf)

	results, failures := r.Run(context.Background())
	require.Zero(t, failures)
	require.Len(t, results, 4)
	for _, res := range results {
		require.Equal(t, StatusPass, res.Status)
		require.Empty(t, res.Error)
	}

	out := buf.String()
	require.Contains(t, out, "account 'acme'")
	require.Contains(t, out, "2 domain(s)")
	require.Contains(t, out, "1 package(s)")
	require.Contains(t, out, "All 4 checks passed")
}

func TestRunner_ContinuesPastFailures(t *testing.T) {
	t.Setenv(flags.EnvVarAPIKey, "secret")

	api := &stubAPI{
		resellerErr: errors.Authentication("Authentication failed in getReseller: invalid bearer token"),
	}

	var buf bytes.Buffer
	r := NewRunner(hclog.NewNullLogger(), api, &buf)

	results, failures := r.Run(context.Background())
	require.Equal(t, 1, failures)
	require.Len(t, results, 4)

	require.Equal(t, StatusFail, results[1].Status)
	require.Equal(t, "Authentication failed in getReseller: invalid bearer token", results[1].Error)

	// Later checks still ran.
	require.Equal(t, StatusPass, results[2].Status)
	require.Equal(t, StatusPass, results[3].Status)

	require.Contains(t, buf.String(), "1 of 4 checks failed")
}

func TestRunner_MissingAPIKey(t *testing.T) {
	t.Setenv(flags.EnvVarAPIKey, "")

	var buf bytes.Buffer
	r := NewRunner(hclog.NewNullLogger(), &stubAPI{}, &buf)

	results, failures := r.Run(context.Background())
	require.Equal(t, 1, failures)
	require.Equal(t, StatusFail, results[0].Status)
	require.Contains(t, results[0].Error, flags.EnvVarAPIKey)
}
