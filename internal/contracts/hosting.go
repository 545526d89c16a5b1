package contracts

import (
	"context"

	"github.com/hostfleet/hostmcp/internal/hosting"
)

// HostingAPI provides access to the provider's REST API, one method per
// operation. The concrete implementation is hosting.Client; tests supply
// their own.
type HostingAPI interface {
	// Reseller returns the authenticated account details.
	Reseller(ctx context.Context) (*hosting.Reseller, error)

	// ListDomains returns every domain on the account.
	ListDomains(ctx context.Context) ([]hosting.Domain, error)

	// GetDomain returns a single domain by name.
	GetDomain(ctx context.Context, name string) (*hosting.Domain, error)

	// SearchDomains checks registration availability for a candidate name.
	SearchDomains(ctx context.Context, query string) (*hosting.DomainSearch, error)

	// ListPackages returns every hosting package on the account.
	ListPackages(ctx context.Context) ([]hosting.Package, error)

	// GetPackage returns a single hosting package by ID.
	GetPackage(ctx context.Context, id string) (*hosting.Package, error)

	// CreatePackage provisions a new hosting package.
	CreatePackage(ctx context.Context, req hosting.CreatePackageRequest) (*hosting.Package, error)

	// ListDatabases returns the MySQL databases inside a hosting package.
	ListDatabases(ctx context.Context, packageID string) ([]hosting.Database, error)

	// CreateDatabase provisions a MySQL database inside a hosting package.
	CreateDatabase(ctx context.Context, packageID, name string) (*hosting.Database, error)
}
