package hosting

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/hostfleet/hostmcp/internal/errors"
)

// Reseller returns the authenticated account details. Also the cheapest call
// available, so diagnostics use it as a reachability and auth probe.
func (c *Client) Reseller(ctx context.Context) (*Reseller, error) {
	var out Reseller
	if err := c.getObject(ctx, "/reseller", "getReseller", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDomains returns every domain on the account.
func (c *Client) ListDomains(ctx context.Context) ([]Domain, error) {
	var out []Domain
	if err := c.getList(ctx, "/domain", "listDomains", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetDomain returns a single domain by name.
func (c *Client) GetDomain(ctx context.Context, name string) (*Domain, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Validation("domain name is required")
	}

	var out Domain
	path := fmt.Sprintf("/domain/%s", url.PathEscape(name))
	if err := c.getObject(ctx, path, "getDomain", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchDomains checks registration availability for a candidate name.
func (c *Client) SearchDomains(ctx context.Context, query string) (*DomainSearch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.Validation("search query is required")
	}

	var out DomainSearch
	path := fmt.Sprintf("/domain-search/%s", url.PathEscape(query))
	if err := c.getObject(ctx, path, "searchDomains", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPackages returns every hosting package on the account.
func (c *Client) ListPackages(ctx context.Context) ([]Package, error) {
	var out []Package
	if err := c.getList(ctx, "/package", "listPackages", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPackage returns a single hosting package by ID.
func (c *Client) GetPackage(ctx context.Context, id string) (*Package, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.Validation("package id is required")
	}

	var out Package
	path := fmt.Sprintf("/package/%s", url.PathEscape(id))
	if err := c.getObject(ctx, path, "getPackage", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePackage provisions a new hosting package.
func (c *Client) CreatePackage(ctx context.Context, req CreatePackageRequest) (*Package, error) {
	req.DomainName = strings.TrimSpace(req.DomainName)
	req.TypeRef = strings.TrimSpace(req.TypeRef)
	if req.DomainName == "" {
		return nil, errors.Validation("domain name is required")
	}
	if req.TypeRef == "" {
		return nil, errors.Validation("package type is required")
	}

	var out Package
	if err := c.postObject(ctx, "/package", "createPackage", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDatabases returns the MySQL databases inside a hosting package.
func (c *Client) ListDatabases(ctx context.Context, packageID string) ([]Database, error) {
	packageID = strings.TrimSpace(packageID)
	if packageID == "" {
		return nil, errors.Validation("package id is required")
	}

	var out []Database
	path := fmt.Sprintf("/package/%s/web/mysql-databases", url.PathEscape(packageID))
	if err := c.getList(ctx, path, "listDatabases", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateDatabase provisions a MySQL database inside a hosting package.
func (c *Client) CreateDatabase(ctx context.Context, packageID, name string) (*Database, error) {
	packageID = strings.TrimSpace(packageID)
	name = strings.TrimSpace(name)
	if packageID == "" {
		return nil, errors.Validation("package id is required")
	}
	if name == "" {
		return nil, errors.Validation("database name is required")
	}

	var out Database
	path := fmt.Sprintf("/package/%s/web/mysql-databases", url.PathEscape(packageID))
	if err := c.postObject(ctx, path, "createDatabase", map[string]string{"name": name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
