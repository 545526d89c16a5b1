package hosting

// Reseller describes the authenticated reseller account.
type Reseller struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Balance     float64 `json:"balance"`
	Currency    string  `json:"currency"`
	PackageCap  int     `json:"packageCap"`
	PackagesNow int     `json:"packagesNow"`
}

// Domain is a registered domain on the account.
type Domain struct {
	Name       string   `json:"name"`
	Expiry     string   `json:"expiry,omitempty"`
	AutoRenew  bool     `json:"autoRenew"`
	Locked     bool     `json:"locked"`
	Nameserver []string `json:"nameservers,omitempty"`
}

// DomainSearch is the availability result for one candidate name.
type DomainSearch struct {
	Query   string               `json:"query"`
	Results []DomainAvailability `json:"results"`
}

// DomainAvailability reports whether a single name can be registered.
type DomainAvailability struct {
	Name      string  `json:"name"`
	Available bool    `json:"available"`
	Premium   bool    `json:"premium"`
	Price     float64 `json:"price,omitempty"`
}

// Package is a hosting package (web space) on the account.
type Package struct {
	ID         string   `json:"id"`
	Label      string   `json:"label"`
	TypeRef    string   `json:"typeRef"`
	DomainName string   `json:"domainName"`
	Names      []string `json:"names,omitempty"`
	Enabled    bool     `json:"enabled"`
	DiskUsage  int64    `json:"diskUsage,omitempty"`
	DiskQuota  int64    `json:"diskQuota,omitempty"`
}

// CreatePackageRequest is the payload for provisioning a new hosting package.
type CreatePackageRequest struct {
	DomainName string `json:"domainName"`
	TypeRef    string `json:"typeRef"`
	Label      string `json:"label,omitempty"`
}

// Database is a MySQL database provisioned inside a hosting package.
type Database struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Server string `json:"server,omitempty"`
}
