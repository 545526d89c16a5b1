package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hostfleet/hostmcp/internal/contracts"
	"github.com/hostfleet/hostmcp/internal/hosting"
)

// HandlerFunc executes one tool call. The returned value is serialized as
// JSON into the tool result; a returned error is translated at the protocol
// boundary by the dispatch wrapper.
type HandlerFunc func(ctx context.Context, args map[string]any) (any, error)

// ToolDef pairs an MCP tool definition with its handler. The definition's
// input schema doubles as the validation schema for incoming arguments.
type ToolDef struct {
	Tool   mcp.Tool
	Handle HandlerFunc
}

// Catalog returns every tool hostmcp can expose, backed by the given
// provider API. Registration filtering happens later, against the
// configured allowlist.
func Catalog(api contracts.HostingAPI) []ToolDef {
	return []ToolDef{
		{
			Tool: mcp.NewTool("get_account_info",
				mcp.WithDescription("Get the authenticated reseller account details, including balance and package usage."),
			),
			Handle: func(ctx context.Context, _ map[string]any) (any, error) {
				return api.Reseller(ctx)
			},
		},
		{
			Tool: mcp.NewTool("list_domains",
				mcp.WithDescription("List all domains on the account."),
			),
			Handle: func(ctx context.Context, _ map[string]any) (any, error) {
				return api.ListDomains(ctx)
			},
		},
		{
			Tool: mcp.NewTool("get_domain_info",
				mcp.WithDescription("Get details for a single domain."),
				mcp.WithString("name",
					mcp.Required(),
					mcp.Description("Fully qualified domain name, e.g. example.com"),
				),
			),
			Handle: func(ctx context.Context, args map[string]any) (any, error) {
				return api.GetDomain(ctx, stringArg(args, "name"))
			},
		},
		{
			Tool: mcp.NewTool("search_domains",
				mcp.WithDescription("Check registration availability for a candidate domain name."),
				mcp.WithString("query",
					mcp.Required(),
					mcp.Description("Name or prefix to search for"),
				),
			),
			Handle: func(ctx context.Context, args map[string]any) (any, error) {
				return api.SearchDomains(ctx, stringArg(args, "query"))
			},
		},
		{
			Tool: mcp.NewTool("list_hosting_packages",
				mcp.WithDescription("List all hosting packages on the account."),
			),
			Handle: func(ctx context.Context, _ map[string]any) (any, error) {
				return api.ListPackages(ctx)
			},
		},
		{
			Tool: mcp.NewTool("get_hosting_package",
				mcp.WithDescription("Get details for a single hosting package."),
				mcp.WithString("package_id",
					mcp.Required(),
					mcp.Description("Hosting package identifier"),
				),
			),
			Handle: func(ctx context.Context, args map[string]any) (any, error) {
				return api.GetPackage(ctx, stringArg(args, "package_id"))
			},
		},
		{
			Tool: mcp.NewTool("create_hosting_package",
				mcp.WithDescription("Provision a new hosting package for a domain."),
				mcp.WithString("domain_name",
					mcp.Required(),
					mcp.Description("Domain the package will serve"),
				),
				mcp.WithString("type_ref",
					mcp.Required(),
					mcp.Description("Package type reference, e.g. web-starter"),
				),
				mcp.WithString("label",
					mcp.Description("Optional display label for the package"),
				),
			),
			Handle: func(ctx context.Context, args map[string]any) (any, error) {
				return api.CreatePackage(ctx, hosting.CreatePackageRequest{
					DomainName: stringArg(args, "domain_name"),
					TypeRef:    stringArg(args, "type_ref"),
					Label:      stringArg(args, "label"),
				})
			},
		},
		{
			Tool: mcp.NewTool("list_mysql_databases",
				mcp.WithDescription("List the MySQL databases inside a hosting package."),
				mcp.WithString("package_id",
					mcp.Required(),
					mcp.Description("Hosting package identifier"),
				),
			),
			Handle: func(ctx context.Context, args map[string]any) (any, error) {
				return api.ListDatabases(ctx, stringArg(args, "package_id"))
			},
		},
		{
			Tool: mcp.NewTool("create_mysql_database",
				mcp.WithDescription("Provision a MySQL database inside a hosting package."),
				mcp.WithString("package_id",
					mcp.Required(),
					mcp.Description("Hosting package identifier"),
				),
				mcp.WithString("name",
					mcp.Required(),
					mcp.Description("Database name"),
				),
			),
			Handle: func(ctx context.Context, args map[string]any) (any, error) {
				return api.CreateDatabase(ctx, stringArg(args, "package_id"), stringArg(args, "name"))
			},
		},
	}
}

// stringArg pulls a string argument out of the already schema-validated
// argument map. Missing or mistyped values degrade to "".
func stringArg(args map[string]any, key string) string {
	v, _ := args[key].(string)
	return v
}
