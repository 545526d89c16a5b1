package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hostfleet/hostmcp/internal/contracts"
)

const (
	HealthStatusOK          HealthStatus = "ok"
	HealthStatusUnavailable HealthStatus = "unavailable"
)

// HealthStatus reports whether the provider API answered our probe.
type HealthStatus string

// Health is the response payload for the health endpoint.
type Health struct {
	Status    HealthStatus `doc:"Provider reachability" json:"status"`
	Latency   string       `doc:"Round trip time of the probe call" json:"latency"`
	Account   string       `doc:"Authenticated account name, when reachable" json:"account,omitempty"`
	CheckedAt time.Time    `doc:"When the probe ran" json:"checkedAt"`
}

// HealthResponse is the response for GET /health.
type HealthResponse struct {
	Body Health
}

// Tool is the API-safe summary of one registered MCP tool.
type Tool struct {
	Name        string `doc:"Tool name" json:"name"`
	Description string `doc:"Tool description" json:"description"`
}

// ToolsResponse is the response for GET /tools.
type ToolsResponse struct {
	Body struct {
		Tools []Tool `doc:"Registered MCP tools" json:"tools"`
	}
}

// registerHealthRoutes sets up the provider health endpoint.
func registerHealthRoutes(routerAPI huma.API, api contracts.HostingAPI, apiPathPrefix string) {
	healthAPI := huma.NewGroup(routerAPI, apiPathPrefix)
	tags := []string{"Health"}

	huma.Register(
		healthAPI,
		huma.Operation{
			OperationID: "getProviderHealth",
			Method:      http.MethodGet,
			Path:        "/provider",
			Summary:     "Probe provider API reachability",
			Tags:        tags,
		},
		func(ctx context.Context, _ *struct{}) (*HealthResponse, error) {
			return handleHealth(ctx, api)
		},
	)
}

// handleHealth probes the provider with the cheapest authenticated call and
// reports the outcome. Probe failures are a healthy response with an
// unavailable status, not an HTTP error.
func handleHealth(ctx context.Context, api contracts.HostingAPI) (*HealthResponse, error) {
	started := time.Now()
	reseller, err := api.Reseller(ctx)
	latency := time.Since(started)

	health := Health{
		Status:    HealthStatusOK,
		Latency:   latency.String(),
		CheckedAt: started,
	}
	if err != nil {
		health.Status = HealthStatusUnavailable
	} else if reseller != nil {
		health.Account = reseller.Name
	}

	return &HealthResponse{Body: health}, nil
}

// registerToolRoutes sets up the tool catalog endpoint.
func registerToolRoutes(routerAPI huma.API, tools []mcp.Tool, apiPathPrefix string) {
	toolsAPI := huma.NewGroup(routerAPI, apiPathPrefix)
	tags := []string{"Tools"}

	huma.Register(
		toolsAPI,
		huma.Operation{
			OperationID: "listTools",
			Method:      http.MethodGet,
			Path:        "/",
			Summary:     "List the registered MCP tools",
			Tags:        tags,
		},
		func(_ context.Context, _ *struct{}) (*ToolsResponse, error) {
			return handleTools(tools), nil
		},
	)
}

func handleTools(tools []mcp.Tool) *ToolsResponse {
	out := make([]Tool, 0, len(tools))
	for _, t := range tools {
		out = append(out, Tool{
			Name:        t.Name,
			Description: t.Description,
		})
	}

	resp := &ToolsResponse{}
	resp.Body.Tools = out
	return resp
}
