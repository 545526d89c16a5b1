// Package gateway serves a small HTTP status API next to the stdio MCP
// transport: provider health and the registered tool catalog. It exists for
// operators and monitoring, not for tool dispatch.
package gateway

import (
	"context"
	stdErrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"

	internalcmd "github.com/hostfleet/hostmcp/internal/cmd"
	"github.com/hostfleet/hostmcp/internal/contracts"
	"github.com/hostfleet/hostmcp/internal/errors"
)

// DefaultShutdownTimeout bounds graceful shutdown of the gateway.
const DefaultShutdownTimeout = 5 * time.Second

// CORSConfig holds cross-origin settings for the gateway.
type CORSConfig struct {
	Enabled      bool
	AllowOrigins []string
}

// Server manages the HTTP status API.
// NewServer should be used to create instances of Server.
type Server struct {
	logger          hclog.Logger
	api             contracts.HostingAPI
	tools           []mcp.Tool
	addr            string
	cors            CORSConfig
	shutdownTimeout time.Duration
}

// NewServer creates a gateway server bound to addr, reporting on the given
// provider API and tool catalog.
func NewServer(logger hclog.Logger, api contracts.HostingAPI, tools []mcp.Tool, addr string, corsCfg CORSConfig) (*Server, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("gateway address cannot be empty")
	}
	if api == nil {
		return nil, fmt.Errorf("gateway requires a provider API")
	}

	return &Server{
		logger:          logger.Named("gateway"),
		api:             api,
		tools:           tools,
		addr:            addr,
		cors:            corsCfg,
		shutdownTimeout: DefaultShutdownTimeout,
	}, nil
}

// Start starts the gateway and blocks until the context is canceled or an
// error occurs.
func (s *Server) Start(ctx context.Context) error {
	mux := chi.NewMux()
	mux.Use(middleware.StripSlashes)

	if s.cors.Enabled {
		s.applyCORS(mux)
	}

	config := huma.DefaultConfig("hostmcp status", internalcmd.Version())
	router := humachi.New(mux, config)

	// Configure the error handling wrapping.
	huma.NewErrorWithContext = errorHandler(s.logger)

	apiPathPrefix, err := url.JoinPath("/api", "v1")
	if err != nil {
		return err
	}

	v1 := huma.NewGroup(router, apiPathPrefix)
	registerHealthRoutes(v1, s.api, "/health")
	registerToolRoutes(v1, s.tools, "/tools")

	srv := &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("Starting status gateway", "address", s.addr, "prefix", apiPathPrefix)
		if err := srv.ListenAndServe(); err != nil && !stdErrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		s.logger.Info("Shutting down status gateway...")
		_ = srv.Shutdown(shutdownCtx)
		s.logger.Info("Shutdown complete")
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// applyCORS applies CORS middleware to the router based on the configured options.
func (s *Server) applyCORS(mux *chi.Mux) {
	s.logger.Info("Enabling CORS", "origins", s.cors.AllowOrigins)

	corsOptions := cors.Options{
		AllowedOrigins: s.cors.AllowOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}

	// Handle wildcard origins properly.
	for i, origin := range corsOptions.AllowedOrigins {
		if origin == "*" {
			corsOptions.AllowedOrigins = []string{"*"}
			break
		}
		corsOptions.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	mux.Use(cors.Handler(corsOptions))
}

// mapError maps domain error codes to HTTP statuses for gateway responses.
//
// Mapping guidelines:
//   - 400: caller input rejected before any provider call
//   - 404: resource not found at the provider
//   - 429: provider throttled us
//   - 502: the provider itself failed or was unreachable
//   - 500: everything unexplained
func mapError(logger hclog.Logger, err error) huma.StatusError {
	var domainErr *errors.Error
	if !stdErrors.As(err, &domainErr) {
		logger.Error("Unexpected gateway error", "error", err)
		return huma.Error500InternalServerError("Internal server error", err)
	}

	switch domainErr.Code() {
	case errors.CodeValidation:
		return huma.Error400BadRequest(domainErr.Message())
	case errors.CodeNotFound:
		return huma.Error404NotFound(domainErr.Message())
	case errors.CodeRateLimit:
		return huma.Error429TooManyRequests(domainErr.Message())
	case errors.CodeAuthentication, errors.CodeAPI, errors.CodeNetwork, errors.CodeTimeout:
		logger.Error("Provider failure behind gateway", "code", domainErr.Code(), "error", domainErr)
		return huma.Error502BadGateway(domainErr.Message(), err)
	default:
		logger.Error("Unexpected provider error", "code", domainErr.Code(), "error", domainErr)
		return huma.Error500InternalServerError(domainErr.Message(), err)
	}
}

// errorHandler wraps error handling for the application when converting to API friendly errors.
// It allows the logger to be supplied to functions that resolve huma.StatusError,
// and it supports different behaviors based on the variadic errors parameter.
func errorHandler(logger hclog.Logger) func(_ huma.Context, status int, msg string, errs ...error) huma.StatusError {
	return func(_ huma.Context, status int, msg string, errs ...error) huma.StatusError {
		switch len(errs) {
		case 0:
			// No errors provided; return a generic error.
			return huma.NewError(status, msg)
		case 1:
			// Single error; map it directly.
			return mapError(logger, errs[0])
		default:
			// Multiple errors; join them and map.
			combinedErr := stdErrors.Join(errs...)
			return mapError(logger, combinedErr)
		}
	}
}
