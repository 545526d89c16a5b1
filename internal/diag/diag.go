// Package diag runs a fixed sequence of direct provider API calls and
// narrates the outcome. It is the ad-hoc troubleshooting path: no retries,
// no state, each check independent of the previous one's success.
package diag

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/hostfleet/hostmcp/internal/contracts"
	"github.com/hostfleet/hostmcp/internal/flags"
)

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// Status is the outcome of one diagnostic check.
type Status string

// Result captures one completed check.
type Result struct {
	Name    string `json:"name"    yaml:"name"`
	Status  Status `json:"status"  yaml:"status"`
	Detail  string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Elapsed string `json:"elapsed" yaml:"elapsed"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// check is one step of the sequence. run returns a short human detail on
// success.
type check struct {
	name string
	run  func(ctx context.Context) (string, error)
}

// Runner executes the diagnostic sequence against a provider API.
type Runner struct {
	logger hclog.Logger
	api    contracts.HostingAPI
	out    io.Writer
}

// NewRunner creates a Runner that narrates to out.
func NewRunner(logger hclog.Logger, api contracts.HostingAPI, out io.Writer) *Runner {
	return &Runner{
		logger: logger.Named("diag"),
		api:    api,
		out:    out,
	}
}

// checks returns the ordered sequence. Order matters for readability only;
// a failing check never stops the run.
func (r *Runner) checks() []check {
	return []check{
		{
			name: "api key configured",
			run: func(_ context.Context) (string, error) {
				if flags.APIKey() == "" {
					return "", fmt.Errorf("%s is not set", flags.EnvVarAPIKey)
				}
				return "present", nil
			},
		},
		{
			name: "provider reachable",
			run: func(ctx context.Context) (string, error) {
				reseller, err := r.api.Reseller(ctx)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("account '%s'", reseller.Name), nil
			},
		},
		{
			name: "list domains",
			run: func(ctx context.Context) (string, error) {
				domains, err := r.api.ListDomains(ctx)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%d domain(s)", len(domains)), nil
			},
		},
		{
			name: "list hosting packages",
			run: func(ctx context.Context) (string, error) {
				packages, err := r.api.ListPackages(ctx)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%d package(s)", len(packages)), nil
			},
		},
	}
}

// Run executes every check in order and returns all results plus the number
// of failures. Output narration happens as checks complete, so a hanging
// call is visible mid-run.
func (r *Runner) Run(ctx context.Context) ([]Result, int) {
	checks := r.checks()
	results := make([]Result, 0, len(checks))
	failures := 0

	for i, c := range checks {
		fmt.Fprintf(r.out, "[%d/%d] %s... ", i+1, len(checks), c.name)

		started := time.Now()
		detail, err := c.run(ctx)
		elapsed := time.Since(started)

		result := Result{
			Name:    c.name,
			Status:  StatusPass,
			Detail:  detail,
			Elapsed: elapsed.Round(time.Millisecond).String(),
		}

		if err != nil {
			failures++
			result.Status = StatusFail
			result.Detail = ""
			result.Error = err.Error()
			fmt.Fprintf(r.out, "FAIL: %v\n", err)
			r.logger.Error("Diagnostic check failed", "check", c.name, "error", err)
		} else {
			fmt.Fprintf(r.out, "ok (%s)\n", detail)
			r.logger.Debug("Diagnostic check passed", "check", c.name, "elapsed", elapsed)
		}

		results = append(results, result)
	}

	if failures == 0 {
		fmt.Fprintf(r.out, "All %d checks passed\n", len(checks))
	} else {
		fmt.Fprintf(r.out, "%d of %d checks failed\n", failures, len(checks))
	}

	return results, failures
}
