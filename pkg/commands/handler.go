// Package commands implements the list-maps, list-cidrs and acknowledge
// operations on top of a MapsAPI.
//
// Handlers never terminate the process. Failures come back as
// *interfaces.ExitError values that the caller maps to an exit status.
package commands

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/toyinlola/siteshield/pkg/interfaces"
	"github.com/toyinlola/siteshield/pkg/report"
	"github.com/toyinlola/siteshield/pkg/selector"
)

// Request carries the per-invocation inputs for Dispatch.
type Request struct {
	Command  interfaces.Command
	Criteria selector.Criteria
	Format   interfaces.Format
}

// ClientFactory builds the API client lazily so that usage errors are
// reported before credentials are read or any request is made.
type ClientFactory func() (interfaces.MapsAPI, error)

// Handler runs commands. Build one with New.
type Handler struct {
	newClient ClientFactory
	logger    *zap.Logger
	console   *report.Console
	out       io.Writer
	opts      []report.Option
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *Handler) { h.logger = l }
}

// WithConsole sets where status lines are written.
func WithConsole(c *report.Console) Option {
	return func(h *Handler) { h.console = c }
}

// WithReportOptions passes options through to the formatters.
func WithReportOptions(opts ...report.Option) Option {
	return func(h *Handler) { h.opts = append(h.opts, opts...) }
}

// New creates a Handler writing results to out.
func New(newClient ClientFactory, out io.Writer, opts ...Option) *Handler {
	h := &Handler{
		newClient: newClient,
		logger:    zap.NewNop(),
		out:       out,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.console == nil {
		h.console = report.NewConsole(out)
	}
	return h
}

// Dispatch runs the command named in req.
func (h *Handler) Dispatch(ctx context.Context, req Request) error {
	switch req.Command {
	case interfaces.CommandListMaps:
		return h.ListMaps(ctx, req.Format)
	case interfaces.CommandListCIDRs:
		return h.ListCIDRs(ctx, req.Criteria, req.Format)
	case interfaces.CommandAcknowledge:
		return h.Acknowledge(ctx, req.Criteria)
	default:
		return interfaces.Errorf(interfaces.KindUsage, "unknown command %q", req.Command)
	}
}

func (h *Handler) client() (interfaces.MapsAPI, error) {
	c, err := h.newClient()
	if err != nil {
		return nil, interfaces.Classify(interfaces.KindConfig, err)
	}
	return c, nil
}

// fetch retrieves the collection and turns transport errors and non-200
// responses into API failures. The error body is only logged at debug level.
func (h *Handler) fetch(ctx context.Context, api interfaces.MapsAPI) (*interfaces.MapsResponse, error) {
	h.logger.Debug("fetching site shield maps")

	resp, err := api.FetchMaps(ctx)
	if err != nil {
		return nil, h.transportError(ctx, err)
	}
	if !resp.OK() {
		h.logger.Debug("fetch maps failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", resp.Body),
		)
		return nil, interfaces.Errorf(interfaces.KindAPI, "failed to fetch maps (status %d)", resp.StatusCode)
	}

	maps, err := resp.Maps()
	if err != nil {
		return nil, interfaces.Classify(interfaces.KindAPI, err)
	}
	h.logger.Debug("fetched site shield maps", zap.Int("count", len(maps.SiteShieldMaps)))
	return maps, nil
}

// find fetches the collection and selects one map from it.
func (h *Handler) find(ctx context.Context, api interfaces.MapsAPI, c selector.Criteria) (*interfaces.Map, error) {
	maps, err := h.fetch(ctx, api)
	if err != nil {
		return nil, err
	}

	m, ok := selector.Select(maps.SiteShieldMaps, c)
	if !ok {
		return nil, interfaces.Errorf(interfaces.KindNotFound, "unable to find the map (%s)", c)
	}
	h.logger.Debug("selected map", zap.String("id", m.ID.String()), zap.String("name", m.RuleName))
	return m, nil
}

func (h *Handler) transportError(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return interfaces.Classify(interfaces.KindInterrupt, err)
	}
	return interfaces.Classify(interfaces.KindAPI, err)
}

func validateCriteria(c selector.Criteria) error {
	if err := c.Validate(); err != nil {
		return interfaces.Classify(interfaces.KindUsage, err)
	}
	return nil
}
