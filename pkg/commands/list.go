package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/toyinlola/siteshield/pkg/interfaces"
	"github.com/toyinlola/siteshield/pkg/report"
	"github.com/toyinlola/siteshield/pkg/selector"
)

// ListMaps renders every map with its acknowledgment status.
func (h *Handler) ListMaps(ctx context.Context, format interfaces.Format) error {
	api, err := h.client()
	if err != nil {
		return err
	}

	maps, err := h.fetch(ctx, api)
	if err != nil {
		return err
	}
	if len(maps.SiteShieldMaps) == 0 {
		return interfaces.Errorf(interfaces.KindNotFound, "no maps found")
	}

	if err := report.New(format, h.opts...).FormatMaps(h.out, maps.SiteShieldMaps); err != nil {
		return interfaces.Classify(interfaces.KindAPI, err)
	}
	return nil
}

// ListCIDRs renders the effective CIDRs of one map, or the full record for
// structured formats.
func (h *Handler) ListCIDRs(ctx context.Context, c selector.Criteria, format interfaces.Format) error {
	if err := validateCriteria(c); err != nil {
		return err
	}

	api, err := h.client()
	if err != nil {
		return err
	}

	m, err := h.find(ctx, api, c)
	if err != nil {
		return err
	}
	h.logger.Debug("rendering cidrs",
		zap.Bool("acknowledged", m.Acknowledged),
		zap.Int("count", len(m.EffectiveCIDRs())),
	)

	if err := report.New(format, h.opts...).FormatMap(h.out, m); err != nil {
		return interfaces.Classify(interfaces.KindAPI, err)
	}
	return nil
}
