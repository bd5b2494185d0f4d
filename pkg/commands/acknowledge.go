package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/toyinlola/siteshield/pkg/interfaces"
	"github.com/toyinlola/siteshield/pkg/selector"
)

// Acknowledge accepts the proposed CIDRs of the selected map.
//
// After selecting the map the collection is fetched again and the
// acknowledgment is only sent if some map in it, not necessarily the
// selected one, still has updates pending.
func (h *Handler) Acknowledge(ctx context.Context, c selector.Criteria) error {
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

	latest, err := h.fetch(ctx, api)
	if err != nil {
		return err
	}
	if !latest.AnyPending() {
		h.logger.Info("no pending updates", zap.String("id", m.ID.String()))
		h.console.Successf("Nothing to acknowledge: no map has pending updates")
		return nil
	}

	h.logger.Info("acknowledging map", zap.String("id", m.ID.String()), zap.String("name", m.RuleName))
	resp, err := api.AcknowledgeMap(ctx, m.ID)
	if err != nil {
		return h.transportError(ctx, err)
	}
	if !resp.OK() {
		h.logger.Debug("acknowledge failed",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", resp.Body),
		)
		return interfaces.Errorf(interfaces.KindAPI, "failed to acknowledge map %s (status %d): %s",
			m.ID, resp.StatusCode, resp.Body)
	}

	h.console.Successf("Acknowledged map %s (%s)", m.ID, m.RuleName)
	return nil
}
