package dnstheory

import "errors"

// UpdateResult is the JSON body returned for every successful invocation,
// including the idempotent no-op path.
type UpdateResult struct {
	Message string `json:"message"`
	Record  string `json:"record"`
	IP      string `json:"ip"`
	Updated bool   `json:"updated"`
}

const (
	messageUpdated  = "DNS updated"
	messageUpToDate = "DNS already up to date"
)

// handleUpdate is the updater entry point.
//
// Order matters: authentication happens before the caller address is even
// resolved, so unauthenticated requests cause zero provider calls and zero
// side effects. The provider write is a single atomic upsert; there is no
// read-modify-write transaction and no rollback.
func (a *App) handleUpdate(ctx *Context) (*Response, error) {
	if err := a.authenticate(ctx); err != nil {
		return nil, err
	}

	ip, err := a.callerIP(ctx.Request)
	if err != nil {
		return nil, err
	}

	target := a.cfg.Target()
	log := ctx.Logger().WithField("record", target.Name)

	current, err := a.provider.GetRecord(ctx.Context(), target)
	switch {
	case errors.Is(err, ErrRecordNotFound):
		current = ""
	case err != nil:
		log.Error("record lookup failed", map[string]any{"zone_id": target.ZoneID})
		return nil, upstreamError(err)
	}

	if current == ip {
		log.Info("record already current", map[string]any{"ip": ip})
		return JSON(200, UpdateResult{
			Message: messageUpToDate,
			Record:  target.Name,
			IP:      ip,
			Updated: false,
		})
	}

	if err := a.provider.UpsertRecord(ctx.Context(), target, ip); err != nil {
		log.Error("record upsert failed", map[string]any{"zone_id": target.ZoneID})
		return nil, upstreamError(err)
	}

	log.Info("record updated", map[string]any{"ip": ip, "ttl": target.TTLSeconds})
	return JSON(200, UpdateResult{
		Message: messageUpdated,
		Record:  target.Name,
		IP:      ip,
		Updated: true,
	})
}
