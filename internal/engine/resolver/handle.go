package resolver

import (
	"context"
	"fmt"

	"go.trai.ch/ghwu/internal/core/domain"
	"go.trai.ch/ghwu/internal/core/ports"
)

var _ ports.VersionResolver = Handle{}

// Handle is a client of a Service. It is a small value and may be copied
// freely across goroutines.
type Handle struct {
	svc *Service
}

// GetVersions returns every version of resource, fetching it upstream at most
// once per Service. The returned slice belongs to the caller.
func (h Handle) GetVersions(ctx context.Context, resource domain.Resource) ([]domain.Version, error) {
	reply := make(chan result, 1)

	select {
	case h.svc.inbox <- request{resource: resource, reply: reply}:
	case <-h.svc.done:
		return nil, domain.ErrChannelClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-reply:
		return res.versions, res.err
	case <-h.svc.done:
		// The loop may have replied right before exiting.
		select {
		case res := <-reply:
			return res.versions, res.err
		default:
			return nil, domain.ErrChannelClosed
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Resolve determines the latest version of resource, pinned at current.
// Lookup failures and missing data are logged and carried in the outcome.
func (h Handle) Resolve(ctx context.Context, resource domain.Resource, current domain.Version) domain.Outcome {
	out := domain.Outcome{Resource: resource, Current: current}

	versions, err := h.GetVersions(ctx, resource)
	if err != nil {
		out.Err = err
		h.svc.logger.Debug(fmt.Sprintf("%s: %v", resource, err))
		return out
	}

	latest, ok := domain.Latest(versions)
	if !ok {
		h.svc.logger.Warn(fmt.Sprintf("%s: no versions available", resource))
		return out
	}

	if !domain.ContainsVersion(versions, current) {
		h.svc.logger.Warn(fmt.Sprintf("%s: current version %s not found upstream", resource, current))
	}

	// Among equivalent tags keep the one already pinned.
	if latest.Compare(current) == 0 {
		latest = current
	}
	out.Latest = latest
	return out
}
