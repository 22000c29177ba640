package resolver

import "go.trai.ch/ghwu/internal/core/domain"

// request asks the service loop for the versions of a resource.
// reply must be buffered so the loop never blocks on an abandoned waiter.
type request struct {
	resource domain.Resource
	reply    chan<- result
}

// completed is sent by a fetch goroutine when its upstream call returns.
type completed struct {
	resource domain.Resource
	versions []domain.Version
	err      error
}

// result is the one-shot answer to a request.
type result struct {
	versions []domain.Version
	err      error
}
