// pkg/core/query.go
package core

import (
	"context"
	"sync"
)

type queryStatusKey struct{}

// QueryStatus collects the first failed command of the queries run under
// a context returned by WithQueryStatus. Backends report into it, so callers
// can tell a failed query from one that found nothing.
type QueryStatus struct {
	mu     sync.Mutex
	failed *CommandResult
}

// WithQueryStatus returns a context carrying a fresh QueryStatus
func WithQueryStatus(ctx context.Context) (context.Context, *QueryStatus) {
	st := &QueryStatus{}
	return context.WithValue(ctx, queryStatusKey{}, st), st
}

// ReportQuery records res on the context's QueryStatus when it failed
func ReportQuery(ctx context.Context, res CommandResult) {
	st, ok := ctx.Value(queryStatusKey{}).(*QueryStatus)
	if !ok || res.Success() {
		return
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.failed == nil {
		st.failed = &res
	}
}

// Failed returns the first failed result reported, if any
func (s *QueryStatus) Failed() (CommandResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failed == nil {
		return CommandResult{}, false
	}
	return *s.failed, true
}
