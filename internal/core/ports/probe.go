package ports

import (
	"context"

	"dbprobe/internal/core/domain"
)

//go:generate mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks

// Prober performs one connect-query-disconnect cycle per call.
type Prober interface {
	// Probe never returns an error; failures are carried in the result.
	Probe(ctx context.Context) domain.ProbeResult
	// Target returns the probed host, for display.
	Target() string
}
