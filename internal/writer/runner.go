// internal/writer/runner.go
package writer

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Run publishes source() on every tick until ctx is done.
// One goroutine, no overlap. A failed tick is logged and retried on the next one.
func (p *Publisher) Run(ctx context.Context, interval time.Duration, source func() []uint16) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.Publish(source()); err != nil {
				p.log.Warn("publish failed", zap.Error(err))
			}
		}
	}
}
