package selection

import (
	"sync"

	"github.com/kedare/dryspot/internal/logger"
)

// LocationRecorder persists settled locations.
type LocationRecorder interface {
	AddLocation(location string) error
}

// RecordSettled subscribes rec to c. Each settled location is recorded exactly
// once; commits still waiting for their transition are not recorded.
func RecordSettled(c *Controller, rec LocationRecorder) {
	if c == nil || rec == nil {
		return
	}

	var (
		mu   sync.Mutex
		last uint64
	)

	c.Subscribe(func(s State) {
		if s.Phase != PhaseShowing {
			return
		}

		mu.Lock()
		if s.Generation <= last {
			mu.Unlock()

			return
		}
		last = s.Generation
		mu.Unlock()

		if err := rec.AddLocation(s.Location); err != nil {
			logger.Log.Warnf("Failed to record location history: %v", err)
		}
	})
}
