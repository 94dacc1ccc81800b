package ebiten

import (
	"time"

	"github.com/google/uuid"

	"mapquiz/pkg/engine/world"
	"mapquiz/pkg/game/renderer"
)

// AddCallout adds a floating message at a map point. Any callout already
// at the same point is replaced. A zero duration never expires.
func (e *EbitenRenderer) AddCallout(at world.Point, message string, style renderer.TextStyle, d time.Duration) uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := time.Now().UnixMilli()
	var expiresAt int64
	if d > 0 {
		expiresAt = now + d.Milliseconds()
	}

	filtered := make([]Callout, 0, len(e.callouts)+1)
	for _, c := range e.callouts {
		if c.Pos != at {
			filtered = append(filtered, c)
		}
	}

	id := uuid.New()
	e.callouts = append(filtered, Callout{
		ID:        id,
		Pos:       at,
		Message:   message,
		Style:     style,
		ExpiresAt: expiresAt,
		CreatedAt: now,
	})
	return id
}

// RemoveCallout drops the callout with id. It is a no-op if the callout
// was already replaced or expired.
func (e *EbitenRenderer) RemoveCallout(id uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, c := range e.callouts {
		if c.ID == id {
			e.callouts = append(e.callouts[:i], e.callouts[i+1:]...)
			return
		}
	}
}

// pruneCallouts removes expired callouts; called once per tick
func (e *EbitenRenderer) pruneCallouts(now int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	kept := e.callouts[:0]
	for _, c := range e.callouts {
		if c.ExpiresAt == 0 || c.ExpiresAt > now {
			kept = append(kept, c)
		}
	}
	e.callouts = kept
}

// calloutAlpha fades a callout out over its last fadeOutMs
func calloutAlpha(c Callout, now int64) float32 {
	if c.ExpiresAt == 0 {
		return 1
	}
	left := c.ExpiresAt - now
	if left >= fadeOutMs {
		return 1
	}
	if left <= 0 {
		return 0
	}
	return float32(left) / fadeOutMs
}
