package location

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/kristevi/ourweather/internal/models"
)

var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrLocationDisabled = errors.New("location services disabled")
	ErrFeedClosed       = errors.New("location feed closed")
)

// Provider is the device's source of positions.
type Provider interface {
	HasPermission() bool
	IsEnabled() bool
	// LastKnown returns a cached position, if any, without blocking.
	LastKnown() (models.LocationData, bool)
	// Updates streams every fresh position until ctx ends.
	Updates(ctx context.Context) (<-chan models.LocationData, error)
}

// Feed is a Provider whose positions are pushed in by the device, e.g. from
// an HTTP endpoint the phone posts its GPS fixes to.
type Feed struct {
	mu          sync.RWMutex
	permission  bool
	enabled     bool
	last        *models.LocationData
	subscribers map[int]chan models.LocationData
	nextID      int
	closed      bool
	logger      *zap.Logger
}

func NewFeed(permission, enabled bool, logger *zap.Logger) *Feed {
	return &Feed{
		permission:  permission,
		enabled:     enabled,
		subscribers: make(map[int]chan models.LocationData),
		logger:      logger,
	}
}

func (f *Feed) HasPermission() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.permission
}

func (f *Feed) IsEnabled() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.enabled
}

func (f *Feed) SetPermission(granted bool) {
	f.mu.Lock()
	f.permission = granted
	f.mu.Unlock()
}

func (f *Feed) SetEnabled(enabled bool) {
	f.mu.Lock()
	f.enabled = enabled
	f.mu.Unlock()
}

// Seed sets the last known position without notifying subscribers.
func (f *Feed) Seed(loc models.LocationData) {
	f.mu.Lock()
	f.last = &loc
	f.mu.Unlock()
}

func (f *Feed) LastKnown() (models.LocationData, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.last == nil {
		return models.LocationData{}, false
	}
	return *f.last, true
}

// Publish records a fresh position and hands it to every subscriber. A
// subscriber that has not consumed the previous fix only sees the newest.
func (f *Feed) Publish(loc models.LocationData) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.last = &loc
	for _, ch := range f.subscribers {
		select {
		case ch <- loc:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- loc
		}
	}

	f.logger.Debug("Location published",
		zap.Float64("lat", loc.Latitude),
		zap.Float64("lon", loc.Longitude),
		zap.Int("subscribers", len(f.subscribers)))
}

func (f *Feed) Updates(ctx context.Context) (<-chan models.LocationData, error) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil, ErrFeedClosed
	}
	if !f.permission {
		f.mu.Unlock()
		return nil, ErrPermissionDenied
	}
	if !f.enabled {
		f.mu.Unlock()
		return nil, ErrLocationDisabled
	}

	id := f.nextID
	f.nextID++
	buffered := make(chan models.LocationData, 1)
	f.subscribers[id] = buffered
	f.mu.Unlock()

	out := make(chan models.LocationData)
	go func() {
		defer close(out)
		defer f.unsubscribe(id)
		for {
			select {
			case <-ctx.Done():
				return
			case loc, ok := <-buffered:
				if !ok {
					return
				}
				select {
				case out <- loc:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (f *Feed) unsubscribe(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ch, ok := f.subscribers[id]; ok {
		delete(f.subscribers, id)
		close(ch)
	}
}

// Close ends every active subscription.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	for id, ch := range f.subscribers {
		delete(f.subscribers, id)
		close(ch)
	}
}

var _ Provider = (*Feed)(nil)
