package services

import (
	"sync"
	"time"

	"github.com/kristevi/ourweather/internal/models"
)

// State is one consistent snapshot of everything a screen renders. The
// response pointers are never mutated after they are published.
type State struct {
	Loading            bool                            `json:"loading"`
	Error              string                          `json:"error,omitempty"`
	CurrentWeather     *models.CurrentWeatherResponse  `json:"current_weather,omitempty"`
	Forecast           *models.WeatherForecastResponse `json:"forecast,omitempty"`
	UVIndex            *models.UVIndexData             `json:"uv_index,omitempty"`
	CurrentLocation    *models.LocationData            `json:"current_location,omitempty"`
	LastUpdateTime     *time.Time                      `json:"last_update_time,omitempty"`
	AutoRefreshEnabled bool                            `json:"auto_refresh_enabled"`
}

// Store holds the State and broadcasts every change to its subscribers.
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers map[int]chan State
	nextID      int
}

func NewStore(initial State) *Store {
	return &Store{
		state:       initial,
		subscribers: make(map[int]chan State),
	}
}

func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Update applies fn to the state and publishes the result.
func (s *Store) Update(fn func(*State)) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
	snapshot := s.state
	for _, ch := range s.subscribers {
		// Each subscriber keeps only the newest snapshot.
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
	return snapshot
}

// Subscribe returns a channel that receives the current snapshot right away
// and then the latest one after every change, plus a func to unsubscribe.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan State, 1)
	ch <- s.state
	s.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			close(ch)
			s.mu.Unlock()
		})
	}
}
