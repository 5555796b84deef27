package infra

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitoAbierto is returned while the breaker refuses calls.
var ErrCircuitoAbierto = errors.New("circuito abierto")

// CircuitBreaker protects a flaky downstream (SMTP) from being hammered.
// After maxFallos consecutive failures it opens for la duracion indicada,
// then lets the next call through as a probe.
type CircuitBreaker struct {
	mu           sync.Mutex
	fallos       int
	maxFallos    int
	abiertoDesde time.Time
	enfriamiento time.Duration
}

func NewCircuitBreaker(maxFallos int, enfriamiento time.Duration) *CircuitBreaker {
	return &CircuitBreaker{maxFallos: maxFallos, enfriamiento: enfriamiento}
}

func (cb *CircuitBreaker) Ejecutar(fn func() error) error {
	cb.mu.Lock()
	if cb.fallos >= cb.maxFallos && time.Since(cb.abiertoDesde) < cb.enfriamiento {
		cb.mu.Unlock()
		return ErrCircuitoAbierto
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err != nil {
		cb.fallos++
		if cb.fallos >= cb.maxFallos {
			cb.abiertoDesde = time.Now()
		}
		return err
	}
	cb.fallos = 0
	return nil
}
