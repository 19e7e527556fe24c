// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package monitor tracks the reachability and authentication state of one
// remote service.
//
// A [Monitor] is owned by exactly one transport, which is its only writer
// (via [Monitor.Report]). Any number of readers may call [Monitor.State] or
// register listeners with [Monitor.Subscribe].
package monitor

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/inbox-admin/internal/logger"
	"github.com/MKhiriev/inbox-admin/models"
)

// Listener is called with the new state after every state change.
type Listener func(models.ConnectionState)

type subscription struct {
	id       uint64
	listener Listener
}

// Monitor holds the [models.ConnectionState] of one service.
type Monitor struct {
	service string

	mu          sync.Mutex
	state       models.ConnectionState
	subscribers []subscription
	nextID      uint64

	// notifyMu serialises listener calls so that listeners observe changes
	// in the order they were made.
	notifyMu sync.Mutex

	now    func() time.Time
	logger *logger.Logger
}

// New returns a monitor for service in the initial Connecting state.
func New(service string, log *logger.Logger) *Monitor {
	if log == nil {
		log = logger.Nop()
	}
	m := &Monitor{
		service: service,
		now:     time.Now,
		logger:  log.WithComponent("monitor"),
	}
	m.state = models.ConnectionState{Status: models.Connecting, Since: m.now()}
	return m
}

// Service returns the name of the monitored service.
func (m *Monitor) Service() string {
	return m.service
}

// State returns the current connection state.
func (m *Monitor) State() models.ConnectionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers listener and returns a function that removes it.
// Listeners run synchronously, in subscription order, on every state change.
// A panicking listener is logged and does not stop the others. Listeners
// must not call Report. The returned function is safe to call more than once.
func (m *Monitor) Subscribe(listener Listener) (unsubscribe func()) {
	m.mu.Lock()
	m.nextID++
	id := m.nextID
	m.subscribers = append(m.subscribers, subscription{id: id, listener: listener})
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			for i, sub := range m.subscribers {
				if sub.id == id {
					m.subscribers = append(m.subscribers[:i:i], m.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

// Report feeds the outcome of one transport call into the state machine:
//
//	attempt:     Error, Disconnected           -> Connecting
//	reachable:   Connecting, Disconnected, Error -> Connected
//	unreachable: Connecting, Connected, Error  -> Disconnected
//	auth failed: any                           -> Error
//
// A repeated failure with a different detail updates Reason and counts as a
// change. LastFailure always holds the latest failure detail.
func (m *Monitor) Report(outcome models.Outcome) {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	next, changed := transition(m.state, outcome)
	if !changed {
		m.mu.Unlock()
		return
	}
	next.Since = m.now()
	prev := m.state
	m.state = next
	listeners := make([]Listener, 0, len(m.subscribers))
	for _, sub := range m.subscribers {
		listeners = append(listeners, sub.listener)
	}
	m.mu.Unlock()

	m.logger.Debug().
		Str("service", m.service).
		Stringer("from", prev.Status).
		Stringer("to", next.Status).
		Str("reason", next.Reason).
		Msg("connection state changed")

	for _, listener := range listeners {
		m.notify(listener, next)
	}
}

func (m *Monitor) notify(listener Listener, state models.ConnectionState) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error().
				Str("service", m.service).
				Str("panic", fmt.Sprint(r)).
				Msg("connection listener panicked")
		}
	}()
	listener(state)
}

func transition(state models.ConnectionState, outcome models.Outcome) (models.ConnectionState, bool) {
	next := state

	switch outcome.Type {
	case models.OutcomeAttempt:
		if state.Status != models.Error && state.Status != models.Disconnected {
			return state, false
		}
		next.Status = models.Connecting
		next.Reason = ""

	case models.OutcomeReachable:
		if state.Status == models.Connected {
			return state, false
		}
		next.Status = models.Connected
		next.Reason = ""

	case models.OutcomeUnreachable:
		if state.Status == models.Disconnected && state.Reason == outcome.Detail {
			return state, false
		}
		next.Status = models.Disconnected
		next.Reason = outcome.Detail
		next.LastFailure = outcome.Detail

	case models.OutcomeAuthFailed:
		if state.Status == models.Error && state.Reason == outcome.Detail {
			return state, false
		}
		next.Status = models.Error
		next.Reason = outcome.Detail
		next.LastFailure = outcome.Detail

	default:
		return state, false
	}

	return next, true
}
