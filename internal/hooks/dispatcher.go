// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hooks

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-ephemeral-sessions/internal/logger"
	"github.com/MKhiriev/go-ephemeral-sessions/models"
)

// LoginSuccessHandler runs after the host accepted a login.
type LoginSuccessHandler func(ctx context.Context, account models.Account) Outcome

// FilterAppDataHandler may add entries to the app data sent to the browser.
type FilterAppDataHandler func(ctx context.Context, isAdmin bool, data map[string]any) Outcome

// Plugin registers its handlers on a dispatcher.
type Plugin interface {
	Name() string
	Register(d *Dispatcher)
}

type named[H any] struct {
	name    string
	handler H
}

// Dispatcher runs registered handlers in registration order.
type Dispatcher struct {
	mu            sync.RWMutex
	loginSuccess  []named[LoginSuccessHandler]
	filterAppData []named[FilterAppDataHandler]

	logger *logger.Logger
}

// NewDispatcher returns a Dispatcher with no handlers.
func NewDispatcher(logger *logger.Logger) *Dispatcher {
	return &Dispatcher{logger: logger}
}

// Install registers every plugin.
func (d *Dispatcher) Install(plugins ...Plugin) {
	for _, p := range plugins {
		p.Register(d)
		d.logger.Debug().Str("plugin", p.Name()).Msg("hook plugin installed")
	}
}

// RegisterLoginSuccess appends h to the login.success handlers under name.
func (d *Dispatcher) RegisterLoginSuccess(name string, h LoginSuccessHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.loginSuccess = append(d.loginSuccess, named[LoginSuccessHandler]{name: name, handler: h})
}

// RegisterFilterAppData appends h to the filter.app-data handlers under name.
func (d *Dispatcher) RegisterFilterAppData(name string, h FilterAppDataHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.filterAppData = append(d.filterAppData, named[FilterAppDataHandler]{name: name, handler: h})
}

// OnLoginSuccess dispatches the login.success event.
func (d *Dispatcher) OnLoginSuccess(ctx context.Context, account models.Account) []Outcome {
	d.mu.RLock()
	handlers := d.loginSuccess
	d.mu.RUnlock()

	outcomes := make([]Outcome, 0, len(handlers))
	for _, h := range handlers {
		outcomes = append(outcomes, d.run(ctx, EventLoginSuccess, h.name, func() Outcome {
			return h.handler(ctx, account)
		}))
	}
	return outcomes
}

// OnFilterAppData dispatches the filter.app-data event. Handlers mutate data
// in place.
func (d *Dispatcher) OnFilterAppData(ctx context.Context, isAdmin bool, data map[string]any) []Outcome {
	d.mu.RLock()
	handlers := d.filterAppData
	d.mu.RUnlock()

	outcomes := make([]Outcome, 0, len(handlers))
	for _, h := range handlers {
		outcomes = append(outcomes, d.run(ctx, EventFilterAppData, h.name, func() Outcome {
			return h.handler(ctx, isAdmin, data)
		}))
	}
	return outcomes
}

func (d *Dispatcher) run(ctx context.Context, event, name string, fn func() Outcome) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = Failed(fmt.Errorf("%w: %v", ErrHandlerPanicked, r))
		}
		outcome.Event = event
		outcome.Handler = name

		if !outcome.OK() {
			logger.FromContextOr(ctx, d.logger).Warn().
				Err(outcome.Err).
				Str("event", event).
				Str("handler", name).
				Msg("hook handler failed")
		}
	}()

	return fn()
}
