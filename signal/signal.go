// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package signal provides [Signal], a typed, synchronous,
// multi-subscriber notification channel with an explicit lifecycle.
//
// A Signal separates when something happens (the sender calls
// [Signal.Fire]) from who receives it (handlers registered through
// [Signal.Connect]) and what they do in response. Handlers are called
// in the order they were connected, in the current goroutine. Signals
// are not safe for concurrent use; they assume a single mutator.
package signal

import (
	"fmt"
	"log/slog"
	"slices"
)

// Void is the payload type for signals that carry no data.
type Void = struct{}

// Signal is a typed notification channel. The zero value is ready
// to use, but signals are typically created with [New].
type Signal[T any] struct {
	// conns are the live connections, in registration order.
	conns []*Connection[T]

	// destroyed is set by [Signal.Destroy]; a destroyed signal
	// never fires again and accepts no new connections.
	destroyed bool
}

// Connection is returned by [Signal.Connect] and can be used
// to disconnect the handler later.
type Connection[T any] struct {
	signal    *Signal[T]
	handler   func(v T)
	connected bool
}

// New returns a new [Signal].
func New[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Connect registers the given handler, which will be called on every
// subsequent [Signal.Fire] until it is disconnected. Connecting to a
// destroyed signal returns a connection that is already disconnected.
func (s *Signal[T]) Connect(fun func(v T)) *Connection[T] {
	c := &Connection[T]{signal: s, handler: fun}
	if s.destroyed || fun == nil {
		return c
	}
	c.connected = true
	s.conns = append(s.conns, c)
	return c
}

// Once registers the given handler for the next firing only.
// The connection is disconnected before the handler runs.
func (s *Signal[T]) Once(fun func(v T)) *Connection[T] {
	var c *Connection[T]
	c = s.Connect(func(v T) {
		c.Disconnect()
		fun(v)
	})
	return c
}

// Fire calls every currently connected handler with the given value,
// in the order they were connected. Handlers connected during the firing
// are not called until the next firing, and handlers disconnected during
// the firing are skipped. A panic in one handler is logged and does not
// prevent the remaining handlers from being called. Fire does nothing
// on a destroyed signal.
func (s *Signal[T]) Fire(v T) {
	if s.destroyed || len(s.conns) == 0 {
		return
	}
	for _, c := range slices.Clone(s.conns) {
		if !c.connected {
			continue
		}
		c.call(v)
	}
}

// call calls the handler, recovering from any panic in it.
func (c *Connection[T]) call(v T) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("signal.Signal.Fire: handler panicked", "panic", fmt.Sprint(r))
		}
	}()
	c.handler(v)
}

// Len returns the number of connected handlers.
func (s *Signal[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.conns)
}

// DisconnectAll disconnects every handler. The signal remains usable.
func (s *Signal[T]) DisconnectAll() {
	for _, c := range s.conns {
		c.connected = false
	}
	s.conns = nil
}

// Destroy disconnects every handler and marks the signal inert:
// subsequent calls to [Signal.Fire] do nothing and [Signal.Connect]
// returns disconnected connections. It can not be undone.
func (s *Signal[T]) Destroy() {
	s.DisconnectAll()
	s.destroyed = true
}

// Destroyed returns whether [Signal.Destroy] has been called.
func (s *Signal[T]) Destroyed() bool {
	return s.destroyed
}

// Disconnect removes the handler from its signal.
// It is safe to call more than once.
func (c *Connection[T]) Disconnect() {
	if c == nil || !c.connected {
		return
	}
	c.connected = false
	s := c.signal
	s.conns = slices.DeleteFunc(s.conns, func(o *Connection[T]) bool { return o == c })
}

// Connected returns whether the handler is still connected.
func (c *Connection[T]) Connected() bool {
	return c != nil && c.connected
}
