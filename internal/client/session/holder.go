// Package session keeps the client's current signed-in identity and fans
// out change notifications to interested workflows in order.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/srstalent/talentconnect/internal/client/models"
	"github.com/srstalent/talentconnect/internal/client/remote"
	"github.com/srstalent/talentconnect/internal/logging"
)

// Listener receives the identity after every applied change. A nil identity
// means signed out.
type Listener func(identity *models.Identity)

// Holder is the single source of truth for "who is signed in" on this
// client. All mutations are serialized, and listeners observe them in the
// exact order they were applied.
//
// Refresh responses race with explicit Set/Clear calls: a user may sign out
// while a refresh is still in flight. Each refresh records a request token,
// and any later mutation bumps the token, so a refresh result that arrives
// after a newer mutation is discarded instead of resurrecting the session.
type Holder struct {
	service remote.Service
	logger  logging.Logger

	mu       sync.Mutex
	identity *models.Identity
	reqToken uint64
	nextID   int
	handlers map[int]Listener
}

func NewHolder(service remote.Service, logger logging.Logger) *Holder {
	return &Holder{
		service:  service,
		logger:   logger,
		handlers: make(map[int]Listener),
	}
}

// Current returns a copy of the signed-in identity, or nil when signed out.
func (h *Holder) Current() *models.Identity {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.identity.Clone()
}

// Subscribe registers fn for identity change notifications and returns an
// unsubscribe func. fn is invoked synchronously under the holder's lock, so
// it must not call back into the holder.
func (h *Holder) Subscribe(fn Listener) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.handlers[id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.handlers, id)
	}
}

// Set installs the identity as current and notifies listeners. Call it
// after a successful sign-in or a profile save.
func (h *Holder) Set(identity *models.Identity) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reqToken++
	h.apply(identity)
}

// Clear drops the current identity and notifies listeners.
func (h *Holder) Clear() {
	h.Set(nil)
}

// Refresh asks the service who is signed in and installs the answer. An
// unauthorized response clears the session; transport errors leave the
// current state untouched. The result is discarded when a newer mutation
// has been applied while the request was in flight.
func (h *Holder) Refresh(ctx context.Context) error {
	h.mu.Lock()
	h.reqToken++
	token := h.reqToken
	h.mu.Unlock()

	identity, err := h.service.CurrentIdentity(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()
	if token != h.reqToken {
		h.logger.Debug(ctx, "discarding stale session refresh response")
		return nil
	}

	switch {
	case err == nil:
		h.apply(identity)
		return nil
	case isUnauthorized(err):
		h.apply(nil)
		return nil
	default:
		return err
	}
}

// apply must be called with h.mu held.
func (h *Holder) apply(identity *models.Identity) {
	h.identity = identity
	for _, fn := range h.handlers {
		fn(identity.Clone())
	}
}

func isUnauthorized(err error) bool {
	return errors.Is(err, remote.ErrUnauthorized)
}
