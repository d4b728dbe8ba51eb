// Package register implements the multi-step account registration flow:
// collect personal details, verify both contact channels, accept the terms,
// then create the account on the hosted service.
package register

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/srstalent/talentconnect/internal/client/models"
	"github.com/srstalent/talentconnect/internal/client/remote"
	"github.com/srstalent/talentconnect/internal/client/verify"
)

// State of the registration flow.
type State int

const (
	StateCollectingInfo State = iota
	StateAwaitingVerification
	StateReadyToSubmit
	StateSubmitting
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateCollectingInfo:
		return "collecting-info"
	case StateAwaitingVerification:
		return "awaiting-verification"
	case StateReadyToSubmit:
		return "ready-to-submit"
	case StateSubmitting:
		return "submitting"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// MinPasswordLength mirrors the hosted service's password policy so the
// flow can reject weak passwords before any verification effort is spent.
const MinPasswordLength = 6

var (
	ErrNotReady       = errors.New("registration is not ready to submit")
	ErrTermsRequired  = errors.New("terms must be accepted")
	ErrSubmitInFlight = errors.New("submission already in progress")
	ErrComplete       = errors.New("registration already complete")
)

// Draft holds the user-entered registration fields.
type Draft struct {
	FullName      string
	Email         string
	Password      string
	ContactNumber string
	AgreeTerms    bool
}

// Flow sequences registration:
//
//	CollectingInfo -> AwaitingVerification -> ReadyToSubmit -> Submitting -> Complete
//
// A rejected submission returns to ReadyToSubmit with every field intact.
// Only one submission may be in flight at a time.
type Flow struct {
	service remote.Service

	mu     sync.Mutex
	state  State
	draft  Draft
	email  *verify.Challenge
	phone  *verify.Challenge
	result *models.Identity
}

// NewFlow builds a registration flow. The verifier decides how entered
// codes are checked; pass verify.AcceptAllVerifier{} for the demo policy.
func NewFlow(service remote.Service, verifier verify.CodeVerifier, opts ...verify.Option) *Flow {
	f := &Flow{service: service}
	emailOpts := append([]verify.Option{verify.OnVerified(f.onChannelVerified)}, opts...)
	phoneOpts := append([]verify.Option{verify.OnVerified(f.onChannelVerified)}, opts...)
	f.email = verify.NewChallenge(remote.ChannelEmail, service, verifier, emailOpts...)
	f.phone = verify.NewChallenge(remote.ChannelPhone, service, verifier, phoneOpts...)
	return f
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Draft returns a copy of the entered fields.
func (f *Flow) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// EmailChallenge exposes the email verification state machine.
func (f *Flow) EmailChallenge() *verify.Challenge { return f.email }

// PhoneChallenge exposes the phone verification state machine.
func (f *Flow) PhoneChallenge() *verify.Challenge { return f.phone }

// Identity returns the created account after a completed registration.
func (f *Flow) Identity() *models.Identity {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result.Clone()
}

// SubmitDetails validates the personal-info step and advances the flow to
// verification. Problems are aggregated into a single error so the form
// can show them all at once.
func (f *Flow) SubmitDetails(d Draft) error {
	var problems []string
	if strings.TrimSpace(d.FullName) == "" {
		problems = append(problems, "full name is required")
	}
	if !verify.ValidTarget(remote.ChannelEmail, d.Email) {
		problems = append(problems, "email address is invalid")
	}
	if !verify.ValidTarget(remote.ChannelPhone, d.ContactNumber) {
		problems = append(problems, "contact number must be 10 digits")
	}
	if len(d.Password) < MinPasswordLength {
		problems = append(problems, fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateComplete {
		return ErrComplete
	}
	f.draft = d
	f.state = StateAwaitingVerification
	f.advanceLocked()
	return nil
}

// SetAgreeTerms records the terms checkbox.
func (f *Flow) SetAgreeTerms(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.AgreeTerms = v
}

func (f *Flow) onChannelVerified() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.advanceLocked()
}

// advanceLocked moves AwaitingVerification to ReadyToSubmit once both
// channels are verified. Callers hold f.mu.
func (f *Flow) advanceLocked() {
	if f.state == StateAwaitingVerification && f.email.Verified() && f.phone.Verified() {
		f.state = StateReadyToSubmit
	}
}

// Submit creates the account. It requires both verified channels and
// accepted terms; anything less fails without touching the service. A
// second Submit while one is in flight is ignored. Rejection by the
// service keeps the draft and returns to ReadyToSubmit so the user can
// retry.
func (f *Flow) Submit(ctx context.Context) (*models.Identity, error) {
	f.mu.Lock()
	switch f.state {
	case StateComplete:
		f.mu.Unlock()
		return nil, ErrComplete
	case StateSubmitting:
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	case StateReadyToSubmit:
	default:
		f.mu.Unlock()
		return nil, ErrNotReady
	}
	if !f.email.Verified() || !f.phone.Verified() {
		f.mu.Unlock()
		return nil, ErrNotReady
	}
	if !f.draft.AgreeTerms {
		f.mu.Unlock()
		return nil, ErrTermsRequired
	}
	d := f.draft
	f.state = StateSubmitting
	f.mu.Unlock()

	metadata := map[string]string{
		models.MetaFullName:      d.FullName,
		models.MetaContactNumber: d.ContactNumber,
	}
	identity, err := f.service.SignUp(ctx, d.Email, d.Password, metadata)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateReadyToSubmit
		return nil, err
	}
	f.state = StateComplete
	f.result = identity
	f.draft.Password = ""
	return identity.Clone(), nil
}
