// Package verify implements the contact verification challenge used to
// prove ownership of an email address or phone number during registration.
package verify

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"time"

	"github.com/srstalent/talentconnect/internal/client/remote"
)

// State of a verification challenge.
type State int

const (
	StateIdle State = iota
	StatePending
	StateVerifying
	StateVerified
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateVerifying:
		return "verifying"
	case StateVerified:
		return "verified"
	default:
		return "unknown"
	}
}

// ResendCooldown is how long a resend stays blocked after a code is sent.
const ResendCooldown = 60 * time.Second

// CodeLength is the exact number of digits a verification code carries.
const CodeLength = 6

var (
	ErrMalformedTarget = errors.New("malformed contact value")
	ErrMalformedCode   = errors.New("verification code must be 6 digits")
	ErrResendNotReady  = errors.New("resend not available yet")
	ErrNotPending      = errors.New("no code has been requested")
	ErrAlreadyVerified = errors.New("already verified")
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	codePattern  = regexp.MustCompile(`^[0-9]{6}$`)
)

// ValidTarget reports whether value is a well-formed contact for the
// channel: a standard email address, or exactly ten digits for phone.
func ValidTarget(channel remote.Channel, value string) bool {
	switch channel {
	case remote.ChannelEmail:
		return emailPattern.MatchString(value)
	case remote.ChannelPhone:
		return phonePattern.MatchString(value)
	default:
		return false
	}
}

// CodeSender delivers a verification code to a contact target.
// remote.Service satisfies it.
type CodeSender interface {
	RequestCode(ctx context.Context, channel remote.Channel, target string) error
}

// Challenge is the per-contact verification state machine:
//
//	Idle -> Pending -> Verifying -> Verified
//
// with resend looping on Pending once the cooldown elapses. Malformed
// targets and codes are rejected locally, without network traffic and
// without a state change.
type Challenge struct {
	channel  remote.Channel
	sender   CodeSender
	verifier CodeVerifier
	now      func() time.Time

	mu         sync.Mutex
	state      State
	target     string
	resendFrom time.Time
	reqToken   uint64
	onVerified func()
}

// Option configures a Challenge.
type Option func(*Challenge)

// WithClock replaces the wall clock, letting tests drive the resend
// countdown without sleeping.
func WithClock(now func() time.Time) Option {
	return func(c *Challenge) { c.now = now }
}

// OnVerified registers a hook fired exactly once, on the transition into
// Verified.
func OnVerified(fn func()) Option {
	return func(c *Challenge) { c.onVerified = fn }
}

func NewChallenge(channel remote.Channel, sender CodeSender, verifier CodeVerifier, opts ...Option) *Challenge {
	c := &Challenge{
		channel:  channel,
		sender:   sender,
		verifier: verifier,
		now:      time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Challenge) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Challenge) Target() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *Challenge) Verified() bool {
	return c.State() == StateVerified
}

// ResendIn returns how long until a resend is allowed, zero when it is.
func (c *Challenge) ResendIn() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePending {
		return 0
	}
	d := c.resendFrom.Sub(c.now())
	if d < 0 {
		return 0
	}
	return d
}

// Request validates the target, asks the service to send a code, and
// enters Pending. A malformed target fails with ErrMalformedTarget and the
// challenge stays in Idle with nothing sent.
func (c *Challenge) Request(ctx context.Context, target string) error {
	c.mu.Lock()
	if c.state == StateVerified {
		c.mu.Unlock()
		return ErrAlreadyVerified
	}
	if !ValidTarget(c.channel, target) {
		c.mu.Unlock()
		return ErrMalformedTarget
	}
	c.reqToken++
	token := c.reqToken
	c.mu.Unlock()

	if err := c.sender.RequestCode(ctx, c.channel, target); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.reqToken {
		return nil
	}
	c.state = StatePending
	c.target = target
	c.resendFrom = c.now().Add(ResendCooldown)
	return nil
}

// Resend re-sends the code to the already-requested target. It is only
// allowed from Pending and only after the cooldown has elapsed; on success
// the cooldown restarts and the challenge stays in Pending.
func (c *Challenge) Resend(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StatePending {
		c.mu.Unlock()
		return ErrNotPending
	}
	if c.now().Before(c.resendFrom) {
		c.mu.Unlock()
		return ErrResendNotReady
	}
	target := c.target
	c.reqToken++
	token := c.reqToken
	c.mu.Unlock()

	if err := c.sender.RequestCode(ctx, c.channel, target); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.reqToken {
		return nil
	}
	c.resendFrom = c.now().Add(ResendCooldown)
	return nil
}

// Submit checks the entered code. Anything but exactly six digits is
// rejected locally and the challenge stays in Pending. A well-formed code
// moves through Verifying; the verifier's verdict decides between Verified
// and a return to Pending.
func (c *Challenge) Submit(ctx context.Context, code string) error {
	c.mu.Lock()
	if c.state == StateVerified {
		c.mu.Unlock()
		return ErrAlreadyVerified
	}
	if c.state != StatePending {
		c.mu.Unlock()
		return ErrNotPending
	}
	if !codePattern.MatchString(code) {
		c.mu.Unlock()
		return ErrMalformedCode
	}
	c.state = StateVerifying
	target := c.target
	c.reqToken++
	token := c.reqToken
	c.mu.Unlock()

	err := c.verifier.Verify(ctx, c.channel, target, code)

	c.mu.Lock()
	if token != c.reqToken {
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		c.state = StatePending
		c.mu.Unlock()
		return err
	}
	c.state = StateVerified
	fn := c.onVerified
	c.onVerified = nil
	c.mu.Unlock()

	// Fired outside the lock; owners read challenge state from the hook.
	if fn != nil {
		fn()
	}
	return nil
}

// Cancel discards the challenge, returning it to Idle. A verified
// challenge stays verified; cancellation only abandons an unfinished
// attempt. Responses from requests still in flight are discarded.
func (c *Challenge) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateVerified {
		return
	}
	c.reqToken++
	c.state = StateIdle
	c.target = ""
	c.resendFrom = time.Time{}
}
