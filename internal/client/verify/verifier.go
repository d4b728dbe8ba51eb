package verify

import (
	"context"

	"github.com/srstalent/talentconnect/internal/client/remote"
)

// CodeVerifier decides whether an entered code proves ownership of the
// target. The caller has already checked the code's shape.
type CodeVerifier interface {
	Verify(ctx context.Context, channel remote.Channel, target, code string) error
}

// RemoteVerifier confirms the code against the hosted service.
type RemoteVerifier struct {
	service remote.Service
}

func NewRemoteVerifier(service remote.Service) *RemoteVerifier {
	return &RemoteVerifier{service: service}
}

func (v *RemoteVerifier) Verify(ctx context.Context, channel remote.Channel, target, code string) error {
	return v.service.ConfirmCode(ctx, channel, target, code)
}

// AcceptAllVerifier accepts every well-formed code. It is the demo policy
// used when no verification backend is configured.
type AcceptAllVerifier struct{}

func (AcceptAllVerifier) Verify(context.Context, remote.Channel, string, string) error {
	return nil
}
