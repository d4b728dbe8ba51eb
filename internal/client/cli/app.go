package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/srstalent/talentconnect/internal/client/config"
	"github.com/srstalent/talentconnect/internal/client/profile"
	"github.com/srstalent/talentconnect/internal/client/remote"
	"github.com/srstalent/talentconnect/internal/client/session"
	"github.com/srstalent/talentconnect/internal/client/verify"
	"github.com/srstalent/talentconnect/internal/logging"
)

// App wires the TalentConnect CLI together: the remote service client, the
// session holder, and the interactive workflows built on top of them.
type App struct {
	config   *config.Config
	service  remote.Service
	session  *session.Holder
	editor   *profile.Editor
	verifier verify.CodeVerifier
	logger   logging.Logger
	reader   *bufio.Reader
}

func NewApp(c *config.Config, logger logging.Logger) *App {
	service := remote.NewHTTPService(c.ServerEndpointAddr, c.RequestTimeout)
	holder := session.NewHolder(service, logger)

	var verifier verify.CodeVerifier = verify.NewRemoteVerifier(service)
	if c.DemoVerification {
		verifier = verify.AcceptAllVerifier{}
	}

	return &App{
		config:   c,
		service:  service,
		session:  holder,
		editor:   profile.NewEditor(service, holder),
		verifier: verifier,
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
	}
}

// Run performs the startup session refresh and enters the REPL. A failed
// refresh is not fatal; the session simply starts signed out.
func (a *App) Run(ctx context.Context) {
	defer a.service.Close()

	if err := a.session.Refresh(ctx); err != nil {
		a.logger.Debug(ctx, "initial session refresh failed", "error", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Current() != nil
}

func (a *App) getStatus() string {
	if identity := a.session.Current(); identity != nil {
		return "(" + identity.Email + ")"
	}
	return ""
}
