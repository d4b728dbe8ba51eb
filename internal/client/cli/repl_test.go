package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                          { return s.loggedIn }
func (s *stubExec) Register(context.Context) error            { return s.record("register") }
func (s *stubExec) Login(context.Context) error               { return s.record("login") }
func (s *stubExec) Logout(context.Context) error              { return s.record("logout") }
func (s *stubExec) WhoAmI(context.Context) error              { return s.record("whoami") }
func (s *stubExec) ShowProfile(context.Context) error         { return s.record("profile") }
func (s *stubExec) EditProfile(context.Context) error         { return s.record("edit") }
func (s *stubExec) Jobs(context.Context) error                { return s.record("jobs") }
func (s *stubExec) Skills(context.Context) error              { return s.record("skills") }
func (s *stubExec) Applications(context.Context) error        { return s.record("applications") }
func (s *stubExec) Enrollments(context.Context) error         { return s.record("enrollments") }
func (s *stubExec) Apply(_ context.Context, args []string) error {
	return s.record("apply " + strings.Join(args, " "))
}
func (s *stubExec) Enroll(_ context.Context, args []string) error {
	return s.record("enroll " + strings.Join(args, " "))
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func runScript(t *testing.T, exec *stubExec, script string) []string {
	t.Helper()
	out := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "" }, scanner)
	return *out
}

func TestREPL_DispatchesCommands(t *testing.T) {
	exec := &stubExec{loggedIn: true}
	runScript(t, exec, "jobs\nskills\napply j1\nenroll c2\nprofile\nedit\nwhoami\nlogout\nexit\n")

	require.Equal(t, []string{
		"jobs", "skills", "apply j1", "enroll c2", "profile", "edit", "whoami", "logout",
	}, exec.calls)
}

func TestREPL_ShortAliases(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "j\ns\nexit\n")
	require.Equal(t, []string{"jobs", "skills"}, exec.calls)
}

func TestREPL_UnknownCommandReported(t *testing.T) {
	exec := &stubExec{}
	out := runScript(t, exec, "frobnicate\nexit\n")

	var found bool
	for _, line := range out {
		if strings.Contains(line, "Unknown command") && strings.Contains(line, "frobnicate") {
			found = true
		}
	}
	require.True(t, found)
	require.Empty(t, exec.calls)
}

func TestREPL_HelpDependsOnLoginState(t *testing.T) {
	out := runScript(t, &stubExec{}, "help\nexit\n")
	require.True(t, strings.Contains(strings.Join(out, ""), "register, login"))

	out = runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	require.True(t, strings.Contains(strings.Join(out, ""), "applications"))
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "jobs\n")
	require.Equal(t, []string{"jobs"}, exec.calls)
}

func TestREPL_IgnoresBlankLines(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "\n\n   \nexit\n")
	require.Empty(t, exec.calls)
}
