package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) RegisterWorker(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) RegisterCareHome(ctx context.Context) error {
	f.calls = append(f.calls, "register-home")
	return nil
}
func (f *fakeExec) Verify(ctx context.Context) error {
	f.calls = append(f.calls, "verify")
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Stats(ctx context.Context) error {
	f.calls = append(f.calls, "stats")
	return nil
}
func (f *fakeExec) Qualifications(ctx context.Context) error {
	f.calls = append(f.calls, "qualifications")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func TestRunREPL_DispatchAndExit(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"whoami",
		"stats",
		"qualifications",
		"verify",
		"logout",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "guest" }, bufio.NewScanner(input), &out)

	want := []string{"login", "whoami", "stats", "qualifications", "verify", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	for i, c := range exec.calls {
		if c != want[i] {
			t.Fatalf("calls = %v, want %v", exec.calls, want)
		}
	}
	if !strings.Contains(out.String(), "Unknown command: foobar") {
		t.Fatalf("missing unknown-command report in %q", out.String())
	}
	if !strings.Contains(out.String(), "Bye!") {
		t.Fatalf("missing exit banner in %q", out.String())
	}
}

func TestRunREPL_HelpReflectsLoginState(t *testing.T) {
	input := strings.NewReader("help\nquit\n")
	exec := &fakeExec{loggedIn: true}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "a@b.co" }, bufio.NewScanner(input), &out)

	if !strings.Contains(out.String(), "logout") {
		t.Fatalf("logged-in help should offer logout: %q", out.String())
	}
	if strings.Contains(out.String(), "register-home") {
		t.Fatalf("logged-in help should not offer registration: %q", out.String())
	}
}

func TestRunREPL_EOFEndsLoop(t *testing.T) {
	input := strings.NewReader("help\n")
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "guest" }, bufio.NewScanner(input), &out)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
