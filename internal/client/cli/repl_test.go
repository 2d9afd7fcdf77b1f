package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) SignUp(context.Context) error {
	f.calls = append(f.calls, "signup")
	return nil
}
func (f *fakeExec) ConfirmEmail(context.Context) error {
	f.calls = append(f.calls, "confirm")
	return nil
}
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Refresh(context.Context) error {
	f.calls = append(f.calls, "refresh")
	return nil
}
func (f *fakeExec) Logout(_ context.Context, all bool) error {
	if all {
		f.calls = append(f.calls, "logout-all")
	} else {
		f.calls = append(f.calls, "logout")
	}
	f.loggedIn = false
	return nil
}
func (f *fakeExec) RestorePassword(context.Context) error {
	f.calls = append(f.calls, "restore")
	return nil
}
func (f *fakeExec) ListWallets(_ context.Context, args []string) error {
	f.calls = append(f.calls, "wallets")
	f.args = args
	return nil
}
func (f *fakeExec) CreateWallet(_ context.Context, args []string) error {
	f.calls = append(f.calls, "create-wallet")
	f.args = args
	return nil
}
func (f *fakeExec) Activity(context.Context) error {
	f.calls = append(f.calls, "activity")
	return nil
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"signup",
		"confirm",
		"login",
		"help",
		"",
		"wallets 2",
		"create-wallet gold",
		"activity",
		"refresh",
		"logout",
		"restore",
		"logout-all",
		"foobar",
		"exit",
		"login",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	want := []string{"signup", "confirm", "login", "wallets", "create-wallet", "activity", "refresh", "logout", "restore", "logout-all"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	if strings.Join(exec.args, " ") != "gold" {
		t.Fatalf("args not passed: %v", exec.args)
	}
	if !contains(*out, "Available commands: signup") || !contains(*out, "Available commands: wallets") {
		t.Fatalf("help output missing: %v", *out)
	}
	if !contains(*out, "Unknown command: foobar") || !contains(*out, "Bye!") {
		t.Fatalf("unexpected output: %v", *out)
	}
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("quit\n")))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
