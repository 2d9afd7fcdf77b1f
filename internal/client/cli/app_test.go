package cli

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
)

func TestIsLoggedIn(t *testing.T) {
	f := &fakeClient{}
	app := newTestApp(f)
	if app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == false without a session")
	}

	f.session = &models.Session{MemberID: 1}
	if !app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == true with a session")
	}
}

func TestGetStatus(t *testing.T) {
	f := &fakeClient{}
	app := newTestApp(f)
	if got := app.getStatus(); got != "" {
		t.Fatalf("got %q, want empty", got)
	}

	app.Mode = ModeOnline
	f.session = &models.Session{MemberID: 1234567}
	if got := app.getStatus(); got != "(1234567 online)" {
		t.Fatalf("got %q", got)
	}
}

func TestSetMode_ChangesAndLogsOnce(t *testing.T) {
	app := &App{}
	var buf bytes.Buffer

	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(&buf)

	app.setMode(ModeOnline)
	if app.Mode != ModeOnline {
		t.Fatalf("expected mode to be %q, got %q", ModeOnline, app.Mode)
	}
	if got := buf.String(); got == "" {
		t.Fatalf("expected log output on mode change, got empty")
	}

	buf.Reset()

	app.setMode(ModeOnline)
	if got := buf.String(); got != "" {
		t.Fatalf("expected no log output when mode doesn't change, got: %q", got)
	}

	app.setMode(ModeOffline)
	if app.Mode != ModeOffline {
		t.Fatalf("expected mode to be %q, got %q", ModeOffline, app.Mode)
	}
}

func TestOnlineStatusWatcher_FollowsPing(t *testing.T) {
	old := log.Default().Writer()
	defer log.SetOutput(old)
	log.SetOutput(&bytes.Buffer{})

	f := &fakeClient{pingErr: errors.New("down")}
	app := newTestApp(f)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	waitFor := func(m Mode) {
		t.Helper()
		deadline := time.After(2 * time.Second)
		for app.mode() != m {
			select {
			case <-deadline:
				t.Fatalf("mode never became %q", m)
			case <-time.After(2 * time.Millisecond):
			}
		}
	}

	waitFor(ModeOffline)

	f.mu.Lock()
	f.pingErr = nil
	f.mu.Unlock()
	waitFor(ModeOnline)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
