package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
	pb "github.com/dmitrijs2005/accountkeeper/internal/proto"
)

type fakeClient struct {
	mu      sync.Mutex
	session *models.Session
	pingErr error
	pings   int

	signUpReq *pb.SignUpRequest
	signUpErr error

	confirmCode string

	loginMember int64
	loginPass   string
	loginErr    error

	refreshErr error

	logoutAll bool
	logoutErr error

	restoreEmail    string
	restoreMember   int64
	restoreCode     string
	completeCode    string
	completePass    string
	restoreInitErr  error
	restoreCodeResp string

	walletLimit, walletOffset int32
	wallets                   []*pb.Wallet
	walletsErr                error
	createdType               string
	createErr                 error

	activity []*pb.ActivityEntry
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}

func (f *fakeClient) Session() *models.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

func (f *fakeClient) SignUp(_ context.Context, req *pb.SignUpRequest) (int64, error) {
	f.signUpReq = req
	return 7654321, f.signUpErr
}

func (f *fakeClient) ConfirmEmail(_ context.Context, code string) error {
	f.confirmCode = code
	return nil
}

func (f *fakeClient) Login(_ context.Context, memberID int64, password string) error {
	f.loginMember, f.loginPass = memberID, password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.session = &models.Session{MemberID: memberID}
	return nil
}

func (f *fakeClient) Refresh(context.Context) error { return f.refreshErr }

func (f *fakeClient) Logout(_ context.Context, allDevices bool) error {
	f.logoutAll = allDevices
	if f.logoutErr == nil {
		f.session = nil
	}
	return f.logoutErr
}

func (f *fakeClient) RestorePasswordInitiate(_ context.Context, email string, memberID int64) error {
	f.restoreEmail, f.restoreMember = email, memberID
	return f.restoreInitErr
}

func (f *fakeClient) RestorePasswordConfirmCode(_ context.Context, code string) (string, error) {
	f.restoreCode = code
	return f.restoreCodeResp, nil
}

func (f *fakeClient) RestorePasswordComplete(_ context.Context, code, newPassword string) error {
	f.completeCode, f.completePass = code, newPassword
	return nil
}

func (f *fakeClient) CreateWallet(_ context.Context, walletType string) (*pb.Wallet, error) {
	f.createdType = walletType
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &pb.Wallet{Type: walletType, Identifier: 1234}, nil
}

func (f *fakeClient) ListWallets(_ context.Context, limit, offset int32) ([]*pb.Wallet, error) {
	f.walletLimit, f.walletOffset = limit, offset
	return f.wallets, f.walletsErr
}

func (f *fakeClient) ListActivity(context.Context, int32) ([]*pb.ActivityEntry, error) {
	return f.activity, nil
}

// captureOutput swaps printlnFn for a recorder.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

// stubInputs feeds answers to getSimpleText in order and returns password
// for every getPassword call.
func stubInputs(t *testing.T, password string, answers ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			t.Fatalf("unexpected prompt %q", prompt)
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(string, io.Writer) ([]byte, error) { return []byte(password), nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func newTestApp(c *fakeClient) *App {
	return &App{client: c, out: io.Discard}
}

func contains(lines []string, sub string) bool {
	for _, l := range lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}
