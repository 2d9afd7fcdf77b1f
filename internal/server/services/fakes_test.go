package services

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/dbx"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/dmitrijs2005/accountkeeper/internal/server/auth"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
	"github.com/dmitrijs2005/accountkeeper/internal/server/ratelimit"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/activitylogs"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/usercodes"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/usertokens"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/wallets"
	"github.com/dmitrijs2005/accountkeeper/internal/server/tokencache"
	"github.com/dmitrijs2005/accountkeeper/internal/timex"
	"github.com/redis/go-redis/v9"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// fakeRunner hands the fakes a nil DBTX; the in-memory store ignores it.
type fakeRunner struct {
	txCalls atomic.Int32
}

func (r *fakeRunner) Conn() dbx.DBTX { return nil }

func (r *fakeRunner) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	r.txCalls.Add(1)
	return fn(ctx, nil)
}

// fakeHasher is "hash = password|salt" and counts comparisons.
type fakeHasher struct {
	compares atomic.Int32
}

func (h *fakeHasher) Hash(password, salt string) (string, error) { return password + "|" + salt, nil }

func (h *fakeHasher) Compare(hash, password, salt string) bool {
	h.compares.Add(1)
	return hash == password+"|"+salt
}

type sentMail struct {
	kind, to, code string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailer) SendConfirmEmail(_ context.Context, to, code string) error {
	return m.record("confirm", to, code)
}

func (m *fakeMailer) SendRestorePassword(_ context.Context, to, code string) error {
	return m.record("restore", to, code)
}

func (m *fakeMailer) record(kind, to, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{kind, to, code})
	return m.err
}

func (m *fakeMailer) last() sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		return sentMail{}
	}
	return m.sent[len(m.sent)-1]
}

// memStore backs every fake repository. A single mutex makes each call
// atomic, which is what the conditional deletes rely on.
type memStore struct {
	mu       sync.Mutex
	nextID   int64
	users    map[int64]models.User
	tokens   map[int64]models.UserToken
	codes    map[int64]models.UserCode
	wallets  []models.Wallet
	activity []models.ActivityLog

	usersErr      error
	tokensErr     error
	tokenAllTaken bool
	activityErr   error

	// afterTokenLookup runs once, outside the lock, after the next FindByCode.
	afterTokenLookup func()
}

func newMemStore() *memStore {
	return &memStore{
		users:  map[int64]models.User{},
		tokens: map[int64]models.UserToken{},
		codes:  map[int64]models.UserCode{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) tokenCount(userID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tokens {
		if t.UserID == userID {
			n++
		}
	}
	return n
}

func (s *memStore) activityFor(userID int64, action models.ActivityAction) []models.ActivityLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ActivityLog
	for _, a := range s.activity {
		if a.UserID == userID && a.Action == action {
			out = append(out, a)
		}
	}
	return out
}

func (s *memStore) user(id int64) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[id]
}

type fakeRepoManager struct {
	st *memStore
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository               { return &memUsers{m.st} }
func (m *fakeRepoManager) UserTokens(dbx.DBTX) usertokens.Repository     { return &memTokens{m.st} }
func (m *fakeRepoManager) UserCodes(dbx.DBTX) usercodes.Repository       { return &memCodes{m.st} }
func (m *fakeRepoManager) Wallets(dbx.DBTX) wallets.Repository           { return &memWallets{m.st} }
func (m *fakeRepoManager) ActivityLogs(dbx.DBTX) activitylogs.Repository { return &memActivity{m.st} }

// --- users ---

type memUsers struct{ st *memStore }

func (r *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.usersErr != nil {
		return nil, r.st.usersErr
	}
	for _, existing := range r.st.users {
		if strings.EqualFold(existing.Email, u.Email) || existing.MemberID == u.MemberID {
			return nil, common.ErrAlreadyExists
		}
	}
	u.ID = r.st.id()
	r.st.users[u.ID] = *u
	return u, nil
}

func (r *memUsers) find(match func(models.User) bool) (*models.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.usersErr != nil {
		return nil, r.st.usersErr
	}
	for _, u := range r.st.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id })
}

func (r *memUsers) GetByMemberID(_ context.Context, memberID int64) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.MemberID == memberID })
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *memUsers) MemberIDExists(ctx context.Context, memberID int64) (bool, error) {
	_, err := r.GetByMemberID(ctx, memberID)
	if err == common.ErrorNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *memUsers) UpdateStatus(_ context.Context, id int64, status models.UserStatus) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	u, ok := r.st.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.Status = status
	r.st.users[id] = u
	return nil
}

func (r *memUsers) UpdatePassword(_ context.Context, id int64, hash, salt string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	u, ok := r.st.users[id]
	if !ok {
		return common.ErrorNotFound
	}
	u.PasswordHash, u.Salt = hash, salt
	r.st.users[id] = u
	return nil
}

// --- tokens ---

type memTokens struct{ st *memStore }

func (r *memTokens) CreatePair(_ context.Context, userID int64, accessCode string, accessExpireAt time.Time, refreshCode string, refreshExpireAt time.Time) (int64, int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.tokensErr != nil {
		return 0, 0, r.st.tokensErr
	}
	refreshID := r.st.id()
	r.st.tokens[refreshID] = models.UserToken{ID: refreshID, UserID: userID, Type: models.TokenTypeRefresh, Code: refreshCode, ExpireAt: refreshExpireAt}
	accessID := r.st.id()
	rel := refreshID
	r.st.tokens[accessID] = models.UserToken{ID: accessID, UserID: userID, Type: models.TokenTypeAccess, Code: accessCode, RelatedTokenID: &rel, ExpireAt: accessExpireAt}
	return accessID, refreshID, nil
}

func (r *memTokens) FindByCode(_ context.Context, code string, typ models.TokenType) (*models.UserToken, error) {
	r.st.mu.Lock()
	hook := r.st.afterTokenLookup
	r.st.afterTokenLookup = nil
	r.st.mu.Unlock()
	if hook != nil {
		defer hook()
	}
	return r.findByCode(code, typ)
}

func (r *memTokens) findByCode(code string, typ models.TokenType) (*models.UserToken, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.tokensErr != nil {
		return nil, r.st.tokensErr
	}
	if r.st.tokenAllTaken {
		return &models.UserToken{Code: code, Type: typ}, nil
	}
	for _, t := range r.st.tokens {
		if t.Code == code && t.Type == typ {
			return &t, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memTokens) FindRelated(_ context.Context, tokenID int64) (*models.UserToken, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	self, ok := r.st.tokens[tokenID]
	for _, t := range r.st.tokens {
		if t.RelatedTokenID != nil && *t.RelatedTokenID == tokenID {
			return &t, nil
		}
		if ok && self.RelatedTokenID != nil && t.ID == *self.RelatedTokenID {
			return &t, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memTokens) DeletePair(_ context.Context, tokenID int64) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.tokensErr != nil {
		return 0, r.st.tokensErr
	}
	var n int64
	self, ok := r.st.tokens[tokenID]
	for id, t := range r.st.tokens {
		if id == tokenID ||
			(t.RelatedTokenID != nil && *t.RelatedTokenID == tokenID) ||
			(ok && self.RelatedTokenID != nil && id == *self.RelatedTokenID) {
			delete(r.st.tokens, id)
			n++
		}
	}
	return n, nil
}

func (r *memTokens) DeleteAllForUser(_ context.Context, userID int64) ([]models.UserToken, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.tokensErr != nil {
		return nil, r.st.tokensErr
	}
	var out []models.UserToken
	for id, t := range r.st.tokens {
		if t.UserID == userID {
			out = append(out, t)
			delete(r.st.tokens, id)
		}
	}
	return out, nil
}

func (r *memTokens) ListByUser(_ context.Context, userID int64, typ models.TokenType) ([]models.UserToken, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.tokensErr != nil {
		return nil, r.st.tokensErr
	}
	var out []models.UserToken
	for _, t := range r.st.tokens {
		if t.UserID == userID && t.Type == typ {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTokens) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var n int64
	for id, t := range r.st.tokens {
		if t.Expired(now) {
			delete(r.st.tokens, id)
			n++
		}
	}
	return n, nil
}

// --- codes ---

type memCodes struct{ st *memStore }

func (r *memCodes) Create(_ context.Context, c *models.UserCode) (*models.UserCode, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	c.ID = r.st.id()
	c.CreatedAt = c.ExpireAt // only ordering matters to the fakes
	r.st.codes[c.ID] = *c
	return c, nil
}

func (r *memCodes) Find(_ context.Context, code string, action models.CodeAction) (*models.UserCode, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, c := range r.st.codes {
		if c.Code == code && c.Action == action {
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memCodes) Exists(ctx context.Context, code string, action models.CodeAction) (bool, error) {
	_, err := r.Find(ctx, code, action)
	return err == nil, nil
}

func (r *memCodes) Delete(_ context.Context, id int64) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if _, ok := r.st.codes[id]; !ok {
		return 0, nil
	}
	delete(r.st.codes, id)
	return 1, nil
}

func (r *memCodes) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var n int64
	for id, c := range r.st.codes {
		if !now.Before(c.ExpireAt) {
			delete(r.st.codes, id)
			n++
		}
	}
	return n, nil
}

// --- wallets ---

type memWallets struct{ st *memStore }

func (r *memWallets) Create(_ context.Context, w *models.Wallet) (*models.Wallet, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	w.ID = r.st.id()
	w.Balance = "0"
	r.st.wallets = append(r.st.wallets, *w)
	return w, nil
}

func (r *memWallets) CountByUserAndType(_ context.Context, userID int64, typ models.WalletType) (int, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	n := 0
	for _, w := range r.st.wallets {
		if w.UserID == userID && w.Type == typ {
			n++
		}
	}
	return n, nil
}

func (r *memWallets) IdentifierExists(_ context.Context, typ models.WalletType, identifier int64) (bool, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, w := range r.st.wallets {
		if w.Type == typ && w.Identifier == identifier {
			return true, nil
		}
	}
	return false, nil
}

func (r *memWallets) ListByUser(_ context.Context, userID int64, limit, offset int) ([]models.Wallet, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var all []models.Wallet
	for _, w := range r.st.wallets {
		if w.UserID == userID {
			all = append(all, w)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

// --- activity ---

type memActivity struct{ st *memStore }

func (r *memActivity) Create(_ context.Context, e *models.ActivityLog) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	if r.st.activityErr != nil {
		return r.st.activityErr
	}
	e.ID = r.st.id()
	r.st.activity = append(r.st.activity, *e)
	return nil
}

func (r *memActivity) ListByUser(_ context.Context, userID int64, limit int) ([]models.ActivityLog, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var out []models.ActivityLog
	for _, a := range r.st.activity {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// --- environment ---

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

const (
	testAccessTTL  = 15 * time.Minute
	testRefreshTTL = 24 * time.Hour
)

type testEnv struct {
	st       *memStore
	runner   *fakeRunner
	clock    *timex.ManualClock
	mr       *miniredis.Miniredis
	hasher   *fakeHasher
	mail     *fakeMailer
	codec    *auth.TokenCodec
	sessions *SessionService
	wallets  *WalletService
	accounts *AccountService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	e := &testEnv{
		st:     newMemStore(),
		runner: &fakeRunner{},
		clock:  timex.NewManualClock(baseTime),
		mr:     mr,
		hasher: &fakeHasher{},
		mail:   &fakeMailer{},
	}
	repos := &fakeRepoManager{st: e.st}
	limiter := ratelimit.New(rdb)
	e.codec = auth.NewTokenCodec([]byte("test-secret"), e.clock)

	e.sessions = NewSessionService(e.runner, repos, e.codec, e.hasher, limiter,
		tokencache.New(rdb, e.clock), e.clock, nopLogger{}, SessionConfig{
			AccessTokenTTL:   testAccessTTL,
			RefreshTokenTTL:  testRefreshTTL,
			MaxLoginAttempts: 3,
			LoginAttemptsTTL: 5 * time.Minute,
		})
	e.wallets = NewWalletService(e.runner, repos, nopLogger{}, 2)
	e.accounts = NewAccountService(e.runner, repos, e.hasher, e.wallets, e.sessions, limiter,
		e.mail, e.clock, nopLogger{}, AccountConfig{
			ConfirmCodeLength:     12,
			ConfirmCodeTTL:        time.Hour,
			RestoreCodeLength:     6,
			RestoreInitiateTTL:    10 * time.Minute,
			RestoreCompleteTTL:    10 * time.Minute,
			MaxRestoreAttempts:    2,
			RestoreAttemptsWindow: time.Hour,
		})
	return e
}

// addUser stores an account whose password is password.
func (e *testEnv) addUser(memberID int64, email, password string, status models.UserStatus) models.User {
	e.st.mu.Lock()
	defer e.st.mu.Unlock()
	u := models.User{
		ID:           e.st.id(),
		MemberID:     memberID,
		Email:        email,
		Salt:         "salt",
		PasswordHash: password + "|salt",
		Status:       status,
	}
	e.st.users[u.ID] = u
	return u
}
