// Package services contains server-side business logic. This file implements
// SessionService: issuing access/refresh pairs at login, rotating them on
// refresh and revoking them on logout.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/dbx"
	"github.com/dmitrijs2005/accountkeeper/internal/idgen"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/dmitrijs2005/accountkeeper/internal/server/auth"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
	"github.com/dmitrijs2005/accountkeeper/internal/server/ratelimit"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/usertokens"
	"github.com/dmitrijs2005/accountkeeper/internal/server/tokencache"
	"github.com/dmitrijs2005/accountkeeper/internal/timex"
)

// TokenCodeLength is the length of the random code stored in user_tokens.
const TokenCodeLength = 20

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// ClientContext describes where a login came from. It only feeds the activity log.
type ClientContext struct {
	IP        string
	UserAgent string
}

// Principal is the caller behind a verified access token.
type Principal struct {
	UserID    int64
	TokenCode string
	ExpiresAt time.Time
}

type SessionConfig struct {
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	MaxLoginAttempts int64
	LoginAttemptsTTL time.Duration
}

type SessionService struct {
	runner  dbx.Runner
	repos   repomanager.RepositoryManager
	codec   *auth.TokenCodec
	hasher  auth.PasswordHasher
	limiter *ratelimit.Limiter
	markers *tokencache.Cache
	clock   timex.Clock
	log     logging.Logger
	cfg     SessionConfig

	dummyOnce sync.Once
	dummyHash string
}

func NewSessionService(
	runner dbx.Runner,
	repos repomanager.RepositoryManager,
	codec *auth.TokenCodec,
	hasher auth.PasswordHasher,
	limiter *ratelimit.Limiter,
	markers *tokencache.Cache,
	clock timex.Clock,
	log logging.Logger,
	cfg SessionConfig,
) *SessionService {
	if clock == nil {
		clock = timex.SystemClock{}
	}
	return &SessionService{
		runner:  runner,
		repos:   repos,
		codec:   codec,
		hasher:  hasher,
		limiter: limiter,
		markers: markers,
		clock:   clock,
		log:     log.With("module", "sessions"),
		cfg:     cfg,
	}
}

// CheckLoginAllowed is the pre-login gate. It fails closed: when the counter
// cannot be read the login is refused as rate limited.
func (s *SessionService) CheckLoginAllowed(ctx context.Context, memberID int64) error {
	blocked, err := s.limiter.IsBlocked(ctx, ratelimit.LoginKey(memberID), s.cfg.MaxLoginAttempts)
	if err != nil {
		s.log.Warn(ctx, "login gate unavailable, refusing", "member_id", memberID, "error", err)
	}
	if blocked {
		return common.ErrRateLimited
	}
	return nil
}

// Login checks the password of memberID and issues a new token pair.
// Unknown member, wrong password and a non-active account all yield
// common.ErrInvalidCredentials.
func (s *SessionService) Login(ctx context.Context, memberID int64, password string, client ClientContext) (*TokenPair, error) {
	conn := s.runner.Conn()

	user, err := s.repos.Users(conn).GetByMemberID(ctx, memberID)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			return nil, storageErr("load user", err)
		}
		s.compareDummy(password)
		s.recordFailure(ctx, memberID)
		return nil, common.ErrInvalidCredentials
	}

	if !s.hasher.Compare(user.PasswordHash, password, user.Salt) || user.Status != models.UserStatusActive {
		s.recordFailure(ctx, memberID)
		return nil, common.ErrInvalidCredentials
	}

	var issued *issuedPair
	if err := s.runner.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		issued, err = s.issuePair(ctx, tx, user.ID)
		return err
	}); err != nil {
		return nil, err
	}
	s.mark(ctx, user.ID, issued)

	if err := s.limiter.Reset(ctx, ratelimit.LoginKey(memberID)); err != nil {
		s.log.Warn(ctx, "failed to reset login attempts", "member_id", memberID, "error", err)
	}
	s.logActivity(ctx, user.ID, models.ActivityLogin, map[string]string{
		"ip":         client.IP,
		"user_agent": client.UserAgent,
	})

	return &issued.pair, nil
}

// Refresh rotates the pair refreshToken belongs to. Exactly one of several
// concurrent calls with the same token succeeds; the rest get
// common.ErrInvalidToken.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	row, err := s.verifyStored(ctx, refreshToken, models.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	access, err := s.repos.UserTokens(s.runner.Conn()).FindRelated(ctx, row.ID)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		access = nil
	case err != nil:
		return nil, storageErr("find related token", err)
	}
	if access != nil {
		if err := s.markers.Invalidate(ctx, row.UserID, access.Code); err != nil {
			return nil, err
		}
	}

	var issued *issuedPair
	err = s.runner.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		n, err := s.repos.UserTokens(tx).DeletePair(ctx, row.ID)
		if err != nil {
			return storageErr("delete token pair", err)
		}
		if n == 0 {
			return common.ErrInvalidToken
		}
		issued, err = s.issuePair(ctx, tx, row.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if access != nil {
		s.invalidateAgain(ctx, row.UserID, access.Code)
	}
	s.mark(ctx, row.UserID, issued)

	return &issued.pair, nil
}

// Logout revokes the session accessToken belongs to, or every session of its
// owner when allDevices is set.
func (s *SessionService) Logout(ctx context.Context, accessToken string, allDevices bool) error {
	row, err := s.verifyStored(ctx, accessToken, models.TokenTypeAccess)
	if err != nil {
		return err
	}

	if allDevices {
		if err := s.RevokeAll(ctx, row.UserID); err != nil {
			return err
		}
	} else {
		if err := s.markers.Invalidate(ctx, row.UserID, row.Code); err != nil {
			return err
		}
		target := row.ID
		if row.RelatedTokenID != nil {
			target = *row.RelatedTokenID
		}
		if err := s.runner.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
			// a concurrent logout may already have removed the pair
			if _, err := s.repos.UserTokens(tx).DeletePair(ctx, target); err != nil {
				return storageErr("delete token pair", err)
			}
			return nil
		}); err != nil {
			return err
		}
		s.invalidateAgain(ctx, row.UserID, row.Code)
	}

	s.logActivity(ctx, row.UserID, models.ActivityLogout, map[string]string{
		"all_devices": fmt.Sprint(allDevices),
	})
	return nil
}

// RevokeAll deletes every token of userID and drops the markers of its
// access tokens.
func (s *SessionService) RevokeAll(ctx context.Context, userID int64) error {
	live, err := s.repos.UserTokens(s.runner.Conn()).ListByUser(ctx, userID, models.TokenTypeAccess)
	if err != nil {
		return storageErr("list access tokens", err)
	}
	if err := s.markers.Invalidate(ctx, userID, accessCodes(live)...); err != nil {
		return err
	}

	var deleted []models.UserToken
	if err := s.runner.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		deleted, err = s.repos.UserTokens(tx).DeleteAllForUser(ctx, userID)
		if err != nil {
			return storageErr("delete user tokens", err)
		}
		return nil
	}); err != nil {
		return err
	}

	// rows issued between the listing and the delete
	if err := s.markers.Invalidate(ctx, userID, accessCodes(deleted)...); err != nil {
		return err
	}
	return nil
}

// Authenticate resolves the caller of a protected call. A validity marker
// short-circuits the database lookup; on a miss the row is checked and the
// marker restored. A restored marker is kept only if the row is still there
// after it was written.
func (s *SessionService) Authenticate(ctx context.Context, accessToken string) (*Principal, error) {
	p, err := s.codec.Verify(accessToken)
	if err != nil || p.Type != models.TokenTypeAccess {
		return nil, common.ErrInvalidToken
	}

	marked, err := s.markers.IsMarked(ctx, p.UserID, p.Code)
	if err != nil {
		s.log.Warn(ctx, "token marker lookup failed", "error", err)
	}
	if marked {
		return &Principal{UserID: p.UserID, TokenCode: p.Code, ExpiresAt: p.ExpiresAt}, nil
	}

	row, err := s.checkRow(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := s.markers.Mark(ctx, row.UserID, row.Code, row.ExpireAt); err != nil {
		s.log.Warn(ctx, "failed to restore token marker", "error", err)
		return &Principal{UserID: row.UserID, TokenCode: row.Code, ExpiresAt: row.ExpireAt}, nil
	}

	// a revoke that deleted the row before the mark left nothing to clear it
	if _, err := s.repos.UserTokens(s.runner.Conn()).FindByCode(ctx, p.Code, p.Type); err != nil {
		s.invalidateAgain(ctx, row.UserID, row.Code)
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, storageErr("find token", err)
	}
	return &Principal{UserID: row.UserID, TokenCode: row.Code, ExpiresAt: row.ExpireAt}, nil
}

// PurgeExpired removes expired tokens and one-time codes.
func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	now := s.clock.Now()
	conn := s.runner.Conn()

	tokens, err := s.repos.UserTokens(conn).DeleteExpired(ctx, now)
	if err != nil {
		return 0, storageErr("purge tokens", err)
	}
	codes, err := s.repos.UserCodes(conn).DeleteExpired(ctx, now)
	if err != nil {
		return tokens, storageErr("purge codes", err)
	}
	return tokens + codes, nil
}

// --- helpers below ---

type issuedPair struct {
	pair       TokenPair
	accessCode string
}

func (s *SessionService) issuePair(ctx context.Context, tx dbx.DBTX, userID int64) (*issuedPair, error) {
	repo := s.repos.UserTokens(tx)
	now := s.clock.Now()
	accessExpireAt := now.Add(s.cfg.AccessTokenTTL)
	refreshExpireAt := now.Add(s.cfg.RefreshTokenTTL)

	refreshCode, err := newTokenCode(ctx, repo, models.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	accessCode, err := newTokenCode(ctx, repo, models.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	if _, _, err := repo.CreatePair(ctx, userID, accessCode, accessExpireAt, refreshCode, refreshExpireAt); err != nil {
		return nil, storageErr("create token pair", err)
	}

	access, err := s.codec.Sign(auth.TokenPayload{UserID: userID, Code: accessCode, Type: models.TokenTypeAccess, ExpiresAt: accessExpireAt})
	if err != nil {
		return nil, fmt.Errorf("%w: sign access token: %w", common.ErrorInternal, err)
	}
	refresh, err := s.codec.Sign(auth.TokenPayload{UserID: userID, Code: refreshCode, Type: models.TokenTypeRefresh, ExpiresAt: refreshExpireAt})
	if err != nil {
		return nil, fmt.Errorf("%w: sign refresh token: %w", common.ErrorInternal, err)
	}

	return &issuedPair{
		pair: TokenPair{
			AccessToken:      access,
			RefreshToken:     refresh,
			AccessExpiresAt:  accessExpireAt,
			RefreshExpiresAt: refreshExpireAt,
		},
		accessCode: accessCode,
	}, nil
}

func newTokenCode(ctx context.Context, repo usertokens.Repository, typ models.TokenType) (string, error) {
	code, err := idgen.Generate(ctx, idgen.Options{
		Length:   TokenCodeLength,
		Alphabet: idgen.Alphanumeric,
		IsTaken: func(ctx context.Context, candidate string) (bool, error) {
			_, err := repo.FindByCode(ctx, candidate, typ)
			if errors.Is(err, common.ErrorNotFound) {
				return false, nil
			}
			return err == nil, err
		},
	})
	if err != nil {
		return "", storageErr("generate token code", err)
	}
	return code, nil
}

// verifyStored checks the signature, the expected role and the stored row.
// Every failure is the same common.ErrInvalidToken.
func (s *SessionService) verifyStored(ctx context.Context, token string, typ models.TokenType) (*models.UserToken, error) {
	p, err := s.codec.Verify(token)
	if err != nil || p.Type != typ {
		return nil, common.ErrInvalidToken
	}
	return s.checkRow(ctx, p)
}

func (s *SessionService) checkRow(ctx context.Context, p *auth.TokenPayload) (*models.UserToken, error) {
	row, err := s.repos.UserTokens(s.runner.Conn()).FindByCode(ctx, p.Code, p.Type)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidToken
		}
		return nil, storageErr("find token", err)
	}
	if row.UserID != p.UserID || row.Expired(s.clock.Now()) {
		return nil, common.ErrInvalidToken
	}
	return row, nil
}

func (s *SessionService) mark(ctx context.Context, userID int64, issued *issuedPair) {
	if err := s.markers.Mark(ctx, userID, issued.accessCode, issued.pair.AccessExpiresAt); err != nil {
		s.log.Warn(ctx, "failed to mark access token", "user_id", userID, "error", err)
	}
}

// invalidateAgain drops a marker that may have been written after the row it
// stands for was deleted.
func (s *SessionService) invalidateAgain(ctx context.Context, userID int64, code string) {
	if err := s.markers.Invalidate(ctx, userID, code); err != nil {
		s.log.Warn(ctx, "failed to drop token marker after delete", "user_id", userID, "error", err)
	}
}

func (s *SessionService) recordFailure(ctx context.Context, memberID int64) {
	if err := s.limiter.RecordFailure(ctx, ratelimit.LoginKey(memberID), s.cfg.LoginAttemptsTTL); err != nil {
		s.log.Warn(ctx, "failed to record login failure", "member_id", memberID, "error", err)
	}
}

// compareDummy burns the same bcrypt time as a real comparison.
func (s *SessionService) compareDummy(password string) {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Hash("dummy-password", "dummy-salt")
		if err == nil {
			s.dummyHash = h
		}
	})
	_ = s.hasher.Compare(s.dummyHash, password, "dummy-salt")
}

func (s *SessionService) logActivity(ctx context.Context, userID int64, action models.ActivityAction, meta map[string]string) {
	entry := &models.ActivityLog{UserID: userID, Action: action, Metadata: meta}
	if err := s.repos.ActivityLogs(s.runner.Conn()).Create(ctx, entry); err != nil {
		s.log.Warn(ctx, "failed to write activity log", "user_id", userID, "action", action, "error", err)
	}
}

func accessCodes(tokens []models.UserToken) []string {
	codes := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Type == models.TokenTypeAccess {
			codes = append(codes, t.Code)
		}
	}
	return codes
}

// storageErr tags collaborator failures as common.ErrStorageUnavailable
// unless they already carry a classification of their own.
func storageErr(op string, err error) error {
	if errors.Is(err, common.ErrStorageUnavailable) || errors.Is(err, common.ErrExhaustedRetries) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", common.ErrStorageUnavailable, op, err)
}
