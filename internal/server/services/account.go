package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
	"github.com/dmitrijs2005/accountkeeper/internal/dbx"
	"github.com/dmitrijs2005/accountkeeper/internal/idgen"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	"github.com/dmitrijs2005/accountkeeper/internal/server/auth"
	"github.com/dmitrijs2005/accountkeeper/internal/server/mailer"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
	"github.com/dmitrijs2005/accountkeeper/internal/server/ratelimit"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/usercodes"
	"github.com/dmitrijs2005/accountkeeper/internal/timex"
)

const (
	// MemberIDLength is the number of digits of the public login identifier.
	MemberIDLength = 7

	// RestoreCompleteCodeLength is the length of the code handed back by
	// RestorePasswordConfirmCode.
	RestoreCompleteCodeLength = 8

	minPasswordLength = 6
	// bcrypt reads at most 72 bytes of password+salt; the salt takes 32.
	maxPasswordLength = 40
	saltBytes         = 16

	maxActivityPageSize = 50
)

type SignUpRequest struct {
	Email     string
	Password  string
	City      string
	FirstName string
	LastName  string
}

type AccountConfig struct {
	ConfirmCodeLength     int
	ConfirmCodeTTL        time.Duration
	RestoreCodeLength     int
	RestoreInitiateTTL    time.Duration
	RestoreCompleteTTL    time.Duration
	MaxRestoreAttempts    int
	RestoreAttemptsWindow time.Duration
}

// AccountService covers the account lifecycle around sessions: sign-up,
// email confirmation and password restore.
type AccountService struct {
	runner   dbx.Runner
	repos    repomanager.RepositoryManager
	hasher   auth.PasswordHasher
	wallets  *WalletService
	sessions *SessionService
	limiter  *ratelimit.Limiter
	mailer   mailer.Sender
	clock    timex.Clock
	log      logging.Logger
	cfg      AccountConfig
}

func NewAccountService(
	runner dbx.Runner,
	repos repomanager.RepositoryManager,
	hasher auth.PasswordHasher,
	wallets *WalletService,
	sessions *SessionService,
	limiter *ratelimit.Limiter,
	sender mailer.Sender,
	clock timex.Clock,
	log logging.Logger,
	cfg AccountConfig,
) *AccountService {
	if clock == nil {
		clock = timex.SystemClock{}
	}
	return &AccountService{
		runner:   runner,
		repos:    repos,
		hasher:   hasher,
		wallets:  wallets,
		sessions: sessions,
		limiter:  limiter,
		mailer:   sender,
		clock:    clock,
		log:      log.With("module", "accounts"),
		cfg:      cfg,
	}
}

// SignUp creates an unconfirmed account with its default wallets and mails
// the confirmation code. A taken email yields common.ErrAlreadyExists.
func (s *AccountService) SignUp(ctx context.Context, req SignUpRequest) (*models.User, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	salt, hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var (
		user *models.User
		code *models.UserCode
	)
	err = s.runner.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		users := s.repos.Users(tx)

		memberID, err := idgen.GenerateInt(ctx, MemberIDLength, users.MemberIDExists)
		if err != nil {
			return storageErr("generate member id", err)
		}

		user, err = users.Create(ctx, &models.User{
			MemberID:     memberID,
			Email:        email,
			PasswordHash: hash,
			Salt:         salt,
			Status:       models.UserStatusEmailNotConfirmed,
			City:         strings.TrimSpace(req.City),
			FirstName:    strings.TrimSpace(req.FirstName),
			LastName:     strings.TrimSpace(req.LastName),
		})
		if err != nil {
			if errors.Is(err, common.ErrAlreadyExists) {
				return err
			}
			return storageErr("create user", err)
		}

		code, err = s.issueCode(ctx, s.repos.UserCodes(tx), user.ID, models.CodeActionConfirmEmail,
			s.cfg.ConfirmCodeLength, idgen.Alphanumeric, s.cfg.ConfirmCodeTTL)
		if err != nil {
			return err
		}

		for _, typ := range models.DefaultWalletTypes {
			if _, err := s.wallets.create(ctx, tx, user.ID, typ); err != nil {
				return err
			}
		}

		if err := s.repos.ActivityLogs(tx).Create(ctx, &models.ActivityLog{UserID: user.ID, Action: models.ActivityCreate}); err != nil {
			return storageErr("write activity log", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendConfirmEmail(ctx, user.Email, code.Code); err != nil {
		s.log.Error(ctx, "failed to send confirmation email", "user_id", user.ID, "error", err)
	}

	s.log.Info(ctx, "user signed up", "user_id", user.ID, "member_id", user.MemberID)
	return user, nil
}

// ConfirmEmail consumes a confirm_email code and activates its account.
func (s *AccountService) ConfirmEmail(ctx context.Context, code string) error {
	return s.runner.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		uc, err := s.consumeCode(ctx, s.repos.UserCodes(tx), code, models.CodeActionConfirmEmail)
		if err != nil {
			return err
		}

		users := s.repos.Users(tx)
		user, err := users.GetByID(ctx, uc.UserID)
		if err != nil {
			return storageErr("load user", err)
		}
		// blocked accounts stay blocked
		if user.Status != models.UserStatusEmailNotConfirmed {
			return nil
		}
		if err := users.UpdateStatus(ctx, user.ID, models.UserStatusActive); err != nil {
			return storageErr("activate user", err)
		}
		if err := s.repos.ActivityLogs(tx).Create(ctx, &models.ActivityLog{
			UserID:   user.ID,
			Action:   models.ActivityChange,
			Metadata: map[string]string{"field": "status", "value": models.UserStatusActive.String()},
		}); err != nil {
			return storageErr("write activity log", err)
		}
		return nil
	})
}

// RestorePasswordInitiate mails a restore code when email and memberID name
// the same account. Otherwise it does nothing and says nothing.
func (s *AccountService) RestorePasswordInitiate(ctx context.Context, email string, memberID int64) error {
	conn := s.runner.Conn()

	user, err := s.repos.Users(conn).GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return storageErr("load user", err)
	}
	if user.MemberID != memberID {
		return nil
	}

	if s.cfg.MaxRestoreAttempts > 0 {
		n, err := s.limiter.Hit(ctx, ratelimit.RestoreKey(user.ID), s.cfg.RestoreAttemptsWindow)
		if err != nil {
			s.log.Warn(ctx, "restore attempt counter unavailable", "user_id", user.ID, "error", err)
			return common.ErrRateLimited
		}
		if n > int64(s.cfg.MaxRestoreAttempts) {
			return common.ErrRateLimited
		}
	}

	code, err := s.issueCode(ctx, s.repos.UserCodes(conn), user.ID, models.CodeActionRestorePasswordInitiate,
		s.cfg.RestoreCodeLength, idgen.Digits, s.cfg.RestoreInitiateTTL)
	if err != nil {
		return err
	}

	if err := s.mailer.SendRestorePassword(ctx, user.Email, code.Code); err != nil {
		s.log.Error(ctx, "failed to send restore email", "user_id", user.ID, "error", err)
	}
	return nil
}

// RestorePasswordConfirmCode trades a mailed restore code for the code that
// authorises the password change.
func (s *AccountService) RestorePasswordConfirmCode(ctx context.Context, code string) (string, error) {
	var next *models.UserCode
	err := s.runner.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		codes := s.repos.UserCodes(tx)
		uc, err := s.consumeCode(ctx, codes, code, models.CodeActionRestorePasswordInitiate)
		if err != nil {
			return err
		}
		next, err = s.issueCode(ctx, codes, uc.UserID, models.CodeActionRestorePasswordComplete,
			RestoreCompleteCodeLength, idgen.Digits, s.cfg.RestoreCompleteTTL)
		return err
	})
	if err != nil {
		return "", err
	}
	return next.Code, nil
}

// RestorePasswordComplete sets a new password and signs the user out everywhere.
func (s *AccountService) RestorePasswordComplete(ctx context.Context, code, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	salt, hash, err := s.hashPassword(newPassword)
	if err != nil {
		return err
	}

	var user *models.User
	err = s.runner.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		uc, err := s.consumeCode(ctx, s.repos.UserCodes(tx), code, models.CodeActionRestorePasswordComplete)
		if err != nil {
			return err
		}

		users := s.repos.Users(tx)
		if user, err = users.GetByID(ctx, uc.UserID); err != nil {
			return storageErr("load user", err)
		}
		if err := users.UpdatePassword(ctx, user.ID, hash, salt); err != nil {
			return storageErr("update password", err)
		}
		if err := s.repos.ActivityLogs(tx).Create(ctx, &models.ActivityLog{
			UserID:   user.ID,
			Action:   models.ActivityChange,
			Metadata: map[string]string{"field": "password"},
		}); err != nil {
			return storageErr("write activity log", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.sessions.RevokeAll(ctx, user.ID); err != nil {
		return err
	}
	if err := s.limiter.Reset(ctx, ratelimit.LoginKey(user.MemberID)); err != nil {
		s.log.Warn(ctx, "failed to reset login attempts", "member_id", user.MemberID, "error", err)
	}
	return nil
}

// ListActivity returns the newest activity entries of userID first.
func (s *AccountService) ListActivity(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > maxActivityPageSize {
		limit = maxActivityPageSize
	}
	entries, err := s.repos.ActivityLogs(s.runner.Conn()).ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, storageErr("list activity", err)
	}
	return entries, nil
}

// --- helpers below ---

func (s *AccountService) issueCode(ctx context.Context, codes usercodes.Repository, userID int64,
	action models.CodeAction, length int, alphabet idgen.Alphabet, ttl time.Duration) (*models.UserCode, error) {

	value, err := idgen.Generate(ctx, idgen.Options{
		Length:   length,
		Alphabet: alphabet,
		IsTaken: func(ctx context.Context, candidate string) (bool, error) {
			return codes.Exists(ctx, candidate, action)
		},
	})
	if err != nil {
		return nil, storageErr("generate code", err)
	}

	uc, err := codes.Create(ctx, &models.UserCode{
		UserID:   userID,
		Code:     value,
		Action:   action,
		ExpireAt: s.clock.Now().Add(ttl),
	})
	if err != nil {
		return nil, storageErr("create code", err)
	}
	return uc, nil
}

// consumeCode deletes a live code and returns it. Missing, expired or
// already consumed codes are all common.ErrInvalidCode.
func (s *AccountService) consumeCode(ctx context.Context, codes usercodes.Repository, code string, action models.CodeAction) (*models.UserCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, common.ErrInvalidCode
	}

	uc, err := codes.Find(ctx, code, action)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCode
		}
		return nil, storageErr("find code", err)
	}
	if !s.clock.Now().Before(uc.ExpireAt) {
		return nil, common.ErrInvalidCode
	}

	n, err := codes.Delete(ctx, uc.ID)
	if err != nil {
		return nil, storageErr("delete code", err)
	}
	if n == 0 {
		return nil, common.ErrInvalidCode
	}
	return uc, nil
}

func (s *AccountService) hashPassword(password string) (salt, hash string, err error) {
	salt, err = common.MakeRandHexString(saltBytes)
	if err != nil {
		return "", "", fmt.Errorf("%w: salt: %w", common.ErrorInternal, err)
	}
	hash, err = s.hasher.Hash(password, salt)
	if err != nil {
		return "", "", fmt.Errorf("%w: hash password: %w", common.ErrorInternal, err)
	}
	return salt, hash, nil
}

func normalizeEmail(email string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Name != "" {
		return "", fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}
	return strings.ToLower(addr.Address), nil
}

func validatePassword(p string) error {
	if len(p) < minPasswordLength || len(p) > maxPasswordLength {
		return fmt.Errorf("%w: password must be %d to %d characters", common.ErrorValidation, minPasswordLength, maxPasswordLength)
	}
	return nil
}
