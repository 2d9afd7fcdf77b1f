package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
	"github.com/dmitrijs2005/accountkeeper/internal/client/repositories/session"
	"github.com/dmitrijs2005/accountkeeper/internal/common"
	pb "github.com/dmitrijs2005/accountkeeper/internal/proto"
	"github.com/dmitrijs2005/accountkeeper/internal/timex"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var protectedMethods = map[string]bool{
	pb.AccountService_Logout_FullMethodName:       true,
	pb.AccountService_CreateWallet_FullMethodName: true,
	pb.AccountService_ListWallets_FullMethodName:  true,
	pb.AccountService_ListActivity_FullMethodName: true,
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AccountServiceClient
	sessions    session.Repository
	clock       timex.Clock

	mu        sync.Mutex
	current   *models.Session
	refreshMu sync.Mutex
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor sends the stored access token with protected calls.
// On Unauthenticated it rotates the pair once and replays the call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if !protectedMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	sess := s.Session()
	if sess == nil {
		return ErrNotLoggedIn
	}

	err := invoker(withAccessToken(ctx, sess.AccessToken), method, req, reply, cc, opts...)
	if status.Code(err) != codes.Unauthenticated {
		return err
	}

	if rerr := s.refresh(ctx, sess.RefreshToken); rerr != nil {
		return err
	}

	// TOKENS REFRESHED, replaying with the new access token
	sess = s.Session()
	if sess == nil {
		return err
	}
	return invoker(withAccessToken(ctx, sess.AccessToken), method, req, reply, cc, opts...)
}

// NewAccountKeeperClient connects to endpointURL and picks up any session
// left by a previous run.
func NewAccountKeeperClient(ctx context.Context, endpointURL string, sessions session.Repository, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, sessions: sessions, clock: timex.SystemClock{}}

	current, err := sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.current = current

	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAccountServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// Session returns a copy of the current session, or nil.
func (s *GRPCClient) Session() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

func (s *GRPCClient) store(ctx context.Context, sess *models.Session) error {
	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return s.sessions.Save(ctx, sess)
}

func (s *GRPCClient) forget(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.sessions.Clear(ctx)
}

// refresh exchanges used for a new pair. Callers racing on the same token
// are serialized; whoever comes second sees the rotated pair and returns.
func (s *GRPCClient) refresh(ctx context.Context, used string) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	sess := s.Session()
	if sess == nil {
		return ErrNotLoggedIn
	}
	if sess.RefreshToken != used {
		return nil
	}
	if !sess.RefreshUsable(s.clock.Now()) {
		_ = s.forget(ctx)
		return ErrUnauthorized
	}

	resp, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: sess.RefreshToken})
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			_ = s.forget(ctx)
		}
		return s.mapError(err)
	}

	return s.store(ctx, sessionFromPair(sess.MemberID, resp))
}

func sessionFromPair(memberID int64, p *pb.TokenPairResponse) *models.Session {
	return &models.Session{
		MemberID:         memberID,
		AccessToken:      p.AccessToken,
		RefreshToken:     p.RefreshToken,
		AccessExpiresAt:  p.GetAccessExpiresAt().AsTime(),
		RefreshExpiresAt: p.GetRefreshExpiresAt().AsTime(),
	}
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.Empty{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) SignUp(ctx context.Context, req *pb.SignUpRequest) (int64, error) {
	resp, err := s.client.SignUp(ctx, req)
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.GetMemberId(), nil
}

func (s *GRPCClient) ConfirmEmail(ctx context.Context, code string) error {
	if _, err := s.client.ConfirmEmail(ctx, &pb.ConfirmEmailRequest{Code: code}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Login(ctx context.Context, memberID int64, password string) error {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{MemberId: memberID, Password: password})
	if err != nil {
		return s.mapError(err)
	}
	return s.store(ctx, sessionFromPair(memberID, resp))
}

// Refresh rotates the stored pair on demand.
func (s *GRPCClient) Refresh(ctx context.Context) error {
	sess := s.Session()
	if sess == nil {
		return ErrNotLoggedIn
	}
	return s.refresh(ctx, sess.RefreshToken)
}

// Logout ends the session on the server and forgets it locally. A session
// the server no longer knows is forgotten as well.
func (s *GRPCClient) Logout(ctx context.Context, allDevices bool) error {
	_, err := s.client.Logout(ctx, &pb.LogoutRequest{AllDevices: allDevices})
	if err != nil && status.Code(err) != codes.Unauthenticated {
		return s.mapError(err)
	}
	if ferr := s.forget(ctx); ferr != nil {
		return ferr
	}
	return s.mapError(err)
}

func (s *GRPCClient) RestorePasswordInitiate(ctx context.Context, email string, memberID int64) error {
	_, err := s.client.RestorePasswordInitiate(ctx, &pb.RestorePasswordInitiateRequest{Email: email, MemberId: memberID})
	return s.mapError(err)
}

func (s *GRPCClient) RestorePasswordConfirmCode(ctx context.Context, code string) (string, error) {
	resp, err := s.client.RestorePasswordConfirmCode(ctx, &pb.RestorePasswordConfirmCodeRequest{Code: code})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Code, nil
}

func (s *GRPCClient) RestorePasswordComplete(ctx context.Context, code, newPassword string) error {
	_, err := s.client.RestorePasswordComplete(ctx, &pb.RestorePasswordCompleteRequest{Code: code, NewPassword: newPassword})
	return s.mapError(err)
}

func (s *GRPCClient) CreateWallet(ctx context.Context, walletType string) (*pb.Wallet, error) {
	resp, err := s.client.CreateWallet(ctx, &pb.CreateWalletRequest{Type: walletType})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetWallet(), nil
}

func (s *GRPCClient) ListWallets(ctx context.Context, limit, offset int32) ([]*pb.Wallet, error) {
	resp, err := s.client.ListWallets(ctx, &pb.ListWalletsRequest{Limit: limit, Offset: offset})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetWallets(), nil
}

func (s *GRPCClient) ListActivity(ctx context.Context, limit int32) ([]*pb.ActivityEntry, error) {
	resp, err := s.client.ListActivity(ctx, &pb.ListActivityRequest{Limit: limit})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetEntries(), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.ResourceExhausted:
		return ErrRateLimited
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument, codes.AlreadyExists, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
