// Package grpc exposes the account services over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/accountkeeper/internal/logging"
	pb "github.com/dmitrijs2005/accountkeeper/internal/proto"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
	"github.com/dmitrijs2005/accountkeeper/internal/server/services"
	"google.golang.org/grpc"
)

type sessionSvc interface {
	CheckLoginAllowed(ctx context.Context, memberID int64) error
	Login(ctx context.Context, memberID int64, password string, client services.ClientContext) (*services.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, accessToken string, allDevices bool) error
	Authenticate(ctx context.Context, accessToken string) (*services.Principal, error)
}

type accountSvc interface {
	SignUp(ctx context.Context, req services.SignUpRequest) (*models.User, error)
	ConfirmEmail(ctx context.Context, code string) error
	RestorePasswordInitiate(ctx context.Context, email string, memberID int64) error
	RestorePasswordConfirmCode(ctx context.Context, code string) (string, error)
	RestorePasswordComplete(ctx context.Context, code, newPassword string) error
	ListActivity(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error)
}

type walletSvc interface {
	Create(ctx context.Context, userID int64, typ models.WalletType) (*models.Wallet, error)
	List(ctx context.Context, userID int64, limit, offset int) ([]models.Wallet, error)
}

type GRPCServer struct {
	pb.UnimplementedAccountServiceServer
	address  string
	sessions sessionSvc
	accounts accountSvc
	wallets  walletSvc
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, ss sessionSvc, as accountSvc, ws walletSvc) (*GRPCServer, error) {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		sessions: ss,
		accounts: as,
		wallets:  ws,
	}, nil
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestLogInterceptor, s.accessTokenInterceptor))
	pb.RegisterAccountServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
