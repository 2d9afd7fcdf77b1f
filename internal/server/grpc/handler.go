package grpc

import (
	"context"
	"net"

	pb "github.com/dmitrijs2005/accountkeeper/internal/proto"
	"github.com/dmitrijs2005/accountkeeper/internal/server/models"
	"github.com/dmitrijs2005/accountkeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {
	user, err := s.accounts.SignUp(ctx, services.SignUpRequest{
		Email:     req.Email,
		Password:  req.Password,
		City:      req.City,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "member_id", user.MemberID)
	return &pb.SignUpResponse{MemberId: user.MemberID}, nil
}

func (s *GRPCServer) ConfirmEmail(ctx context.Context, req *pb.ConfirmEmailRequest) (*pb.Empty, error) {
	if err := s.accounts.ConfirmEmail(ctx, req.Code); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

// Login consults the failed-login gate before any credential check.
func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenPairResponse, error) {
	if req.MemberId <= 0 || req.Password == "" {
		return nil, status.Error(codes.InvalidArgument, "member id and password are required")
	}

	if err := s.sessions.CheckLoginAllowed(ctx, req.MemberId); err != nil {
		return nil, s.toStatus(ctx, err)
	}

	pair, err := s.sessions.Login(ctx, req.MemberId, req.Password, clientContext(ctx))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return tokenPairResponse(pair), nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.TokenPairResponse, error) {
	pair, err := s.sessions.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return tokenPairResponse(pair), nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.Empty, error) {
	if err := s.sessions.Logout(ctx, tokenFromContext(ctx), req.AllDevices); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) RestorePasswordInitiate(ctx context.Context, req *pb.RestorePasswordInitiateRequest) (*pb.Empty, error) {
	if err := s.accounts.RestorePasswordInitiate(ctx, req.Email, req.MemberId); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) RestorePasswordConfirmCode(ctx context.Context, req *pb.RestorePasswordConfirmCodeRequest) (*pb.RestorePasswordConfirmCodeResponse, error) {
	code, err := s.accounts.RestorePasswordConfirmCode(ctx, req.Code)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.RestorePasswordConfirmCodeResponse{Code: code}, nil
}

func (s *GRPCServer) RestorePasswordComplete(ctx context.Context, req *pb.RestorePasswordCompleteRequest) (*pb.Empty, error) {
	if err := s.accounts.RestorePasswordComplete(ctx, req.Code, req.NewPassword); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.Empty{}, nil
}

func (s *GRPCServer) CreateWallet(ctx context.Context, req *pb.CreateWalletRequest) (*pb.CreateWalletResponse, error) {
	p, ok := principalFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	typ, ok := models.ParseWalletType(req.Type)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown wallet type %q", req.Type)
	}

	w, err := s.wallets.Create(ctx, p.UserID, typ)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CreateWalletResponse{Wallet: walletToProto(*w)}, nil
}

func (s *GRPCServer) ListWallets(ctx context.Context, req *pb.ListWalletsRequest) (*pb.ListWalletsResponse, error) {
	p, ok := principalFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	list, err := s.wallets.List(ctx, p.UserID, int(req.Limit), int(req.Offset))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListWalletsResponse{Wallets: make([]*pb.Wallet, 0, len(list))}
	for _, w := range list {
		resp.Wallets = append(resp.Wallets, walletToProto(w))
	}
	return resp, nil
}

func (s *GRPCServer) ListActivity(ctx context.Context, req *pb.ListActivityRequest) (*pb.ListActivityResponse, error) {
	p, ok := principalFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	entries, err := s.accounts.ListActivity(ctx, p.UserID, int(req.Limit))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListActivityResponse{Entries: make([]*pb.ActivityEntry, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, &pb.ActivityEntry{
			Action:    string(e.Action),
			Metadata:  e.Metadata,
			CreatedAt: timestamppb.New(e.CreatedAt),
		})
	}
	return resp, nil
}

func clientContext(ctx context.Context) services.ClientContext {
	var c services.ClientContext
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		c.IP = p.Addr.String()
		if host, _, err := net.SplitHostPort(c.IP); err == nil {
			c.IP = host
		}
	}
	c.UserAgent = metadataValue(ctx, "user-agent")
	return c
}

func tokenPairResponse(p *services.TokenPair) *pb.TokenPairResponse {
	return &pb.TokenPairResponse{
		AccessToken:      p.AccessToken,
		RefreshToken:     p.RefreshToken,
		AccessExpiresAt:  timestamppb.New(p.AccessExpiresAt),
		RefreshExpiresAt: timestamppb.New(p.RefreshExpiresAt),
	}
}

func walletToProto(w models.Wallet) *pb.Wallet {
	return &pb.Wallet{
		Id:         w.ID,
		Type:       w.Type.String(),
		Identifier: w.Identifier,
		Balance:    w.Balance,
		CreatedAt:  timestamppb.New(w.CreatedAt),
	}
}
