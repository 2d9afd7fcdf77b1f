package client

import (
	"context"

	"github.com/dmitrijs2005/accountkeeper/internal/client/models"
	pb "github.com/dmitrijs2005/accountkeeper/internal/proto"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Session() *models.Session

	SignUp(ctx context.Context, req *pb.SignUpRequest) (int64, error)
	ConfirmEmail(ctx context.Context, code string) error
	Login(ctx context.Context, memberID int64, password string) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context, allDevices bool) error

	RestorePasswordInitiate(ctx context.Context, email string, memberID int64) error
	RestorePasswordConfirmCode(ctx context.Context, code string) (string, error)
	RestorePasswordComplete(ctx context.Context, code, newPassword string) error

	CreateWallet(ctx context.Context, walletType string) (*pb.Wallet, error)
	ListWallets(ctx context.Context, limit, offset int32) ([]*pb.Wallet, error)
	ListActivity(ctx context.Context, limit int32) ([]*pb.ActivityEntry, error)
}
