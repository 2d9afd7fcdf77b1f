package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/accountkeeper/internal/dbx"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/activitylogs"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/usercodes"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/usertokens"
	"github.com/dmitrijs2005/accountkeeper/internal/server/repositories/wallets"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	UserTokens(db dbx.DBTX) usertokens.Repository
	UserCodes(db dbx.DBTX) usercodes.Repository
	Wallets(db dbx.DBTX) wallets.Repository
	ActivityLogs(db dbx.DBTX) activitylogs.Repository
}
