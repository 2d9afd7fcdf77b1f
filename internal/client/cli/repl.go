package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	ConfirmEmail(ctx context.Context) error
	Login(ctx context.Context) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context, allDevices bool) error
	RestorePassword(ctx context.Context) error
	ListWallets(ctx context.Context, args []string) error
	CreateWallet(ctx context.Context, args []string) error
	Activity(ctx context.Context) error
}

func (a *App) getStatus() string {
	s := ""
	if sess := a.client.Session(); sess != nil {
		s = fmt.Sprintf("%d ", sess.MemberID)
	}
	s += string(a.mode())
	if s != "" {
		s = fmt.Sprintf("(%s)", strings.TrimSpace(s))
	}
	return s
}

// runREPL reads commands from scanner until EOF, exit or quit.
//
//	Not logged in: signup, confirm, login, restore, exit
//	Logged in:     wallets [page], create-wallet <type>, activity,
//	               refresh, logout, logout-all, exit
//
// Handler errors are reported by the handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ak %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: wallets [page], create-wallet <usd|eur|gold>, activity, refresh, logout, logout-all, exit")
			} else {
				printlnFn("Available commands: signup, confirm, login, restore, exit")
			}

		case "signup":
			_ = a.SignUp(ctx)

		case "confirm":
			_ = a.ConfirmEmail(ctx)

		case "login":
			_ = a.Login(ctx)

		case "restore":
			_ = a.RestorePassword(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "logout":
			_ = a.Logout(ctx, false)

		case "logout-all":
			_ = a.Logout(ctx, true)

		case "w", "wallets":
			_ = a.ListWallets(ctx, args)

		case "create-wallet":
			_ = a.CreateWallet(ctx, args)

		case "activity":
			_ = a.Activity(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
