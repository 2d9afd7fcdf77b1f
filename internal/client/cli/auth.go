package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/dmitrijs2005/accountkeeper/internal/client/client"
	"github.com/dmitrijs2005/accountkeeper/internal/common"
	pb "github.com/dmitrijs2005/accountkeeper/internal/proto"
)

// report prints a short message for err and returns it unchanged.
func report(action string, err error) error {
	switch {
	case err == nil:
	case errors.Is(err, client.ErrUnavailable):
		printlnFn(action + " failed: server unavailable")
	case errors.Is(err, client.ErrRateLimited):
		printlnFn(action + " failed: too many attempts, try again later")
	case errors.Is(err, client.ErrNotLoggedIn):
		printlnFn("Please log in first")
	default:
		printlnFn(fmt.Sprintf("%s failed: %v", action, err))
	}
	return err
}

func (a *App) SignUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Choose password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	city, err := getSimpleText(a.reader, "City (optional)", a.out)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "First name (optional)", a.out)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name (optional)", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	memberID, err := a.client.SignUp(ctx, &pb.SignUpRequest{
		Email:     email,
		Password:  string(password),
		City:      city,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return report("Sign up", err)
	}

	printlnFn(fmt.Sprintf("Registered. Your member id is %d. Check your mailbox for the confirmation code.", memberID))
	return nil
}

func (a *App) ConfirmEmail(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Enter confirmation code", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.ConfirmEmail(ctx, code); err != nil {
		return report("Confirmation", err)
	}
	printlnFn("Email confirmed, you can log in now")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	memberID, err := a.getMemberID()
	if err != nil {
		return report("Login", err)
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Login(ctx, memberID, string(password)); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return report("Login", err)
	}

	a.setMode(ModeOnline)
	printlnFn("Login successful")
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Refresh(ctx); err != nil {
		return report("Refresh", err)
	}
	printlnFn("Session refreshed")
	return nil
}

func (a *App) Logout(ctx context.Context, allDevices bool) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Logout(ctx, allDevices); err != nil {
		return report("Logout", err)
	}
	if allDevices {
		printlnFn("Logged out on all devices")
	} else {
		printlnFn("Logged out")
	}
	return nil
}

// RestorePassword walks through the three restore steps: request a code by
// email, trade it for a completion code, then set the new password.
func (a *App) RestorePassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	memberID, err := a.getMemberID()
	if err != nil {
		return report("Restore", err)
	}

	reqCtx, cancel := a.withTimeout(ctx)
	err = a.client.RestorePasswordInitiate(reqCtx, email, memberID)
	cancel()
	if err != nil {
		return report("Restore", err)
	}
	printlnFn("If the details match, a code was sent to your email")

	code, err := getSimpleText(a.reader, "Enter code from email", a.out)
	if err != nil {
		return err
	}

	reqCtx, cancel = a.withTimeout(ctx)
	completeCode, err := a.client.RestorePasswordConfirmCode(reqCtx, code)
	cancel()
	if err != nil {
		return report("Restore", err)
	}

	password, err := getPassword("Choose new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	reqCtx, cancel = a.withTimeout(ctx)
	err = a.client.RestorePasswordComplete(reqCtx, completeCode, string(password))
	cancel()
	if err != nil {
		return report("Restore", err)
	}

	printlnFn("Password changed. All sessions were ended, please log in again")
	return nil
}
