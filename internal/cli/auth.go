package cli

import (
	"context"
	"fmt"

	"github.com/pisystem/client/internal/common"
)

// Login prompts for credentials, runs the login flow and prints the outcome.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.login.Login(ctx, email, string(password))
	res, err := awaitTerminal(ctx, a.login.Holder)
	if err != nil {
		return err
	}

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
		return nil
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", a.profile.Name(ctx))
	return nil
}

// Register prompts for the registration fields and prints the outcome.
func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	mobile, err := GetSimpleText(a.reader, "Enter mobile number", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.register.Register(ctx, name, email, mobile, string(password))
	res, err := awaitTerminal(ctx, a.register.Holder)
	if err != nil {
		return err
	}

	if res.IsError() {
		fmt.Fprintln(a.out, res.Message())
		return nil
	}
	fmt.Fprintf(a.out, "Registered as %s\n", a.profile.Name(ctx))
	return nil
}

// Logout clears the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.profile.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
