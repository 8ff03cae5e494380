package cli

import (
	"context"
	"fmt"
	"os"
)

// Register prompts for credentials and creates a new account.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	account, err := a.core.RegisterAccount(ctx, username, password)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Account %s created, you can login now", account.Username))
	return nil
}

// Login authenticates and persists the session so it survives restarts.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	account, err := a.core.Authenticate(ctx, username, password)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if err := a.core.StartSession(ctx, account); err != nil {
		printlnFn(err.Error())
		return err
	}

	a.sess = a.core.ResumeSession(ctx)
	printlnFn(fmt.Sprintf("Logged in as %s", account.Username))
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.core.EndSession(ctx); err != nil {
		printlnFn(err.Error())
		return err
	}
	a.sess = nil
	printlnFn("Logged out")
	return nil
}
