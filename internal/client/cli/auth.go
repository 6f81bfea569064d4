package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a display name, email and password and creates a new
// account. On success the session is active immediately and the user is
// greeted by username.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	res := a.authService.Register(ctx, name, email, password)
	if !res.Success {
		printlnFn(res.Error)
		return nil
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", res.Data.Username))
	return nil
}

// Login prompts for credentials and authenticates. Failure is user-facing,
// not an error: the message from the service is printed and the REPL moves on.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	res := a.authService.Login(ctx, email, password)
	if !res.Success {
		printlnFn(res.Error)
		return nil
	}

	printlnFn(fmt.Sprintf("Logged in as %s", res.Data.Username))
	return nil
}

// Logout tears the session down; the durable record and the external mirror
// are cleared through the store's listeners.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout()
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the session user, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.sessions.User()
	if u == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> (id %d)", u.Name, u.Email, u.ID))
	return nil
}
