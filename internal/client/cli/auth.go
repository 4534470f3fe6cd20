package cli

import (
	"context"
	"fmt"

	pb "github.com/dmitrijs2005/bookings/internal/proto"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the registration form and creates an account. On
// success the session starts immediately. Password buffers are wiped before
// returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	phone, err := getSimpleText(a.reader, "Enter phone number", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	defer clear(confirm)

	user, err := a.client.Register(ctx, &pb.RegisterRequest{
		Username:        userName,
		Email:           email,
		Password:        string(password),
		ConfirmPassword: string(confirm),
		PhoneNumber:     phone,
	})
	if err != nil {
		a.printError(err)
		return err
	}

	a.userName = user.GetUsername()
	fmt.Fprintf(a.out, "Registered and logged in as %s\n", user.GetUsername())
	return nil
}

// Login prompts for credentials and starts a session. The password is wiped
// before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	user, err := a.client.Login(ctx, userName, string(password))
	if err != nil {
		a.printError(err)
		return err
	}

	a.userName = user.GetUsername()
	fmt.Fprintf(a.out, "Logged in as %s, %d booking(s) on record\n", user.GetUsername(), len(user.GetBookingsHistory()))
	return nil
}

// Logout drops the in-memory token.
func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
