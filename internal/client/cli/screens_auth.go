package cli

import (
	"context"
	"fmt"

	"github.com/apetrenko/contentgen/internal/api"
)

func (a *App) screenLogin(ctx context.Context) {
	username := a.readLine("username: ")
	password, err := a.readPassword("password: ")
	if err != nil {
		a.fail(ctx, err)
		return
	}

	resp, err := a.client.Login(ctx, &api.LoginRequest{Username: username, Password: password})
	if err != nil {
		a.fail(ctx, err)
		return
	}

	a.user = &resp.User
	fmt.Fprintf(a.out, "welcome back, %s\n", a.user.Username)
}

func (a *App) screenRegister(ctx context.Context) {
	username := a.readLine("username: ")
	email := a.readLine("email: ")

	password, err := a.readPassword("password (min 6 chars): ")
	if err != nil {
		a.fail(ctx, err)
		return
	}
	repeat, err := a.readPassword("repeat password: ")
	if err != nil {
		a.fail(ctx, err)
		return
	}
	if password != repeat {
		a.errLine = "passwords do not match"
		return
	}

	resp, err := a.client.Register(ctx, &api.RegisterRequest{
		Username: username, Email: email, Password: password,
	})
	if err != nil {
		a.fail(ctx, err)
		return
	}

	a.user = &resp.User
	fmt.Fprintf(a.out, "account created, welcome %s\n", a.user.Username)
}
