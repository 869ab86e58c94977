package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/helpers"
)

// setToken saves the access token used by every following command
func (cli *commandLine) setToken(token string) error {
	if err := cli.store.SetToken(context.Background(), token); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "access token saved")
	return nil
}

// showToken prints a masked token and its expiry
func (cli *commandLine) showToken() error {
	token, err := cli.store.Token(context.Background())
	if err != nil {
		return err
	}
	if token == "" {
		fmt.Fprintln(cli.out, "no access token saved")
		return nil
	}

	fmt.Fprintf(cli.out, "token:   %s\n", maskToken(token))

	expiry, err := helpers.ParseJWTExpiration(token)
	switch {
	case err != nil:
		fmt.Fprintln(cli.out, "expires: unknown (not a JWT)")
	case expiry.IsZero():
		fmt.Fprintln(cli.out, "expires: never")
	case expiry.Before(time.Now()):
		fmt.Fprintf(cli.out, "expires: %s (expired)\n", expiry.Format(time.RFC3339))
	default:
		fmt.Fprintf(cli.out, "expires: %s\n", expiry.Format(time.RFC3339))
	}
	return nil
}

func (cli *commandLine) clearToken() error {
	if err := cli.store.Clear(context.Background()); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "access token cleared")
	return nil
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "********"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
