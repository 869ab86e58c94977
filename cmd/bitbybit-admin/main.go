package main

import (
	"context"
	"log"
	"os"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/credentials"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/config"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stderr, "BITBYBIT-ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	cfg := config.LoadConfig()

	// set up the credential store and API client
	store, err := credentials.Open(context.Background(), cfg.Credentials)
	errAndDie(err)
	defer credentials.Close(store)

	client, err := bitbybit.New(cfg.API.URL,
		bitbybit.WithCredentialStore(store),
		bitbybit.WithTimeout(cfg.API.Timeout),
	)
	errAndDie(err)

	// start CLI
	cli := commandLine{
		client:    client,
		store:     store,
		draftPath: cfg.Draft.Path,
		out:       os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		credentials.Close(store)
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
