package main

import (
	"log"
	"os"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/application"
	"github.com/trezcool/safari/core/catalog"
	"github.com/trezcool/safari/core/contact"
	"github.com/trezcool/safari/core/directory"
	"github.com/trezcool/safari/core/payment"
	"github.com/trezcool/safari/core/session"
	logsvc "github.com/trezcool/safari/services/logger"
	"github.com/trezcool/safari/services/portalapi"
	"github.com/trezcool/safari/storage/state"
)

func main() {
	defer os.Exit(0)

	std := log.New(os.Stdout, "PORTAL : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	var logger core.Logger
	if core.Conf.GetBool("debug") {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std)
	}

	// set up durable session state
	st, err := state.Open(core.Conf.GetString("stateDir"))
	if err != nil {
		std.Fatal(err)
	}

	// set up API client & services
	client := portalapi.NewClient(&portalapi.Options{
		Token:  portalapi.TokenFromStorage(st),
		Logger: logger,
	})
	store := session.NewStore(st, client, logger)
	store.Load()

	cli := commandLine{
		store:   store,
		api:     client,
		catalog: catalog.NewService(client, logger),
		apps:    application.NewService(client, logger),
		pay:     payment.NewService(client, logger),
		contact: contact.NewService(client, logger),
		dir:     directory.NewService(client, logger),
		log:     logger,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			std.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
