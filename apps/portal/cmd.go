package main

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/term"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/application"
	"github.com/trezcool/safari/core/catalog"
	"github.com/trezcool/safari/core/contact"
	"github.com/trezcool/safari/core/directory"
	"github.com/trezcool/safari/core/guard"
	"github.com/trezcool/safari/core/payment"
	"github.com/trezcool/safari/core/session"
	"github.com/trezcool/safari/services/portalapi"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	store   *session.Store
	api     *portalapi.Client
	catalog *catalog.Service
	apps    *application.Service
	pay     *payment.Service
	contact *contact.Service
	dir     *directory.Service
	log     core.Logger
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  login [-admin] -email EMAIL                  - sign in (password prompted)")
	fmt.Println("  logout                                       - sign out and clear the stored session")
	fmt.Println("  whoami                                       - show the signed-in principal")
	fmt.Println("  register [-admin] ...                        - create an account, then login separately")
	fmt.Println("  notifications [-watch|-mark-read ID|-mark-all|-delete ID]")
	fmt.Println("  universities [-search TERM] [-location LOC] [-sort name|rating|students]")
	fmt.Println("  programs [-university ID] [-degree TYPE] [-sort name|tuition]")
	fmt.Println("  apply ...                                    - submit an application (students)")
	fmt.Println("  payments [-upload|-approve ID|-reject ID]")
	fmt.Println("  students [-email EMAIL]                      - list or look up students (admins)")
	fmt.Println("  admins                                       - list admin accounts (admins)")
	fmt.Println("  contact -name NAME -email EMAIL -subject SUBJ -message MSG")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	ctx := context.Background()

	switch args[1] {
	case "login":
		return cli.login(ctx, args[2:])
	case "logout":
		cli.store.Logout()
		fmt.Println("Logged out successfully")
		return nil
	case "whoami":
		return cli.whoami()
	case "register":
		return cli.register(ctx, args[2:])
	case "notifications":
		return cli.notifications(ctx, args[2:])
	case "universities":
		return cli.universities(ctx, args[2:])
	case "programs":
		return cli.programs(ctx, args[2:])
	case "apply":
		return cli.apply(ctx, args[2:])
	case "payments":
		return cli.payments(ctx, args[2:])
	case "students":
		return cli.students(ctx, args[2:])
	case "admins":
		return cli.admins(ctx, args[2:])
	case "contact":
		return cli.sendContact(ctx, args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

// requireAccess runs the route guard for a screen and renders the denial
// state when access is refused.
func (cli *commandLine) requireAccess(screen string, req guard.Requirement) error {
	res := guard.Check(cli.store, screen, req)
	switch res.Decision {
	case guard.Allow:
		return nil
	case guard.RedirectToLogin:
		return fmt.Errorf("not signed in; run `portal login` first (wanted: %s)", res.Target)
	case guard.InsufficientRole:
		return fmt.Errorf("%s: %s role required, current role is %s",
			res.Decision, res.RequiredRole, res.CurrentRole)
	default:
		return fmt.Errorf("%s: please sign in with the right account", res.Decision)
	}
}
