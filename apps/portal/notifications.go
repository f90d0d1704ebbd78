package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/guard"
	"github.com/trezcool/safari/core/notify"
)

// notifications is the signed-in shell: it resolves the inbox audience from
// the principal's type and either lists once or keeps a live badge.
func (cli *commandLine) notifications(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("notifications", flag.ExitOnError)
	watch := cmd.Bool("watch", false, "Keep polling and print the unread badge as it changes.")
	markRead := cmd.Int("mark-read", 0, "Mark one notification read.")
	markAll := cmd.Bool("mark-all", false, "Mark every unread notification read.")
	del := cmd.Int("delete", 0, "Delete one notification.")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := cli.requireAccess("notifications", guard.Requirement{}); err != nil {
		return err
	}

	audience := notify.AdminAudience()
	if cli.store.IsStudent() {
		audience = notify.StudentAudience(cli.store.Principal().StudentID)
	}
	inbox := notify.NewInbox(cli.api, audience, cli.log)

	if *watch {
		return cli.watchInbox(ctx, inbox)
	}

	if err := inbox.Refresh(ctx); err != nil {
		return err
	}

	switch {
	case *markRead != 0:
		if err := inbox.MarkRead(ctx, *markRead); err != nil {
			return err
		}
		fmt.Printf("notification %d marked read\n", *markRead)
	case *markAll:
		if err := inbox.MarkAllRead(ctx); err != nil {
			return err
		}
		fmt.Println("all notifications marked read")
	case *del != 0:
		if err := inbox.Delete(ctx, *del); err != nil {
			return err
		}
		fmt.Printf("notification %d deleted\n", *del)
	}

	printInbox(inbox)
	return nil
}

func (cli *commandLine) watchInbox(ctx context.Context, inbox *notify.Inbox) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	watcher := notify.NewWatcher(inbox, core.Conf.GetDuration("pollInterval"), cli.log)
	watcher.OnCount = func(count int) {
		fmt.Printf("\runread: %s   ", badge(count))
	}
	watcher.Start(ctx)
	defer watcher.Stop()

	// teardown on Ctrl-C
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	defer signal.Stop(sig)

	select {
	case <-sig:
		fmt.Println()
	case <-ctx.Done():
	}
	return nil
}

// badge renders the unread count the way the navbar does: capped at "9+".
func badge(count int) string {
	if count > 9 {
		return "9+"
	}
	return fmt.Sprintf("%d", count)
}

func printInbox(inbox *notify.Inbox) {
	items := inbox.Notifications()
	fmt.Printf("%d notifications, %d unread\n", len(items), inbox.UnreadCount())
	for _, n := range items {
		marker := " "
		if n.Unread() {
			marker = "*"
		}
		fmt.Printf("%s [%d] %-22s %s - %s\n", marker, n.ID, n.Type, n.DisplaySubject(), n.Message)
	}
}
