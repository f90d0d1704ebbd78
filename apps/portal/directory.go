package main

import (
	"context"
	"flag"
	"fmt"
)

// students lists the registered students for the admin dashboard.
func (cli *commandLine) students(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("students", flag.ExitOnError)
	email := cmd.String("email", "", "Look one student up by email.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if err := cli.requireAdmin("students"); err != nil {
		return err
	}

	if *email != "" {
		s, err := cli.dir.StudentByEmail(ctx, *email)
		if err != nil {
			return err
		}
		fmt.Printf("[%d] %s %s <%s> %s, %s\n", s.ID, s.FirstName, s.LastName, s.Email, s.PhoneNumber, s.Country)
		return nil
	}

	list, err := cli.dir.Students(ctx)
	if err != nil {
		return err
	}
	for _, s := range list {
		fmt.Printf("[%d] %s %s <%s> %s\n", s.ID, s.FirstName, s.LastName, s.Email, s.Country)
	}
	return nil
}

func (cli *commandLine) admins(ctx context.Context, args []string) error {
	if err := cli.requireAdmin("admins"); err != nil {
		return err
	}
	list, err := cli.dir.Admins(ctx)
	if err != nil {
		return err
	}
	for _, a := range list {
		fmt.Printf("[%d] %s %s <%s> %s\n", a.ID, a.FirstName, a.LastName, a.Email, a.Role)
	}
	return nil
}
