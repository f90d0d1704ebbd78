package main

import (
	"context"
	"flag"
	"fmt"
	"syscall"

	"github.com/trezcool/safari/core/session"
)

// login signs into the student portal by default; -admin targets the admin
// portal. A successful login with the wrong account type for the chosen
// portal is refused on screen, though the backend session was established.
func (cli *commandLine) login(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("login", flag.ExitOnError)
	email := cmd.String("email", "", "The account email. The password will be prompted next.")
	admin := cmd.Bool("admin", false, "Use the admin portal.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		cmd.Usage()
		return errHelp
	}

	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}

	res := cli.store.Login(ctx, session.Credentials{Email: *email, Password: string(pwd)})
	if !res.OK {
		return fmt.Errorf(res.Error)
	}

	if *admin && !res.Principal.IsAdmin() {
		return fmt.Errorf("this account is not an admin; please use the student login")
	}
	if !*admin && res.Principal.IsAdmin() {
		return fmt.Errorf("this is an admin account; please use the admin login")
	}

	fmt.Printf("Welcome %s!\n", res.Principal.DisplayName())
	return nil
}

func (cli *commandLine) whoami() error {
	if !cli.store.IsAuthenticated() {
		fmt.Println("not signed in")
		return nil
	}
	p := cli.store.Principal()
	fmt.Printf("%s %s <%s>\n", p.FirstName, p.LastName, p.Email)
	fmt.Printf("type: %s  role: %s  id: %d\n", p.UserType, p.Role, p.UserID)
	return nil
}

func (cli *commandLine) register(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("register", flag.ExitOnError)
	admin := cmd.Bool("admin", false, "Register an admin account.")
	firstName := cmd.String("first-name", "", "First name.")
	lastName := cmd.String("last-name", "", "Last name.")
	email := cmd.String("email", "", "Email address.")
	phone := cmd.String("phone", "", "Phone number (students).")
	country := cmd.String("country", "", "Country of residence (students).")
	role := cmd.String("role", "", "Admin sub-role (admins).")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *email == "" || *firstName == "" || *lastName == "" {
		cmd.Usage()
		return errHelp
	}

	fmt.Print("Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Println()
	if err != nil {
		return err
	}

	var res session.Result
	if *admin {
		res = cli.store.RegisterAdmin(ctx, session.NewAdmin{
			FirstName: *firstName, LastName: *lastName, Email: *email,
			Password: string(pwd), Role: *role,
		})
	} else {
		res = cli.store.RegisterStudent(ctx, session.NewStudent{
			FirstName: *firstName, LastName: *lastName, Email: *email,
			Password: string(pwd), PhoneNumber: *phone, Country: *country,
		})
	}
	if !res.OK {
		return fmt.Errorf(res.Error)
	}
	fmt.Println("Registration successful! Please login.")
	return nil
}
