package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/application"
	"github.com/trezcool/safari/core/guard"
	"github.com/trezcool/safari/core/session"
)

// apply submits a student application. With -list it shows the signed-in
// student's existing applications instead.
func (cli *commandLine) apply(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("apply", flag.ExitOnError)
	list := cmd.Bool("list", false, "List my applications instead of submitting.")
	university := cmd.Int("university", 0, "University to apply to.")
	program := cmd.Int("program", 0, "Program to apply to.")
	appType := cmd.String("type", application.TypeUndergraduate, "UNDERGRADUATE, POSTGRADUATE or DOCTORATE.")
	phone := cmd.String("phone", "", "Phone number.")
	country := cmd.String("country", "", "Country of residence.")
	motivation := cmd.String("motivation", "", "Motivation letter text.")
	cvPath := cmd.String("cv", "", "Path to a CV file to upload with the application.")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	if err := cli.requireAccess("apply", guard.Requirement{
		AllowedTypes: []string{session.TypeStudent},
	}); err != nil {
		return err
	}
	p := cli.store.Principal()

	if *list {
		apps, err := cli.apps.ByStudent(ctx, p.StudentID)
		if err != nil {
			return err
		}
		for _, a := range apps {
			fmt.Printf("[%d] university %d / program %d - %s (%s)\n",
				a.ID, a.UniversityID, a.ProgramID, a.Status, a.SubmittedAt.Format("2006-01-02"))
		}
		return nil
	}

	var cv *core.Attachment
	if *cvPath != "" {
		f, err := os.Open(*cvPath)
		if err != nil {
			return err
		}
		defer f.Close()
		cv = &core.Attachment{
			Content:     f,
			ContentType: "application/octet-stream",
			Filename:    filepath.Base(*cvPath),
		}
	}

	app, err := cli.apps.Submit(ctx, p.StudentID, application.NewApplication{
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Email:            p.Email,
		PhoneNumber:      *phone,
		Country:          *country,
		UniversityID:     *university,
		ProgramID:        *program,
		ApplicationType:  *appType,
		MotivationLetter: *motivation,
	}, cv)
	if err != nil {
		return err
	}
	fmt.Printf("Application submitted! Reference: %d (status %s)\n", app.ID, app.Status)
	return nil
}
