package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/trezcool/safari/core/contact"
)

// sendContact posts the public contact form; no sign-in required.
func (cli *commandLine) sendContact(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("contact", flag.ExitOnError)
	name := cmd.String("name", "", "Your name.")
	email := cmd.String("email", "", "Your email address.")
	subject := cmd.String("subject", "", "Message subject.")
	body := cmd.String("message", "", "Message body.")
	typ := cmd.String("type", "", "GENERAL, ADMISSION, PAYMENT, TECHNICAL or PARTNERSHIP.")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	msg, err := cli.contact.Send(ctx, contact.NewMessage{
		Name: *name, Email: *email, Subject: *subject, Body: *body, Type: *typ,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Message sent! Reference: %d\n", msg.ID)
	return nil
}
