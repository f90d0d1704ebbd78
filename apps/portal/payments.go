package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trezcool/safari/core"
	"github.com/trezcool/safari/core/guard"
	"github.com/trezcool/safari/core/payment"
	"github.com/trezcool/safari/core/session"
)

func (cli *commandLine) payments(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("payments", flag.ExitOnError)
	upload := cmd.Bool("upload", false, "Upload a payment proof (students).")
	applicationID := cmd.Int("application", 0, "Application the payment is for.")
	amount := cmd.Float64("amount", 0, "Amount paid, in USD.")
	method := cmd.String("method", "", "Payment method, e.g. BANK_TRANSFER.")
	slipPath := cmd.String("slip", "", "Path to the payment slip file.")
	approve := cmd.Int("approve", 0, "Approve a payment (admins).")
	reject := cmd.Int("reject", 0, "Reject a payment (admins).")
	reason := cmd.String("reason", "", "Rejection reason shown to the student.")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	switch {
	case *upload:
		if err := cli.requireAccess("payments", guard.Requirement{
			AllowedTypes: []string{session.TypeStudent},
		}); err != nil {
			return err
		}
		var slip *core.Attachment
		if *slipPath != "" {
			f, err := os.Open(*slipPath)
			if err != nil {
				return err
			}
			defer f.Close()
			slip = &core.Attachment{
				Content:     f,
				ContentType: "application/octet-stream",
				Filename:    filepath.Base(*slipPath),
			}
		}
		pmt, err := cli.pay.Upload(ctx, payment.NewPayment{
			ApplicationID: *applicationID,
			Amount:        *amount,
			Method:        *method,
		}, slip)
		if err != nil {
			return err
		}
		fmt.Printf("Payment %d uploaded (status %s)\n", pmt.ID, pmt.Status)
		return nil

	case *approve != 0:
		if err := cli.requireAdmin("payments"); err != nil {
			return err
		}
		if err := cli.pay.Approve(ctx, *approve); err != nil {
			return err
		}
		fmt.Printf("Payment %d approved\n", *approve)
		return nil

	case *reject != 0:
		if err := cli.requireAdmin("payments"); err != nil {
			return err
		}
		if err := cli.pay.Reject(ctx, *reject, *reason); err != nil {
			return err
		}
		fmt.Printf("Payment %d rejected\n", *reject)
		return nil
	}

	if err := cli.requireAccess("payments", guard.Requirement{}); err != nil {
		return err
	}
	list, err := cli.pay.All(ctx)
	if err != nil {
		return err
	}
	for _, pmt := range list {
		fmt.Printf("[%d] application %d: $%.2f via %s - %s", pmt.ID, pmt.ApplicationID, pmt.Amount, pmt.Method, pmt.Status)
		if pmt.Reason != "" {
			fmt.Printf(" (%s)", pmt.Reason)
		}
		fmt.Println()
	}
	return nil
}

func (cli *commandLine) requireAdmin(screen string) error {
	return cli.requireAccess(screen, guard.Requirement{
		AllowedTypes: []string{session.TypeAdmin},
	})
}
