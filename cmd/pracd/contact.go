package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pracd-client/internal/booking"
	"pracd-client/internal/model"
)

func newContactCmd(a *app) *cobra.Command {
	var (
		firstName string
		lastName  string
		email     string
		mobile    string
		message   string
	)
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send an enquiry (public)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if firstName == "" || email == "" || mobile == "" {
				return fmt.Errorf("--first-name, --email and --mobile are required")
			}
			digits := booking.SanitizePhone(mobile)
			if len(digits) != 10 {
				return fmt.Errorf("please enter a valid 10-digit mobile number")
			}
			e := &model.Enquiry{
				FirstName:    firstName,
				LastName:     lastName,
				Email:        email,
				MobileNumber: digits,
				Message:      message,
			}
			if err := a.client.SubmitEnquiry(cmd.Context(), e); err != nil {
				return err
			}
			fmt.Println("Enquiry submitted")
			return nil
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().StringVar(&mobile, "mobile", "", "10-digit mobile number")
	cmd.Flags().StringVar(&message, "message", "", "enquiry text")
	return cmd
}
