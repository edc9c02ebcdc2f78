package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pracd-client/internal/api"
	"pracd-client/internal/booking"
	"pracd-client/internal/model"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := currentIdentity(a)
			if id == nil {
				fmt.Println("Please log in to continue")
				return nil
			}
			p, err := a.client.Profile(cmd.Context(), id.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Name:    %s\n", p.DisplayName())
			fmt.Printf("Email:   %s\n", p.EmailAddress())
			fmt.Printf("Phone:   %s\n", p.Phone)
			fmt.Printf("Address: %s\n", p.Address)
			fmt.Printf("Status:  %s\n", p.Status)
			if p.Role == model.RoleDoctor {
				fmt.Printf("Specialization: %s\n", p.Specialization)
				fmt.Printf("Fee:            %.0f\n", p.Fees)
				fmt.Printf("Experience:     %d years\n", p.Experience)
			}
			return nil
		},
	}

	var (
		username string
		email    string
		phone    string
		address  string
		age      int
		spec     string
		bio      string
		fees     float64
		exp      int
	)
	update := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := currentIdentity(a)
			if id == nil {
				fmt.Println("Please log in to continue")
				return nil
			}
			// same inline sanitation the forms apply
			digits := booking.SanitizePhone(phone)
			if phone != "" && len(digits) != 10 {
				return fmt.Errorf("please enter a valid 10-digit phone number")
			}
			upd := api.ProfileUpdate{
				Username:  username,
				UserEmail: email,
				Phone:     digits,
				Address:   address,
				Age:       age,
			}
			if id.Role == model.RoleDoctor {
				upd.Specialization = spec
				upd.Bio = bio
				upd.Fees = fees
				upd.Experience = exp
			}
			if err := a.client.UpdateProfile(cmd.Context(), id.ID, upd); err != nil {
				return err
			}
			fmt.Println("Profile updated successfully")
			return nil
		},
	}
	update.Flags().StringVar(&username, "username", "", "display name")
	update.Flags().StringVar(&email, "email", "", "contact email")
	update.Flags().StringVar(&phone, "phone", "", "10-digit phone number")
	update.Flags().StringVar(&address, "address", "", "postal address")
	update.Flags().IntVar(&age, "age", 0, "age in years")
	update.Flags().StringVar(&spec, "specialization", "", "doctor specialization")
	update.Flags().StringVar(&bio, "bio", "", "doctor bio")
	update.Flags().Float64Var(&fees, "fees", 0, "consultation fee")
	update.Flags().IntVar(&exp, "experience", 0, "years of experience")

	cmd.AddCommand(update)
	return cmd
}
