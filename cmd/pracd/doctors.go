package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDoctorsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctors",
		Short: "Browse doctors (public)",
		RunE: func(cmd *cobra.Command, args []string) error {
			doctors, err := a.client.Doctors(cmd.Context())
			if err != nil {
				return err
			}
			if len(doctors) == 0 {
				fmt.Println("No doctors found")
				return nil
			}
			for _, d := range doctors {
				fmt.Printf("%-24s  %-20s  %-18s  fee %.0f\n",
					d.Key(), d.DisplayName(), d.Specialization, d.Fees)
			}
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a doctor's public profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.client.PublicDoctor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Name:           %s\n", d.DisplayName())
			fmt.Printf("Specialization: %s\n", d.Specialization)
			fmt.Printf("Email:          %s\n", d.EmailAddress())
			fmt.Printf("Phone:          %s\n", d.Phone)
			fmt.Printf("Address:        %s\n", d.Address)
			fmt.Printf("Experience:     %d years\n", d.Experience)
			fmt.Printf("Fee:            %.0f\n", d.Fees)
			if d.Bio != "" {
				fmt.Printf("About:          %s\n", d.Bio)
			}
			return nil
		},
	}
	cmd.AddCommand(show)
	return cmd
}
