package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/staybook/internal/domain"
)

func hostsCmd(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "hosts",
		Short: "List and register hosts",
	}
	c.AddCommand(hostsListCmd(flags), hostsAddCmd(flags))
	return c
}

func hostsListCmd(flags *rootFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List hosts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(flags.workspace, flags.debug)
			if err != nil {
				return err
			}
			defer cleanup()

			all, err := ws.hosts.FindAll()
			if err != nil {
				return err
			}
			return printHosts(cmd.OutOrStdout(), all, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func hostsAddCmd(flags *rootFlags) *cobra.Command {
	var h domain.Host
	var standard, weekend string

	c := &cobra.Command{
		Use:   "add",
		Short: "Register a host",
		RunE: func(cmd *cobra.Command, _ []string) error {
			std, err := domain.ParseMoney(standard)
			if err != nil {
				return err
			}
			wkd, err := domain.ParseMoney(weekend)
			if err != nil {
				return err
			}

			ws, cleanup, err := openWorkspace(flags.workspace, flags.debug)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := ws.hosts.Add(h.WithRates(std, wkd))
			if err != nil {
				return err
			}
			if !res.IsSuccess() {
				return failure(res.Messages())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Host %s was added.\n", res.Payload().ID)
			return nil
		},
	}

	c.Flags().StringVar(&h.LastName, "last-name", "", "Last name")
	c.Flags().StringVar(&h.Email, "email", "", "Email")
	c.Flags().StringVar(&h.Phone, "phone", "", "Phone, e.g. \"(123) 4567890\"")
	c.Flags().StringVar(&h.Address, "address", "", "Street address")
	c.Flags().StringVar(&h.City, "city", "", "City")
	c.Flags().StringVar(&h.State, "state", "", "Two-letter state")
	c.Flags().StringVar(&h.PostalCode, "postal-code", "", "Postal code")
	c.Flags().StringVar(&standard, "standard-rate", "0", "Nightly rate Monday to Friday")
	c.Flags().StringVar(&weekend, "weekend-rate", "0", "Nightly rate Saturday and Sunday")
	return c
}

func guestsCmd(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "guests",
		Short: "List, register, edit and remove guests",
	}
	c.AddCommand(guestsListCmd(flags), guestsAddCmd(flags), guestsEditCmd(flags), guestsDeleteCmd(flags))
	return c
}

func guestsListCmd(flags *rootFlags) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List guests",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(flags.workspace, flags.debug)
			if err != nil {
				return err
			}
			defer cleanup()

			all, err := ws.guests.FindAll()
			if err != nil {
				return err
			}
			return printGuests(cmd.OutOrStdout(), all, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func guestsAddCmd(flags *rootFlags) *cobra.Command {
	var g domain.Guest

	c := &cobra.Command{
		Use:   "add",
		Short: "Register a guest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(flags.workspace, flags.debug)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := ws.guests.Add(g)
			if err != nil {
				return err
			}
			if !res.IsSuccess() {
				return failure(res.Messages())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Guest %d was added.\n", res.Payload().ID)
			return nil
		},
	}

	c.Flags().StringVar(&g.FirstName, "first-name", "", "First name")
	c.Flags().StringVar(&g.LastName, "last-name", "", "Last name")
	c.Flags().StringVar(&g.Email, "email", "", "Email")
	c.Flags().StringVar(&g.Phone, "phone", "", "Phone, e.g. \"(123) 4567890\"")
	c.Flags().StringVar(&g.State, "state", "", "Two-letter state")
	return c
}

func guestsEditCmd(flags *rootFlags) *cobra.Command {
	var email string
	var changes domain.Guest

	c := &cobra.Command{
		Use:   "edit",
		Short: "Edit a guest found by email",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(flags.workspace, flags.debug)
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := findGuest(ws, email)
			if err != nil {
				return err
			}

			// Only flags given on the command line replace stored values.
			set := cmd.Flags().Changed
			if set("first-name") {
				g.FirstName = changes.FirstName
			}
			if set("last-name") {
				g.LastName = changes.LastName
			}
			if set("new-email") {
				g.Email = changes.Email
			}
			if set("phone") {
				g.Phone = changes.Phone
			}
			if set("state") {
				g.State = changes.State
			}

			res, err := ws.guests.Edit(g)
			if err != nil {
				return err
			}
			if !res.IsSuccess() {
				return failure(res.Messages())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Guest %d was updated.\n", g.ID)
			return nil
		},
	}

	c.Flags().StringVar(&email, "email", "", "Current guest email (required)")
	c.Flags().StringVar(&changes.FirstName, "first-name", "", "New first name")
	c.Flags().StringVar(&changes.LastName, "last-name", "", "New last name")
	c.Flags().StringVar(&changes.Email, "new-email", "", "New email")
	c.Flags().StringVar(&changes.Phone, "phone", "", "New phone")
	c.Flags().StringVar(&changes.State, "state", "", "New two-letter state")
	_ = c.MarkFlagRequired("email")
	return c
}

func guestsDeleteCmd(flags *rootFlags) *cobra.Command {
	var email string

	c := &cobra.Command{
		Use:   "delete",
		Short: "Remove a guest found by email",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(flags.workspace, flags.debug)
			if err != nil {
				return err
			}
			defer cleanup()

			g, err := findGuest(ws, email)
			if err != nil {
				return err
			}

			res, err := ws.guests.Delete(g)
			if err != nil {
				return err
			}
			if !res.IsSuccess() {
				return failure(res.Messages())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Guest %d was deleted.\n", g.ID)
			return nil
		},
	}

	c.Flags().StringVar(&email, "email", "", "Guest email (required)")
	_ = c.MarkFlagRequired("email")
	return c
}
