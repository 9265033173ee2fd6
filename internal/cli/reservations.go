package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/staybook/internal/domain"
)

func reservationsCmd(flags *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:     "reservations",
		Aliases: []string{"res"},
		Short:   "List and manage a host's reservations",
	}

	c.AddCommand(
		reservationsListCmd(flags),
		reservationsAddCmd(flags),
		reservationsEditCmd(flags),
		reservationsDeleteCmd(flags),
	)
	return c
}

func reservationsListCmd(flags *rootFlags) *cobra.Command {
	var hostEmail, guestEmail, format string

	c := &cobra.Command{
		Use:   "list",
		Short: "List reservations for a host, optionally for one guest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(flags.workspace, flags.debug)
			if err != nil {
				return err
			}
			defer cleanup()

			host, err := findHost(ws, hostEmail)
			if err != nil {
				return err
			}

			var list []domain.Reservation
			if guestEmail == "" {
				list, err = ws.reservations.FindByHost(host.ID)
			} else {
				guest, gerr := findGuest(ws, guestEmail)
				if gerr != nil {
					return gerr
				}
				list, err = ws.reservations.FindByHostAndGuest(host.ID, guest.ID)
			}
			if err != nil {
				return err
			}

			return printReservations(cmd.OutOrStdout(), host, list, format)
		},
	}

	c.Flags().StringVar(&hostEmail, "host", "", "Host email (required)")
	c.Flags().StringVar(&guestEmail, "guest", "", "Guest email (optional)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	_ = c.MarkFlagRequired("host")
	return c
}

func reservationsAddCmd(flags *rootFlags) *cobra.Command {
	var hostEmail, guestEmail, start, end string

	c := &cobra.Command{
		Use:   "add",
		Short: "Book a guest with a host for [start, end)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			startDate, endDate, err := parseRange(start, end)
			if err != nil {
				return err
			}

			ws, cleanup, err := openWorkspace(flags.workspace, flags.debug)
			if err != nil {
				return err
			}
			defer cleanup()

			host, err := findHost(ws, hostEmail)
			if err != nil {
				return err
			}
			guest, err := findGuest(ws, guestEmail)
			if err != nil {
				return err
			}

			res, err := ws.reservations.AddReservation(domain.NewReservation(&host, &guest, startDate, endDate))
			if err != nil {
				return err
			}
			if !res.IsSuccess() {
				return failure(res.Messages())
			}

			r := res.Payload()
			fmt.Fprintf(cmd.OutOrStdout(), "Reservation %d was created (total $%s).\n", r.ID, domain.FormatMoney(r.Total))
			return nil
		},
	}

	c.Flags().StringVar(&hostEmail, "host", "", "Host email (required)")
	c.Flags().StringVar(&guestEmail, "guest", "", "Guest email (required)")
	c.Flags().StringVar(&start, "start", "", "Start date yyyy-MM-dd (required)")
	c.Flags().StringVar(&end, "end", "", "End date yyyy-MM-dd (required)")
	for _, f := range []string{"host", "guest", "start", "end"} {
		_ = c.MarkFlagRequired(f)
	}
	return c
}

func reservationsEditCmd(flags *rootFlags) *cobra.Command {
	var hostEmail, start, end string
	var id int

	c := &cobra.Command{
		Use:   "edit",
		Short: "Change the dates of a reservation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(flags.workspace, flags.debug)
			if err != nil {
				return err
			}
			defer cleanup()

			host, err := findHost(ws, hostEmail)
			if err != nil {
				return err
			}
			existing, err := ws.reservations.FindByReservationID(host.ID, id)
			if err != nil {
				return err
			}
			if existing == nil {
				return failure([]string{fmt.Sprintf("Reservation %d was not found.", id)})
			}

			startDate, endDate := existing.StartDate, existing.EndDate
			if start != "" {
				if startDate, err = domain.ParseDate(start); err != nil {
					return err
				}
			}
			if end != "" {
				if endDate, err = domain.ParseDate(end); err != nil {
					return err
				}
			}

			res, err := ws.reservations.UpdateReservation(existing.WithDates(startDate, endDate))
			if err != nil {
				return err
			}
			if !res.IsSuccess() {
				return failure(res.Messages())
			}

			r := res.Payload()
			fmt.Fprintf(cmd.OutOrStdout(), "Reservation %d was updated (total $%s).\n", r.ID, domain.FormatMoney(r.Total))
			return nil
		},
	}

	c.Flags().StringVar(&hostEmail, "host", "", "Host email (required)")
	c.Flags().IntVar(&id, "id", 0, "Reservation id (required)")
	c.Flags().StringVar(&start, "start", "", "New start date yyyy-MM-dd")
	c.Flags().StringVar(&end, "end", "", "New end date yyyy-MM-dd")
	_ = c.MarkFlagRequired("host")
	_ = c.MarkFlagRequired("id")
	return c
}

func reservationsDeleteCmd(flags *rootFlags) *cobra.Command {
	var hostEmail string
	var id int

	c := &cobra.Command{
		Use:   "delete",
		Short: "Cancel a reservation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, cleanup, err := openWorkspace(flags.workspace, flags.debug)
			if err != nil {
				return err
			}
			defer cleanup()

			host, err := findHost(ws, hostEmail)
			if err != nil {
				return err
			}

			res, err := ws.reservations.DeleteReservationByID(domain.Reservation{ID: id, Host: &host})
			if err != nil {
				return err
			}
			if !res.IsSuccess() {
				return failure(res.Messages())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Reservation %d was cancelled.\n", id)
			return nil
		},
	}

	c.Flags().StringVar(&hostEmail, "host", "", "Host email (required)")
	c.Flags().IntVar(&id, "id", 0, "Reservation id (required)")
	_ = c.MarkFlagRequired("host")
	_ = c.MarkFlagRequired("id")
	return c
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	s, err := domain.ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := domain.ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, e, nil
}
