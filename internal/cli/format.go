package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aalvaropc/staybook/internal/domain"
)

type reservationView struct {
	ID         int    `json:"id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Nights     int    `json:"nights"`
	GuestID    int    `json:"guest_id"`
	GuestName  string `json:"guest_name,omitempty"`
	GuestEmail string `json:"guest_email,omitempty"`
	Total      string `json:"total"`
}

type hostView struct {
	ID           string `json:"id"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	City         string `json:"city"`
	State        string `json:"state"`
	StandardRate string `json:"standard_rate"`
	WeekendRate  string `json:"weekend_rate"`
}

type guestView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	State string `json:"state,omitempty"`
}

func toReservationView(r domain.Reservation) reservationView {
	v := reservationView{
		ID:        r.ID,
		StartDate: domain.FormatDate(r.StartDate),
		EndDate:   domain.FormatDate(r.EndDate),
		Nights:    r.Nights(),
		GuestID:   r.GuestID(),
		Total:     domain.FormatMoney(r.Total),
	}
	if r.Guest != nil {
		v.GuestName = r.Guest.DisplayName()
		v.GuestEmail = r.Guest.Email
	}
	return v
}

func printReservations(w io.Writer, host domain.Host, list []domain.Reservation, format string) error {
	views := make([]reservationView, 0, len(list))
	for _, r := range list {
		views = append(views, toReservationView(r))
	}

	switch format {
	case "json":
		return encodeJSON(w, map[string]any{
			"host":         host.Email,
			"host_id":      host.ID,
			"reservations": views,
		})
	case "pretty", "":
		fmt.Fprintf(w, "Host: %s (%s)\n\n", host.DisplayName(), host.Email)
		if len(views) == 0 {
			fmt.Fprintln(w, "(no reservations found)")
			return nil
		}
		for _, v := range views {
			guest := fmt.Sprintf("guest %d", v.GuestID)
			if v.GuestEmail != "" {
				guest = fmt.Sprintf("%s <%s>", v.GuestName, v.GuestEmail)
			}
			fmt.Fprintf(w, "- #%d  %s → %s  (%d nights)  %s  $%s\n", v.ID, v.StartDate, v.EndDate, v.Nights, guest, v.Total)
		}
		return nil
	default:
		return unsupportedFormat(format)
	}
}

func printHosts(w io.Writer, hosts []domain.Host, format string) error {
	views := make([]hostView, 0, len(hosts))
	for _, h := range hosts {
		views = append(views, hostView{
			ID:           h.ID,
			LastName:     h.LastName,
			Email:        h.Email,
			City:         h.City,
			State:        h.State,
			StandardRate: domain.FormatMoney(h.StandardRate),
			WeekendRate:  domain.FormatMoney(h.WeekendRate),
		})
	}

	switch format {
	case "json":
		return encodeJSON(w, views)
	case "pretty", "":
		if len(views) == 0 {
			fmt.Fprintln(w, "(no hosts found)")
			return nil
		}
		for _, v := range views {
			fmt.Fprintf(w, "- %s  %s, %s %s  $%s / $%s  (%s)\n", v.Email, v.LastName, v.City, v.State, v.StandardRate, v.WeekendRate, v.ID)
		}
		return nil
	default:
		return unsupportedFormat(format)
	}
}

func printGuests(w io.Writer, guests []domain.Guest, format string) error {
	views := make([]guestView, 0, len(guests))
	for _, g := range guests {
		views = append(views, guestView{ID: g.ID, Name: g.DisplayName(), Email: g.Email, Phone: g.Phone, State: g.State})
	}

	switch format {
	case "json":
		return encodeJSON(w, views)
	case "pretty", "":
		if len(views) == 0 {
			fmt.Fprintln(w, "(no guests found)")
			return nil
		}
		for _, v := range views {
			fmt.Fprintf(w, "- #%d  %s <%s>\n", v.ID, v.Name, v.Email)
		}
		return nil
	default:
		return unsupportedFormat(format)
	}
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func unsupportedFormat(format string) error {
	return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
}
