package console

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/staybook/internal/domain"
)

// MainMenu enumerates the top-level actions in display order.
type MainMenu int

const (
	MenuExit MainMenu = iota
	MenuViewReservations
	MenuMakeReservation
	MenuEditReservation
	MenuDeleteReservation
	MenuAddGuest
)

var mainMenuTitles = []string{
	"Exit",
	"View Reservations for Host",
	"Make a Reservation",
	"Edit a Reservation",
	"Cancel a Reservation",
	"Add a Guest",
}

func (m MainMenu) Title() string {
	if m < 0 || int(m) >= len(mainMenuTitles) {
		return fmt.Sprintf("MainMenu(%d)", int(m))
	}
	return mainMenuTitles[m]
}

// MenuSelector picks one of options and returns its index. Implementations
// return io.EOF when the user abandons the session.
type MenuSelector interface {
	Select(title string, options []string) (int, error)
}

// PromptSelector renders a numbered list and reads the choice from IO.
type PromptSelector struct {
	io *IO
}

func NewPromptSelector(c *IO) *PromptSelector {
	return &PromptSelector{io: c}
}

func (p *PromptSelector) Select(title string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("select %q: no options", title)
	}
	p.io.Println()
	p.io.Println(title)
	for i, o := range options {
		p.io.Printf("%d. %s\n", i, o)
	}
	return p.io.ReadRequiredInt(fmt.Sprintf("Select [0-%d]: ", len(options)-1), 0, len(options)-1)
}

type styles struct {
	header  lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	faint   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header:  r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("42")),
		failure: r.NewStyle().Foreground(lipgloss.Color("203")),
		faint:   r.NewStyle().Faint(true),
	}
}

// View renders screens and gathers input; it never calls services.
type View struct {
	io     *IO
	menu   MenuSelector
	styles styles
}

// NewView uses a PromptSelector when menu is nil.
func NewView(c *IO, menu MenuSelector) *View {
	if menu == nil {
		menu = NewPromptSelector(c)
	}
	return &View{io: c, menu: menu, styles: newStyles(c.Writer())}
}

func (v *View) SelectMainMenuOption() (MainMenu, error) {
	i, err := v.menu.Select("Main Menu", mainMenuTitles)
	if err != nil {
		return MenuExit, err
	}
	return MainMenu(i), nil
}

func (v *View) DisplayHeader(message string) {
	v.io.Println()
	v.io.Println(v.styles.header.Render(message))
	v.io.Println(v.styles.faint.Render(strings.Repeat("=", len(message))))
}

func (v *View) DisplayStatus(success bool, messages ...string) {
	v.io.Println()
	if success {
		v.io.Println(v.styles.success.Render("[Success]"))
	} else {
		v.io.Println(v.styles.failure.Render("[Error]"))
	}
	for _, m := range messages {
		v.io.Println(m)
	}
}

func (v *View) ChooseHostEmail() (string, error) {
	return v.io.ReadRequiredEmail("Host Email: ")
}

func (v *View) ChooseGuestEmail() (string, error) {
	return v.io.ReadRequiredEmail("Guest Email: ")
}

func (v *View) DisplayReservations(host domain.Host, reservations []domain.Reservation) {
	v.DisplayHeader(host.DisplayName())
	if len(reservations) == 0 {
		v.io.Println("No reservations found.")
		return
	}
	for _, r := range reservations {
		v.io.Println(reservationLine(r))
	}
}

func reservationLine(r domain.Reservation) string {
	guest := fmt.Sprintf("guest %d", r.GuestID())
	if r.Guest != nil && r.Guest.Email != "" {
		guest = fmt.Sprintf("%s, %s - %s", r.Guest.LastName, r.Guest.FirstName, r.Guest.Email)
	}
	return fmt.Sprintf("ID: %d, %s - %s, Guest: %s, Total: $%s",
		r.ID, domain.FormatDate(r.StartDate), domain.FormatDate(r.EndDate), guest, domain.FormatMoney(r.Total))
}

// ChooseReservation returns nil when the entered id is not in reservations.
func (v *View) ChooseReservation(reservations []domain.Reservation) (*domain.Reservation, error) {
	id, err := v.io.ReadRequiredInt("Reservation ID: ", 1, math.MaxInt)
	if err != nil {
		return nil, err
	}
	for i := range reservations {
		if reservations[i].ID == id {
			r := reservations[i]
			return &r, nil
		}
	}
	v.DisplayStatus(false, fmt.Sprintf("Reservation %d was not found.", id))
	return nil, nil
}

func (v *View) ChooseDates() (time.Time, time.Time, error) {
	start, err := v.io.ReadRequiredDate("Start (yyyy-MM-dd): ", time.Time{})
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := v.io.ReadRequiredDate("End (yyyy-MM-dd): ", start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// EditDates keeps the current value for any blank answer.
func (v *View) EditDates(r domain.Reservation) (domain.Reservation, error) {
	v.DisplayHeader(fmt.Sprintf("Editing Reservation %d", r.ID))
	start, err := v.io.ReadDate(fmt.Sprintf("Start (%s): ", domain.FormatDate(r.StartDate)), r.StartDate)
	if err != nil {
		return r, err
	}
	end, err := v.io.ReadDate(fmt.Sprintf("End (%s): ", domain.FormatDate(r.EndDate)), r.EndDate)
	if err != nil {
		return r, err
	}
	return r.WithDates(start, end), nil
}

// ConfirmSummary shows the priced reservation and asks for confirmation.
func (v *View) ConfirmSummary(r domain.Reservation) (bool, error) {
	v.DisplayHeader("Summary")
	v.io.Printf("Start: %s\n", domain.FormatDate(r.StartDate))
	v.io.Printf("End: %s\n", domain.FormatDate(r.EndDate))
	v.io.Printf("Total: $%s\n", domain.FormatMoney(r.Total))
	return v.io.ReadBool("Is this okay? [y/n]: ")
}

func (v *View) ConfirmDelete(r domain.Reservation) (bool, error) {
	v.io.Println(reservationLine(r))
	return v.io.ReadBool("Cancel this reservation? [y/n]: ")
}

func (v *View) MakeGuest() (domain.Guest, error) {
	var g domain.Guest
	var err error

	if g.FirstName, err = v.io.ReadRequiredString("First Name: "); err != nil {
		return g, err
	}
	if g.LastName, err = v.io.ReadRequiredString("Last Name: "); err != nil {
		return g, err
	}
	if g.Email, err = v.io.ReadRequiredEmail("Email: "); err != nil {
		return g, err
	}
	if g.Phone, err = v.io.ReadPhone("Phone (optional): ", ""); err != nil {
		return g, err
	}
	state, err := v.io.ReadString("State (optional): ")
	if err != nil {
		return g, err
	}
	g.State = strings.ToUpper(state)
	return g, nil
}
