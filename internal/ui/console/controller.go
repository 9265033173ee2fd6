package console

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/staybook/internal/domain"
)

type ReservationService interface {
	FindByHost(hostID string) ([]domain.Reservation, error)
	FindByHostAndGuest(hostID string, guestID int) ([]domain.Reservation, error)
	FindByReservationID(hostID string, reservationID int) (*domain.Reservation, error)
	IsReservationAvailable(r domain.Reservation) (domain.Result[domain.Reservation], error)
	IsUpdateAvailable(r domain.Reservation) (domain.Result[domain.Reservation], error)
	AddReservation(r domain.Reservation) (domain.Result[domain.Reservation], error)
	UpdateReservation(r domain.Reservation) (domain.Result[domain.Reservation], error)
	DeleteReservationByID(r domain.Reservation) (domain.Result[domain.Reservation], error)
}

type HostService interface {
	FindByEmail(email string) (domain.Result[domain.Host], error)
}

type GuestService interface {
	FindByEmail(email string) (domain.Result[domain.Guest], error)
	Add(g domain.Guest) (domain.Result[domain.Guest], error)
}

// Controller runs the main menu loop. A data-access fault abandons the
// current action and returns to the menu; end of input ends the session.
type Controller struct {
	view         *View
	reservations ReservationService
	hosts        HostService
	guests       GuestService
	log          *slog.Logger
}

func NewController(view *View, rs ReservationService, hs HostService, gs GuestService, log *slog.Logger) *Controller {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Controller{view: view, reservations: rs, hosts: hs, guests: gs, log: log}
}

func (c *Controller) Run() error {
	c.view.DisplayHeader("Welcome to staybook")
	defer c.view.DisplayHeader("Goodbye!")

	for {
		option, err := c.view.SelectMainMenuOption()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if option == MenuExit {
			return nil
		}

		if err := c.dispatch(option); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			c.log.Error("console.action_failed", "action", option.Title(), "err", err)
			if !domain.IsKind(err, domain.KindDataAccess) && !errors.Is(err, domain.ErrDataAccess) {
				return err
			}
			c.view.DisplayStatus(false, userMessage(err))
		}
	}
}

func (c *Controller) dispatch(option MainMenu) error {
	c.view.DisplayHeader(option.Title())
	switch option {
	case MenuViewReservations:
		return c.viewReservations()
	case MenuMakeReservation:
		return c.makeReservation()
	case MenuEditReservation:
		return c.editReservation()
	case MenuDeleteReservation:
		return c.deleteReservation()
	case MenuAddGuest:
		return c.addGuest()
	}
	return fmt.Errorf("unknown menu option %d", int(option))
}

func (c *Controller) viewReservations() error {
	host, err := c.chooseHost()
	if err != nil || host == nil {
		return err
	}
	all, err := c.reservations.FindByHost(host.ID)
	if err != nil {
		return err
	}
	c.view.DisplayReservations(*host, all)
	return nil
}

func (c *Controller) makeReservation() error {
	host, err := c.chooseHost()
	if err != nil || host == nil {
		return err
	}
	guest, err := c.chooseGuest()
	if err != nil || guest == nil {
		return err
	}

	existing, err := c.reservations.FindByHost(host.ID)
	if err != nil {
		return err
	}
	c.view.DisplayReservations(*host, existing)

	start, end, err := c.view.ChooseDates()
	if err != nil {
		return err
	}

	r := domain.NewReservation(host, guest, start, end)
	checked, err := c.reservations.IsReservationAvailable(r)
	if err != nil {
		return err
	}
	if !checked.IsSuccess() {
		c.view.DisplayStatus(false, checked.Messages()...)
		return nil
	}

	ok, err := c.view.ConfirmSummary(checked.Payload())
	if err != nil || !ok {
		return err
	}

	saved, err := c.reservations.AddReservation(r)
	if err != nil {
		return err
	}
	if !saved.IsSuccess() {
		c.view.DisplayStatus(false, saved.Messages()...)
		return nil
	}
	c.view.DisplayStatus(true, fmt.Sprintf("Reservation %d was created.", saved.Payload().ID))
	return nil
}

func (c *Controller) editReservation() error {
	r, err := c.chooseReservation()
	if err != nil || r == nil {
		return err
	}

	edited, err := c.view.EditDates(*r)
	if err != nil {
		return err
	}

	checked, err := c.reservations.IsUpdateAvailable(edited)
	if err != nil {
		return err
	}
	if !checked.IsSuccess() {
		c.view.DisplayStatus(false, checked.Messages()...)
		return nil
	}

	ok, err := c.view.ConfirmSummary(checked.Payload())
	if err != nil || !ok {
		return err
	}

	updated, err := c.reservations.UpdateReservation(edited)
	if err != nil {
		return err
	}
	if !updated.IsSuccess() {
		c.view.DisplayStatus(false, updated.Messages()...)
		return nil
	}
	c.view.DisplayStatus(true, fmt.Sprintf("Reservation %d was updated.", updated.Payload().ID))
	return nil
}

func (c *Controller) deleteReservation() error {
	r, err := c.chooseReservation()
	if err != nil || r == nil {
		return err
	}

	ok, err := c.view.ConfirmDelete(*r)
	if err != nil || !ok {
		return err
	}

	deleted, err := c.reservations.DeleteReservationByID(*r)
	if err != nil {
		return err
	}
	if !deleted.IsSuccess() {
		c.view.DisplayStatus(false, deleted.Messages()...)
		return nil
	}
	c.view.DisplayStatus(true, fmt.Sprintf("Reservation %d was cancelled.", r.ID))
	return nil
}

func (c *Controller) addGuest() error {
	g, err := c.view.MakeGuest()
	if err != nil {
		return err
	}

	added, err := c.guests.Add(g)
	if err != nil {
		return err
	}
	if !added.IsSuccess() {
		c.view.DisplayStatus(false, added.Messages()...)
		return nil
	}
	c.view.DisplayStatus(true, fmt.Sprintf("Guest %d was added.", added.Payload().ID))
	return nil
}

// chooseReservation walks host, guest and reservation selection. A nil
// reservation means the user was already told why.
func (c *Controller) chooseReservation() (*domain.Reservation, error) {
	host, err := c.chooseHost()
	if err != nil || host == nil {
		return nil, err
	}
	guest, err := c.chooseGuest()
	if err != nil || guest == nil {
		return nil, err
	}

	list, err := c.reservations.FindByHostAndGuest(host.ID, guest.ID)
	if err != nil {
		return nil, err
	}
	c.view.DisplayReservations(*host, list)
	if len(list) == 0 {
		return nil, nil
	}

	picked, err := c.view.ChooseReservation(list)
	if err != nil || picked == nil {
		return nil, err
	}
	return c.reservations.FindByReservationID(host.ID, picked.ID)
}

func (c *Controller) chooseHost() (*domain.Host, error) {
	email, err := c.view.ChooseHostEmail()
	if err != nil {
		return nil, err
	}
	res, err := c.hosts.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		c.view.DisplayStatus(false, res.Messages()...)
		return nil, nil
	}
	h := res.Payload()
	return &h, nil
}

func (c *Controller) chooseGuest() (*domain.Guest, error) {
	email, err := c.view.ChooseGuestEmail()
	if err != nil {
		return nil, err
	}
	res, err := c.guests.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if !res.IsSuccess() {
		c.view.DisplayStatus(false, res.Messages()...)
		return nil, nil
	}
	g := res.Payload()
	return &g, nil
}
