package usecase

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/staybook/internal/domain"
)

func validHost() domain.Host {
	return domain.Host{
		LastName:   "Dee",
		Email:      "dee@example.com",
		Phone:      "(206) 5550100",
		Address:    "1 Pine St",
		City:       "Seattle",
		State:      "WA",
		PostalCode: "98101",
	}.WithRates(decimal.RequireFromString("120.125"), decimal.NewFromInt(150))
}

func TestHostService_FindByEmail(t *testing.T) {
	svc := NewHostService(&memHosts{hosts: []domain.Host{testHost}})

	res, err := svc.FindByEmail(" eyearnes0@sfgate.com ")
	if err != nil || !res.IsSuccess() || res.Payload().ID != testHost.ID {
		t.Fatalf("expected host, got %v %v", res.Messages(), err)
	}

	res, _ = svc.FindByEmail("nobody@example.com")
	if res.IsSuccess() || !strings.Contains(res.Messages()[0], "nobody@example.com") {
		t.Fatalf("expected not found message, got %v", res.Messages())
	}

	res, _ = svc.FindByEmail("   ")
	if res.IsSuccess() || res.Messages()[0] != "Host email is required." {
		t.Fatalf("expected required message, got %v", res.Messages())
	}
}

func TestHostService_AddAssignsID(t *testing.T) {
	repo := &memHosts{}
	svc := NewHostService(repo, WithHostIDs(func() string { return "fixed-id" }))

	res, err := svc.Add(validHost())
	if err != nil || !res.IsSuccess() {
		t.Fatalf("expected add ok: %v %v", res.Messages(), err)
	}
	if res.Payload().ID != "fixed-id" || len(repo.hosts) != 1 {
		t.Fatalf("expected stored host with id, got %+v", res.Payload())
	}
	if domain.FormatMoney(res.Payload().StandardRate) != "120.12" {
		t.Fatalf("expected half-even rate 120.12, got %s", res.Payload().StandardRate)
	}

	res, _ = svc.Add(validHost())
	if res.IsSuccess() {
		t.Fatalf("expected duplicate email to be rejected")
	}
}

func TestHostService_AddDefaultIDIsUUID(t *testing.T) {
	svc := NewHostService(&memHosts{})

	res, err := svc.Add(validHost())
	if err != nil || !res.IsSuccess() {
		t.Fatalf("expected add ok: %v %v", res.Messages(), err)
	}
	if len(res.Payload().ID) != 36 {
		t.Fatalf("expected uuid id, got %q", res.Payload().ID)
	}
}

func TestHostService_AddValidates(t *testing.T) {
	svc := NewHostService(&memHosts{})

	res, err := svc.Add(domain.Host{Email: "bad"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.IsSuccess() || len(res.Messages()) < 5 {
		t.Fatalf("expected all field messages, got %v", res.Messages())
	}
}

func TestGuestService_Lifecycle(t *testing.T) {
	repo := &memGuests{guests: []domain.Guest{testGuest}}
	svc := NewGuestService(repo)

	res, err := svc.Add(domain.Guest{FirstName: "Ana", LastName: "Diaz", Email: "ana@example.com", Phone: "(555) 1234567", State: "NY"})
	if err != nil || !res.IsSuccess() {
		t.Fatalf("expected add ok: %v %v", res.Messages(), err)
	}
	ana := res.Payload()

	dup, _ := svc.Add(domain.Guest{FirstName: "Other", LastName: "Ana", Email: "ana@example.com"})
	if dup.IsSuccess() {
		t.Fatalf("expected duplicate email to fail")
	}

	ana.LastName = "Diaz-Lopez"
	edited, err := svc.Edit(ana)
	if err != nil || !edited.IsSuccess() {
		t.Fatalf("expected edit ok: %v %v", edited.Messages(), err)
	}

	clash := ana
	clash.Email = testGuest.Email
	if res, _ := svc.Edit(clash); res.IsSuccess() {
		t.Fatalf("expected edit onto another guest's email to fail")
	}

	found, _ := svc.FindByEmail("ana@example.com")
	if !found.IsSuccess() || found.Payload().LastName != "Diaz-Lopez" {
		t.Fatalf("expected edited guest, got %+v", found)
	}

	deleted, err := svc.Delete(ana)
	if err != nil || !deleted.IsSuccess() {
		t.Fatalf("expected delete ok: %v %v", deleted.Messages(), err)
	}
	if again, _ := svc.Delete(ana); again.IsSuccess() {
		t.Fatalf("expected second delete to fail")
	}
}

func TestGuestService_EditRequiresID(t *testing.T) {
	svc := NewGuestService(&memGuests{})

	res, _ := svc.Edit(domain.Guest{FirstName: "A", LastName: "B", Email: "a@b.co"})
	if res.IsSuccess() || res.Messages()[0] != "Guest id is required." {
		t.Fatalf("expected id message, got %v", res.Messages())
	}

	res, _ = svc.Edit(domain.Guest{ID: 5, FirstName: "A", LastName: "B", Email: "a@b.co"})
	if res.IsSuccess() || res.Messages()[0] != "Guest 5 was not found." {
		t.Fatalf("expected not found, got %v", res.Messages())
	}
}
