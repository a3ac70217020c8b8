package service

import (
	"context"
	"testing"

	"github.com/beautybook/marketplace/internal/core/domain"
)

func TestSessionStore_IdentityRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(newStubKV())

	got, err := store.Get(ctx, "s1")
	if err != nil || got != nil {
		t.Fatalf("expected anonymous session, got %+v, %v", got, err)
	}

	want := &domain.Identity{ID: 7, Email: "a@b.co", DisplayName: "A", Role: domain.RoleClient, Profile: domain.Profile{Location: "Nairobi"}}
	if err := store.Set(ctx, "s1", want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err = store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != 7 || got.Role != domain.RoleClient || got.Location != "Nairobi" {
		t.Fatalf("unexpected identity: %+v", got)
	}

	if other, _ := store.Get(ctx, "s2"); other != nil {
		t.Fatalf("sessions must not share identities")
	}
}

func TestSessionStore_ClearKeepsContinuation(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(newStubKV())

	_ = store.Set(ctx, "s1", &domain.Identity{ID: 1, Role: domain.RoleClient})
	_ = store.SetRedirectTarget(ctx, "s1", "/providers/1")
	_ = store.SetPendingBooking(ctx, "s1", domain.BookingDraft{ProviderID: 1, ServiceID: 1})

	if err := store.Clear(ctx, "s1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got, _ := store.Get(ctx, "s1"); got != nil {
		t.Fatalf("expected identity cleared")
	}
	if path, ok, _ := store.TakeRedirectTarget(ctx, "s1"); !ok || path != "/providers/1" {
		t.Fatalf("redirect target should survive Clear, got %q %v", path, ok)
	}
	if draft, _ := store.TakePendingBooking(ctx, "s1"); draft == nil {
		t.Fatalf("pending booking should survive Clear")
	}
}

func TestSessionStore_ConsumeOnRead(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(newStubKV())

	draft := domain.BookingDraft{ProviderID: 1, ServiceID: 2, Date: "2024-06-01", Time: "10:00", PaymentMethod: domain.PaymentMoney}
	_ = store.SetPendingBooking(ctx, "s1", draft)
	_ = store.SetRedirectTarget(ctx, "s1", "/providers/1")

	peeked, err := store.PeekPendingBooking(ctx, "s1")
	if err != nil || peeked == nil || *peeked != draft {
		t.Fatalf("peek: %+v %v", peeked, err)
	}

	first, err := store.TakePendingBooking(ctx, "s1")
	if err != nil || first == nil || *first != draft {
		t.Fatalf("first take: %+v %v", first, err)
	}
	second, err := store.TakePendingBooking(ctx, "s1")
	if err != nil || second != nil {
		t.Fatalf("second take must be empty, got %+v %v", second, err)
	}

	if _, ok, _ := store.TakeRedirectTarget(ctx, "s1"); !ok {
		t.Fatalf("expected redirect target")
	}
	if _, ok, _ := store.TakeRedirectTarget(ctx, "s1"); ok {
		t.Fatalf("redirect target must be consumed")
	}
}

func TestSessionStore_PendingBookingLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore(newStubKV())

	_ = store.SetPendingBooking(ctx, "s1", domain.BookingDraft{ProviderID: 1, ServiceID: 1})
	_ = store.SetPendingBooking(ctx, "s1", domain.BookingDraft{ProviderID: 2, ServiceID: 3})

	got, _ := store.TakePendingBooking(ctx, "s1")
	if got == nil || got.ProviderID != 2 || got.ServiceID != 3 {
		t.Fatalf("expected newest draft, got %+v", got)
	}
}

func TestSessionStore_UsesNamespacedKeys(t *testing.T) {
	ctx := context.Background()
	kv := newStubKV()
	store := NewSessionStore(kv)

	_ = store.SetRedirectTarget(ctx, "abc", "/providers/2")
	_ = store.SetProviderServices(ctx, "abc", []domain.OfferedService{{Name: "Braids", Price: 100, Duration: 30}})

	data := kv.snapshot()
	if data["session:abc:redirectAfterLogin"] != "/providers/2" {
		t.Fatalf("redirect stored under unexpected key: %v", data)
	}
	if _, ok := data["session:abc:providerServices"]; !ok {
		t.Fatalf("provider services stored under unexpected key: %v", data)
	}
}
