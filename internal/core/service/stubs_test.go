package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/beautybook/marketplace/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory key-value store
// ---------------------------------------------------------------------------

type stubKV struct {
	mu     sync.Mutex
	data   map[string]string
	setErr error
}

func newStubKV() *stubKV {
	return &stubKV{data: make(map[string]string)}
}

func (kv *stubKV) Get(_ context.Context, key string) (string, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.data[key]
	return v, ok, nil
}

func (kv *stubKV) Set(_ context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if kv.setErr != nil {
		return kv.setErr
	}
	kv.data[key] = value
	return nil
}

func (kv *stubKV) Delete(_ context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.data, key)
	return nil
}

func (kv *stubKV) Take(_ context.Context, key string) (string, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.data[key]
	delete(kv.data, key)
	return v, ok, nil
}

func (kv *stubKV) Ping(context.Context) error { return nil }

// snapshot copies the raw contents so tests can assert nothing changed.
func (kv *stubKV) snapshot() map[string]string {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	out := make(map[string]string, len(kv.data))
	for k, v := range kv.data {
		out[k] = v
	}
	return out
}

// ---------------------------------------------------------------------------
// Identity directory
// ---------------------------------------------------------------------------

type stubDirectory struct {
	accounts []domain.Account
	findErr  error
}

func newStubDirectory() *stubDirectory {
	return &stubDirectory{accounts: []domain.Account{
		{Identity: domain.Identity{ID: 1, Email: "client@example.com", DisplayName: "John Client", Role: domain.RoleClient}},
		{Identity: domain.Identity{ID: 2, Email: "provider@example.com", DisplayName: "Jane Provider", Role: domain.RoleProvider, Profile: domain.Profile{Location: "New York"}}},
		{Identity: domain.Identity{ID: 3, Email: "admin@example.com", DisplayName: "Admin User", Role: domain.RoleAdmin}},
	}}
}

func (d *stubDirectory) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	if d.findErr != nil {
		return nil, d.findErr
	}
	for _, a := range d.accounts {
		if a.Email == email {
			clone := a
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (d *stubDirectory) Register(_ context.Context, account domain.Account) (*domain.Account, error) {
	for _, a := range d.accounts {
		if a.Email == account.Email {
			return nil, domain.ErrEmailAlreadyRegistered
		}
	}
	account.ID = len(d.accounts) + 1
	d.accounts = append(d.accounts, account)
	return &account, nil
}

func (d *stubDirectory) Update(_ context.Context, identity domain.Identity) error {
	for i := range d.accounts {
		if d.accounts[i].ID == identity.ID {
			d.accounts[i].DisplayName = identity.DisplayName
			d.accounts[i].Profile = identity.Profile
			return nil
		}
	}
	return domain.ErrAccountNotFound
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

type stubCatalog struct {
	providers []domain.Provider
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{providers: []domain.Provider{
		{
			ID: 1, Name: "Jane Smith", Location: "Nairobi, Westlands", Rating: 4.8,
			Services: []domain.Service{
				{ID: 1, Name: "Manicure", Price: 1500, PointsCost: 50, Duration: 60},
				{ID: 2, Name: "Pedicure", Price: 2000, PointsCost: 75, Duration: 90},
				{ID: 3, Name: "Nail Art", Price: 2500, PointsCost: 100, Duration: 120},
			},
		},
		{
			ID: 2, Name: "Sarah Johnson", Location: "Nairobi, Kilimani", Rating: 4.9,
			Services: []domain.Service{
				{ID: 1, Name: "Manicure", Price: 1800, PointsCost: 60, Duration: 60},
				{ID: 2, Name: "Pedicure", Price: 2200, PointsCost: 80, Duration: 90},
				{ID: 3, Name: "Gel Polish", Price: 3000, PointsCost: 120, Duration: 90},
			},
		},
	}}
}

func (c *stubCatalog) Providers(context.Context) ([]domain.Provider, error) {
	return append([]domain.Provider(nil), c.providers...), nil
}

func (c *stubCatalog) Provider(_ context.Context, id int) (*domain.Provider, error) {
	for _, p := range c.providers {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, domain.ErrProviderNotFound
}

// ---------------------------------------------------------------------------
// Clock and random source
// ---------------------------------------------------------------------------

// fakeClock fires every timer immediately and records the requested delays.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	delays []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.delays = append(c.delays, d)
	c.now = c.now.Add(d)
	now := c.now
	c.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- now
	return ch
}

// blockingClock never fires, so only context cancellation ends a wait.
type blockingClock struct{ fakeClock }

func (c *blockingClock) After(time.Duration) <-chan time.Time { return make(chan time.Time) }

// scriptedRandom replays values in order and then repeats the last one.
type scriptedRandom struct {
	mu     sync.Mutex
	values []float64
}

func (r *scriptedRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.values[0]
	if len(r.values) > 1 {
		r.values = r.values[1:]
	}
	return v
}

// ---------------------------------------------------------------------------
// Payment observer
// ---------------------------------------------------------------------------

type recordingObserver struct {
	mu       sync.Mutex
	receipts []domain.PaymentReceipt
	err      error
}

func (o *recordingObserver) PaymentSucceeded(_ context.Context, _ string, receipt domain.PaymentReceipt) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.receipts = append(o.receipts, receipt)
	return o.err
}

var errBoom = errors.New("boom")
