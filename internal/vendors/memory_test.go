package vendors

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/guregu/null/v5"
)

// memoryRepository is an in-memory Repository with the same owner scoping as
// the Postgres implementation.
type memoryRepository struct {
	mu      sync.Mutex
	vendors map[string]Vendor
	now     time.Time
	err     error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{vendors: map[string]Vendor{}, now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memoryRepository) tick() time.Time {
	m.now = m.now.Add(time.Minute)
	return m.now
}

func (m *memoryRepository) List(_ context.Context, userID string) ([]Vendor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []Vendor{}
	for _, v := range m.vendors {
		if v.UserID == userID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryRepository) Get(_ context.Context, id, userID string) (Vendor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Vendor{}, m.err
	}
	v, ok := m.vendors[id]
	if !ok || v.UserID != userID {
		return Vendor{}, ErrNotFound
	}
	return v, nil
}

func (m *memoryRepository) Create(_ context.Context, v Vendor) (Vendor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Vendor{}, m.err
	}
	now := m.tick()
	v.CreatedAt, v.UpdatedAt = now, now
	m.vendors[v.ID] = v
	return v, nil
}

func (m *memoryRepository) Update(_ context.Context, id, userID string, in UpdateInput) (Vendor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return Vendor{}, m.err
	}
	v, ok := m.vendors[id]
	if !ok || v.UserID != userID {
		return Vendor{}, ErrNotFound
	}
	apply := func(dst *string, src null.String) {
		if src.Valid {
			*dst = src.String
		}
	}
	apply(&v.VendorName, in.VendorName)
	apply(&v.BankAccountNo, in.BankAccountNo)
	apply(&v.BankName, in.BankName)
	apply(&v.AddressLine1, in.AddressLine1)
	apply(&v.City, in.City)
	apply(&v.Country, in.Country)
	apply(&v.ZipCode, in.ZipCode)
	if in.AddressLine2.Valid {
		v.AddressLine2 = null.NewString(in.AddressLine2.String, in.AddressLine2.String != "")
	}
	v.UpdatedAt = m.tick()
	m.vendors[id] = v
	return v, nil
}

func (m *memoryRepository) Delete(_ context.Context, id, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	v, ok := m.vendors[id]
	if !ok || v.UserID != userID {
		return ErrNotFound
	}
	delete(m.vendors, id)
	return nil
}

func (m *memoryRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.vendors)
}

func validInput() CreateInput {
	return CreateInput{
		VendorName:    "Acme",
		BankAccountNo: "123",
		BankName:      "B",
		AddressLine1:  "1 St",
		City:          "X",
		Country:       "Y",
		ZipCode:       "000",
	}
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("v%02d", n)
	}
	return svc
}
