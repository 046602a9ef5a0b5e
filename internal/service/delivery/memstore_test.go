package delivery

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"parcel-marketplace/internal/domain"
	"parcel-marketplace/internal/ports/deliverytx"
)

// memStore is an in-memory deliveryRepository. Transactions are serialized
// and staged on a copy, so conditional updates behave like the SQL store.
type memStore struct {
	mu     sync.Mutex
	rows   map[string]domain.Delivery
	events []domain.DeliveryEvent

	// onGet runs after a row is read and before it is returned.
	onGet func()
}

func newMemStore(ds ...domain.Delivery) *memStore {
	m := &memStore{rows: make(map[string]domain.Delivery)}
	for _, d := range ds {
		m.rows[d.ID] = d
	}
	return m
}

func (m *memStore) Insert(_ context.Context, d *domain.Delivery) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[d.ID] = *d
	return nil
}

func (m *memStore) Get(_ context.Context, id string) (*domain.Delivery, error) {
	m.mu.Lock()
	d, ok := m.rows[id]
	m.mu.Unlock()
	if !ok {
		return nil, nil
	}
	if m.onGet != nil {
		m.onGet()
	}
	return &d, nil
}

func (m *memStore) ListByParticipant(_ context.Context, f domain.DeliveryFilter, limit int) ([]domain.Delivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Delivery
	for _, d := range m.rows {
		switch f.Role {
		case domain.ParticipantSender:
			if d.SenderID != f.UserID {
				continue
			}
		case domain.ParticipantCarrier:
			if d.CarrierID != f.UserID {
				continue
			}
		default:
			if !d.IsParticipant(f.UserID) {
				continue
			}
		}
		if f.Status != nil && d.Status != *f.Status {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) ListEvents(_ context.Context, id string) ([]domain.DeliveryEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.DeliveryEvent
	for _, e := range m.events {
		if e.DeliveryID == id {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memStore) WithTx(_ context.Context, fn func(tx deliverytx.Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{rows: make(map[string]domain.Delivery, len(m.rows))}
	for k, v := range m.rows {
		tx.rows[k] = v
	}
	if err := fn(tx); err != nil {
		return err
	}
	m.rows = tx.rows
	m.events = append(m.events, tx.events...)
	return nil
}

func (m *memStore) row(id string) domain.Delivery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[id]
}

func (m *memStore) eventCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}

type memTx struct {
	rows   map[string]domain.Delivery
	events []domain.DeliveryEvent
}

func (t *memTx) MarkMatched(_ context.Context, id, carrierID string, otp domain.OTPDigests, at time.Time) (bool, error) {
	d, ok := t.rows[id]
	if !ok || d.Status != domain.StatusPosted {
		return false, nil
	}
	d.Status = domain.StatusMatched
	d.CarrierID = carrierID
	d.OTP = otp
	d.MatchedAt = &at
	t.rows[id] = d
	return true, nil
}

func (t *memTx) ConfirmCheckpoint(_ context.Context, id string, cp domain.Checkpoint, digest string, at time.Time) (bool, error) {
	d, ok := t.rows[id]
	if !ok || d.Status != cp.From() || d.OTP.Digest(cp) != digest {
		return false, nil
	}
	d.Status = cp.To()
	if cp == domain.CheckpointPickup {
		d.PickedUpAt = &at
	} else {
		d.DeliveredAt = &at
	}
	t.rows[id] = d
	return true, nil
}

func (t *memTx) MarkCancelled(_ context.Context, id string, from domain.DeliveryStatus, at time.Time) (bool, error) {
	d, ok := t.rows[id]
	if !ok || d.Status != from {
		return false, nil
	}
	d.Status = domain.StatusCancelled
	d.CarrierID = ""
	d.OTP = domain.OTPDigests{}
	d.CancelledAt = &at
	t.rows[id] = d
	return true, nil
}

func (t *memTx) AppendEvent(_ context.Context, ev domain.DeliveryEvent) error {
	t.events = append(t.events, ev)
	return nil
}

// barrier releases every waiter once n of them have arrived; later arrivals
// pass straight through.
type barrier struct {
	n  int32
	ch chan struct{}
}

func newBarrier(n int) *barrier {
	return &barrier{n: int32(n), ch: make(chan struct{})}
}

func (b *barrier) arrive() {
	if atomic.AddInt32(&b.n, -1) == 0 {
		close(b.ch)
	}
	<-b.ch
}
