package repository

import (
	"context"
	"sync"

	"portfolio-site/internal/domain"
)

// ContactsRepo keeps contact submissions for the lifetime of the process.
type ContactsRepo struct {
	mu       sync.RWMutex
	contacts []domain.ContactSubmission
}

func NewContactsRepo() *ContactsRepo {
	return &ContactsRepo{}
}

func (r *ContactsRepo) Save(_ context.Context, c domain.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts = append(r.contacts, c)
	return nil
}

func (r *ContactsRepo) List(_ context.Context) ([]domain.ContactSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.ContactSubmission{}, r.contacts...), nil
}

// Delete removes the record with the given id. Unknown ids are not an error.
func (r *ContactsRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.contacts[:0]
	for _, c := range r.contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.contacts = kept
	return nil
}

func (r *ContactsRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contacts)
}

func (r *ContactsRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts = nil
}
