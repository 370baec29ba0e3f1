package board

import (
	"errors"
	"fmt"
	"sync"

	"github.com/thenoetrevino/hirepaso/internal/models"
	"github.com/thenoetrevino/hirepaso/internal/types"
)

// ErrEmptyDetail is reported when the service answers without a record
var ErrEmptyDetail = errors.New("application detail response was empty")

// DetailTicket identifies one detail fetch
type DetailTicket struct {
	ApplicationID types.ApplicationID
	seq           uint64
}

// DetailView is the overlay showing one application's full record.
// The record lives only while the overlay is open; every Open fetches again.
type DetailView struct {
	mu            sync.RWMutex
	open          bool
	loading       bool
	err           error
	applicationID types.ApplicationID
	detail        *models.ApplicationDetail
	seq           uint64
}

func NewDetailView() *DetailView {
	return &DetailView{}
}

// Open shows the overlay in its loading state and drops any previous record
func (d *DetailView) Open(id types.ApplicationID) DetailTicket {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	d.open = true
	d.loading = true
	d.err = nil
	d.applicationID = id
	d.detail = nil

	return DetailTicket{ApplicationID: id, seq: d.seq}
}

// Finish settles a fetch. A failure keeps the overlay open in its failed state.
func (d *DetailView) Finish(ticket DetailTicket, detail *models.ApplicationDetail, fetchErr error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.open || ticket.seq != d.seq {
		return ErrSuperseded
	}

	d.loading = false

	if fetchErr == nil && detail == nil {
		fetchErr = ErrEmptyDetail
	}
	if fetchErr != nil {
		d.err = fetchErr
		d.detail = nil
		return fmt.Errorf("load application %d: %w", ticket.ApplicationID, fetchErr)
	}

	cp := *detail
	d.detail = &cp
	return nil
}

// Close hides the overlay and discards the record. In-flight fetches become stale.
func (d *DetailView) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	d.open = false
	d.loading = false
	d.err = nil
	d.applicationID = 0
	d.detail = nil
}

func (d *DetailView) IsOpen() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.open
}

func (d *DetailView) Loading() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loading
}

// Failed reports whether the last fetch for the open overlay failed
func (d *DetailView) Failed() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.open && d.err != nil
}

func (d *DetailView) Err() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.err
}

func (d *DetailView) ApplicationID() types.ApplicationID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.applicationID
}

// Detail returns the loaded record, nil while loading, failed or closed
func (d *DetailView) Detail() *models.ApplicationDetail {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.detail == nil {
		return nil
	}
	cp := *d.detail
	return &cp
}
