// Package debounce implementa una tarea diferida cancelable: cada Trigger
// reprograma la ejecución y descarta la anterior si todavía no corrió.
package debounce

import (
	"sync"
	"time"
)

type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending bool
	stopped bool
}

func New(delay time.Duration) *Debouncer {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer{delay: delay}
}

// Trigger programa fn para dentro de delay. Si había una llamada pendiente,
// se cancela. Devuelve false si el debouncer ya fue detenido.
func (d *Debouncer) Trigger(fn func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	gen := d.gen
	d.pending = true
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		// Un timer viejo puede dispararse aunque Stop() haya devuelto false.
		if d.gen != gen || d.stopped {
			d.mu.Unlock()
			return
		}
		d.pending = false
		d.timer = nil
		d.mu.Unlock()

		fn()
	})
	return true
}

// Cancel descarta la llamada pendiente, si existe.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelLocked()
}

// Stop cancela lo pendiente y rechaza futuros Trigger.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer) cancelLocked() bool {
	if !d.pending {
		return false
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.pending = false
	return true
}
