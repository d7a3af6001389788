// Package notify guarda los mensajes efímeros de la UI: una línea de estado
// que se reemplaza y se limpia sola, y toasts apilados que se desvanecen.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindStatus Kind = "status"
	KindToast  Kind = "toast"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

const (
	DefaultStatusTTL = 2800 * time.Millisecond
	DefaultToastFade = 1800 * time.Millisecond
	DefaultToastTTL  = 2200 * time.Millisecond
)

type Notice struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Level     Level     `json:"level"`
	Text      string    `json:"text"`
	PostedAt  time.Time `json:"posted_at"`
	FadeAt    time.Time `json:"fade_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Fading    bool      `json:"fading"`
}

type Options struct {
	StatusTTL time.Duration
	ToastFade time.Duration
	ToastTTL  time.Duration
}

func (o Options) withDefaults() Options {
	if o.StatusTTL <= 0 {
		o.StatusTTL = DefaultStatusTTL
	}
	if o.ToastTTL <= 0 {
		o.ToastTTL = DefaultToastTTL
	}
	if o.ToastFade <= 0 || o.ToastFade > o.ToastTTL {
		o.ToastFade = o.ToastTTL
		if DefaultToastFade < o.ToastTTL {
			o.ToastFade = DefaultToastFade
		}
	}
	return o
}

// Center no usa timers: la expiración se evalúa contra el reloj en cada lectura.
type Center struct {
	mu     sync.Mutex
	opts   Options
	now    func() time.Time
	status *Notice
	toasts []Notice
}

func New(opts Options) *Center {
	return &Center{
		opts: opts.withDefaults(),
		now:  time.Now,
	}
}

// Status reemplaza la línea de estado actual.
func (c *Center) Status(level Level, text string) Notice {
	if c == nil {
		return Notice{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := Notice{
		ID:        uuid.NewString(),
		Kind:      KindStatus,
		Level:     level,
		Text:      text,
		PostedAt:  now,
		FadeAt:    now.Add(c.opts.StatusTTL),
		ExpiresAt: now.Add(c.opts.StatusTTL),
	}
	c.status = &n
	return n
}

// Toast agrega un toast flotante.
func (c *Center) Toast(level Level, text string) Notice {
	if c == nil {
		return Notice{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	n := Notice{
		ID:        uuid.NewString(),
		Kind:      KindToast,
		Level:     level,
		Text:      text,
		PostedAt:  now,
		FadeAt:    now.Add(c.opts.ToastFade),
		ExpiresAt: now.Add(c.opts.ToastTTL),
	}
	c.toasts = append(c.toasts, n)
	return n
}

// Active devuelve la línea de estado (si sigue viva) seguida de los toasts
// vigentes, en orden de publicación. Purga lo expirado.
func (c *Center) Active() []Notice {
	if c == nil {
		return []Notice{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	out := make([]Notice, 0, len(c.toasts)+1)

	if c.status != nil {
		if now.Before(c.status.ExpiresAt) {
			out = append(out, *c.status)
		} else {
			c.status = nil
		}
	}

	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if !now.Before(t.ExpiresAt) {
			continue
		}
		kept = append(kept, t)
		t.Fading = !now.Before(t.FadeAt)
		out = append(out, t)
	}
	c.toasts = kept

	return out
}
