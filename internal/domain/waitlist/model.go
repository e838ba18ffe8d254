package waitlist

import "time"

// Entry es una inscripción pública a la lista de espera. No hay update: solo alta y baja.
type Entry struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	Preferences string
	CreatedAt   time.Time
}
