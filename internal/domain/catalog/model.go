package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Gender es el único campo enumerado de kittens y parents.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Filter corresponde a los query params ?available_only=true&category=...
// Cada tipo decide qué campos le aplican.
type Filter struct {
	AvailableOnly bool
	Category      string
}

// Record es el contrato que comparten kittens, parents y products para que el CRUD sea uno solo.
type Record[T any] interface {
	GetID() int64
	GetCreatedAt() time.Time
	// WithMeta devuelve una copia con id y created_at asignados por el servidor.
	WithMeta(id int64, createdAt time.Time) T
	Validate() error
	Matches(f Filter) bool
}

type Kitten struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	BirthDate   string    `json:"birth_date"` // YYYY-MM-DD
	Color       string    `json:"color"`
	Gender      Gender    `json:"gender" enums:"Male,Female"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

type Parent struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Gender      Gender    `json:"gender" enums:"Male,Female"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// Product: available y stock_quantity no se validan entre sí (available=true con stock 0 es válido).
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Category      string    `json:"category"`
	ImageURL      string    `json:"image_url"`
	StockQuantity int       `json:"stock_quantity"`
	Available     bool      `json:"available"`
	CreatedAt     time.Time `json:"created_at"`
}

func (k Kitten) GetID() int64  { return k.ID }
func (p Parent) GetID() int64  { return p.ID }
func (p Product) GetID() int64 { return p.ID }

func (k Kitten) GetCreatedAt() time.Time  { return k.CreatedAt }
func (p Parent) GetCreatedAt() time.Time  { return p.CreatedAt }
func (p Product) GetCreatedAt() time.Time { return p.CreatedAt }

func (k Kitten) WithMeta(id int64, createdAt time.Time) Kitten {
	k.ID, k.CreatedAt = id, createdAt
	return k
}

func (p Parent) WithMeta(id int64, createdAt time.Time) Parent {
	p.ID, p.CreatedAt = id, createdAt
	return p
}

func (p Product) WithMeta(id int64, createdAt time.Time) Product {
	p.ID, p.CreatedAt = id, createdAt
	return p
}

func (k Kitten) Validate() error {
	if strings.TrimSpace(k.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if !k.Gender.Valid() {
		return fmt.Errorf("%w: gender must be Male or Female", ErrInvalidInput)
	}
	if k.BirthDate != "" {
		if _, err := time.Parse("2006-01-02", k.BirthDate); err != nil {
			return fmt.Errorf("%w: birth_date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	return nil
}

func (p Parent) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if !p.Gender.Valid() {
		return fmt.Errorf("%w: gender must be Male or Female", ErrInvalidInput)
	}
	return nil
}

// Validate es permisiva a propósito: price y stock_quantity no se acotan.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	return nil
}

func (k Kitten) Matches(f Filter) bool {
	return !f.AvailableOnly || k.Available
}

// Parents no tienen available ni category.
func (p Parent) Matches(Filter) bool { return true }

func (p Product) Matches(f Filter) bool {
	if f.AvailableOnly && !p.Available {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	return true
}
