// Package seed carga el contenido inicial del sitio desde seed.yaml (embebido).
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"cattery-cms/internal/domain/admin"
	"cattery-cms/internal/domain/catalog"
	"cattery-cms/internal/domain/content"
	"cattery-cms/internal/platform/logger"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type File struct {
	Pages struct {
		Home        content.Home        `yaml:"home"`
		Care        content.Care        `yaml:"care"`
		About       content.About       `yaml:"about"`
		SocialMedia content.SocialMedia `yaml:"social_media"`
	} `yaml:"pages"`
	Kittens []kittenRow `yaml:"kittens"`
	Parents []parentRow `yaml:"parents"`
}

type kittenRow struct {
	Name        string  `yaml:"name"`
	BirthDate   string  `yaml:"birth_date"`
	Color       string  `yaml:"color"`
	Gender      string  `yaml:"gender"`
	Price       float64 `yaml:"price"`
	Description string  `yaml:"description"`
	ImageURL    string  `yaml:"image_url"`
	Available   bool    `yaml:"available"`
}

type parentRow struct {
	Name        string `yaml:"name"`
	Gender      string `yaml:"gender"`
	Color       string `yaml:"color"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"image_url"`
}

// Parse decodifica un archivo de seed con el mismo formato que seed.yaml.
func Parse(raw []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("seed: %w", err)
	}
	return f, nil
}

func Default() (File, error) {
	return Parse(defaultSeed)
}

func (f File) KittenRecords() []catalog.Kitten {
	out := make([]catalog.Kitten, 0, len(f.Kittens))
	for _, k := range f.Kittens {
		out = append(out, catalog.Kitten{
			Name:        k.Name,
			BirthDate:   k.BirthDate,
			Color:       k.Color,
			Gender:      catalog.Gender(k.Gender),
			Price:       k.Price,
			Description: k.Description,
			ImageURL:    k.ImageURL,
			Available:   k.Available,
		})
	}
	return out
}

func (f File) ParentRecords() []catalog.Parent {
	out := make([]catalog.Parent, 0, len(f.Parents))
	for _, p := range f.Parents {
		out = append(out, catalog.Parent{
			Name:        p.Name,
			Gender:      catalog.Gender(p.Gender),
			Color:       p.Color,
			Description: p.Description,
			ImageURL:    p.ImageURL,
		})
	}
	return out
}

type Targets struct {
	Content  *content.Service
	Kittens  *catalog.Service[catalog.Kitten]
	Parents  *catalog.Service[catalog.Parent]
	Admin    *admin.Service
	Password string
}

// Apply es idempotente: no pisa páginas existentes, no agrega a colecciones
// con datos y no cambia una contraseña ya guardada.
func Apply(ctx context.Context, f File, t Targets, log logger.Logger) error {
	pages := []struct {
		name string
		doc  any
	}{
		{content.PageHome, f.Pages.Home},
		{content.PageCare, f.Pages.Care},
		{content.PageAbout, f.Pages.About},
		{content.PageSocialMedia, f.Pages.SocialMedia},
	}
	for _, p := range pages {
		inserted, err := t.Content.Seed(ctx, p.name, p.doc)
		if err != nil {
			return fmt.Errorf("seed page %s: %w", p.name, err)
		}
		if inserted {
			log.Info("seeded page", map[string]any{"page": p.name})
		}
	}

	n, err := t.Kittens.SeedIfEmpty(ctx, f.KittenRecords())
	if err != nil {
		return fmt.Errorf("seed kittens: %w", err)
	}
	if n > 0 {
		log.Info("seeded kittens", map[string]any{"count": n})
	}

	n, err = t.Parents.SeedIfEmpty(ctx, f.ParentRecords())
	if err != nil {
		return fmt.Errorf("seed parents: %w", err)
	}
	if n > 0 {
		log.Info("seeded parents", map[string]any{"count": n})
	}

	if t.Admin != nil {
		created, err := t.Admin.EnsurePassword(ctx, t.Password)
		if err != nil {
			return fmt.Errorf("seed admin password: %w", err)
		}
		if created {
			log.Info("default admin password set", nil)
		}
	}
	return nil
}
