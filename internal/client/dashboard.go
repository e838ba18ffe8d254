package client

import (
	"context"
	"sync"

	"cattery-cms/internal/domain/catalog"
	"cattery-cms/internal/domain/content"

	"golang.org/x/sync/errgroup"
)

// DashboardData es todo lo que el panel necesita al abrir.
type DashboardData struct {
	Home        content.Home
	Care        content.Care
	About       content.About
	SocialMedia content.SocialMedia
	Kittens     []catalog.Kitten
	Parents     []catalog.Parent
	Products    []catalog.Product
	Waitlist    []WaitlistEntry
	// Failed lista las secciones que no se pudieron leer (quedan en su default).
	Failed []string
}

// LoadDashboard lanza las lecturas en paralelo y espera a todas.
// Un fallo individual se loguea y deja esa sección en su valor por defecto.
func (c *Client) LoadDashboard(ctx context.Context) DashboardData {
	d := DashboardData{
		Kittens:  []catalog.Kitten{},
		Parents:  []catalog.Parent{},
		Products: []catalog.Product{},
		Waitlist: []WaitlistEntry{},
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	failed := func(section string, err error) {
		c.log.Warn("dashboard section failed", map[string]any{"section": section, "err": err})
		mu.Lock()
		d.Failed = append(d.Failed, section)
		mu.Unlock()
	}

	cc := c.Content()
	g.Go(func() error {
		var err error
		if d.Home, err = cc.loadHome(ctx); err != nil {
			failed(content.PageHome, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if d.Care, err = cc.loadCare(ctx); err != nil {
			failed(content.PageCare, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if d.About, err = cc.loadAbout(ctx); err != nil {
			failed(content.PageAbout, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if d.SocialMedia, err = cc.loadSocialMedia(ctx); err != nil {
			failed(content.PageSocialMedia, err)
		}
		return nil
	})

	g.Go(func() error {
		if items, err := c.Kittens().List(ctx); err != nil {
			failed("kittens", err)
		} else {
			d.Kittens = items
		}
		return nil
	})
	g.Go(func() error {
		if items, err := c.Parents().List(ctx); err != nil {
			failed("parents", err)
		} else {
			d.Parents = items
		}
		return nil
	})
	g.Go(func() error {
		if items, err := c.Products().List(ctx); err != nil {
			failed("products", err)
		} else {
			d.Products = items
		}
		return nil
	})
	g.Go(func() error {
		if items, err := c.Waitlist(ctx); err != nil {
			failed("waiting_list", err)
		} else {
			d.Waitlist = items
		}
		return nil
	})

	// las goroutines nunca devuelven error
	_ = g.Wait()
	return d
}
