package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cattery-cms/internal/client"
	"cattery-cms/internal/domain/catalog"
	"cattery-cms/internal/domain/content"
	"cattery-cms/internal/platform/config"
	"cattery-cms/internal/platform/httpclient"
	"cattery-cms/internal/router"
	"cattery-cms/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) *client.Client {
	t.Helper()
	f, err := seed.Default()
	require.NoError(t, err)

	h, err := router.NewRouter(context.Background(), router.Options{
		Config: config.Config{
			SecretKey:            "test-secret",
			TokenTTL:             time.Hour,
			DefaultAdminPassword: "admin123",
		},
		Seed: &f,
	})
	require.NoError(t, err)

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	c, err := client.New(ts.URL, nil, nil)
	require.NoError(t, err)
	return c
}

func TestClient_LoginAndUnauthorized(t *testing.T) {
	ctx := context.Background()
	c := newAPI(t)

	err := c.Login(ctx, "wrong")
	assert.True(t, httpclient.IsUnauthorized(err))
	assert.Equal(t, client.StateAnonymous, c.Session().State())
	assert.Empty(t, c.Session().Token())

	require.NoError(t, c.Login(ctx, "admin123"))
	assert.Equal(t, client.StateAuthenticated, c.Session().State())
	assert.NotEmpty(t, c.Session().Token())

	// token corrupto: el servidor responde 401 y la sesión vuelve a anonymous
	c.Session().Apply(client.EventLoginSucceeded, "not-a-token")
	_, err = c.Kittens().Create(ctx, catalog.Kitten{Name: "X", Gender: catalog.GenderMale})
	assert.True(t, httpclient.IsUnauthorized(err))
	assert.Equal(t, client.StateAnonymous, c.Session().State())
	assert.Empty(t, c.Session().Token())
}

func TestClient_ContentDefaultsAndPut(t *testing.T) {
	ctx := context.Background()
	c := newAPI(t)
	require.NoError(t, c.Login(ctx, "admin123"))

	home := c.Content().Home(ctx)
	assert.Equal(t, "Royal Abyssinians", home.CompanyName)

	home.AddAffiliation("   ")
	home.AddAffiliation("ACFA")
	require.NoError(t, c.Content().Put(ctx, content.PageHome, home))

	got := c.Content().Home(ctx)
	assert.Equal(t, home, got)
	assert.Equal(t, "ACFA", got.Affiliations[len(got.Affiliations)-1])

	// documento guardado con basura: el cliente cae al default
	require.NoError(t, c.Content().Put(ctx, content.PageCare, map[string]any{"title": 42}))
	assert.Equal(t, content.DefaultCare(), c.Content().Care(ctx))
}

func TestClient_ContentReadFailureFallsBack(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c, err := client.New(ts.URL, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, content.DefaultSocialMedia(), c.Content().SocialMedia(context.Background()))
	assert.Equal(t, content.DefaultAbout(), c.Content().About(context.Background()))
}

func TestClient_EditorFlow(t *testing.T) {
	ctx := context.Background()
	c := newAPI(t)
	require.NoError(t, c.Login(ctx, "admin123"))

	ed := client.NewEditor(c.Products())
	assert.Equal(t, client.ModeIdle, ed.Mode())

	ed.Draft = catalog.Product{Name: "Scratcher", Category: "toys", Available: true}
	created, err := ed.Submit(ctx)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, client.ModeIdle, ed.Mode())

	ed.Edit(created)
	ed.Draft.StockQuantity = -2
	updated, err := ed.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, -2, updated.StockQuantity)

	// cancelar no toca la red
	ed.Edit(updated)
	ed.Draft.Name = "changed"
	ed.Cancel()
	got, err := c.Products().Get(ctx, updated.ID)
	require.NoError(t, err)
	assert.Equal(t, "Scratcher", got.Name)

	ed.Edit(got)
	deleted, err := ed.Delete(ctx, func() bool { return false })
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, client.ModeEditing, ed.Mode())

	deleted, err = ed.Delete(ctx, func() bool { return true })
	require.NoError(t, err)
	assert.True(t, deleted)
	_, err = c.Products().Get(ctx, got.ID)
	assert.True(t, httpclient.IsNotFound(err))
}

func TestClient_Dashboard(t *testing.T) {
	ctx := context.Background()
	c := newAPI(t)

	_, err := c.JoinWaitlist(ctx, client.WaitlistEntry{Name: "Jo", Email: "jo@x.com", Phone: "555-0100"})
	require.NoError(t, err)

	// sin sesión la lista de espera falla pero el resto carga
	d := c.LoadDashboard(ctx)
	assert.Equal(t, []string{"waiting_list"}, d.Failed)
	assert.Empty(t, d.Waitlist)
	assert.Len(t, d.Kittens, 4)
	assert.Len(t, d.Parents, 2)
	assert.Len(t, d.Care.CareTips, 5)

	require.NoError(t, c.Login(ctx, "admin123"))
	d = c.LoadDashboard(ctx)
	assert.Empty(t, d.Failed)
	require.Len(t, d.Waitlist, 1)
	assert.Equal(t, "Jo", d.Waitlist[0].Name)
}

func TestClient_DashboardReportsContentFailures(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/content/") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer ts.Close()

	c, err := client.New(ts.URL, nil, nil)
	require.NoError(t, err)

	d := c.LoadDashboard(context.Background())
	assert.ElementsMatch(t, []string{"home", "care", "about", "social_media"}, d.Failed)
	assert.Equal(t, content.DefaultHome(), d.Home)
	assert.Equal(t, content.DefaultSocialMedia(), d.SocialMedia)
	assert.Empty(t, d.Kittens)
	assert.Empty(t, d.Waitlist)
}

func TestClient_DashboardMissingPageIsNotAFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasPrefix(r.URL.Path, "/api/content/") {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"detail":"Page content not found"}`))
			return
		}
		_, _ = w.Write([]byte("[]"))
	}))
	defer ts.Close()

	c, err := client.New(ts.URL, nil, nil)
	require.NoError(t, err)

	d := c.LoadDashboard(context.Background())
	assert.Empty(t, d.Failed)
	assert.Equal(t, content.DefaultCare(), d.Care)
}

func TestClient_JoinWaitlistOmitsServerFields(t *testing.T) {
	var sent map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&sent)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"Jo","email":"jo@x.com","phone":"1","preferences":"","created_at":"2025-01-02T03:04:05Z"}`))
	}))
	defer ts.Close()

	c, err := client.New(ts.URL, nil, nil)
	require.NoError(t, err)

	out, err := c.JoinWaitlist(context.Background(), client.WaitlistEntry{Name: "Jo", Email: "jo@x.com", Phone: "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.ID)
	assert.NotContains(t, sent, "id")
	assert.NotContains(t, sent, "created_at")
	assert.Equal(t, "Jo", sent["name"])
}
