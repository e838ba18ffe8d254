package seed_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cattery-cms/internal/adapters/auth/jwt"
	"cattery-cms/internal/adapters/storage/memory"
	"cattery-cms/internal/domain/admin"
	"cattery-cms/internal/domain/catalog"
	"cattery-cms/internal/domain/content"
	"cattery-cms/internal/platform/logger"
	"cattery-cms/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Parses(t *testing.T) {
	f, err := seed.Default()
	require.NoError(t, err)

	assert.Equal(t, "Royal Abyssinians", f.Pages.Home.CompanyName)
	assert.Len(t, f.Pages.Home.Affiliations, 2)
	assert.Len(t, f.Pages.Care.CareTips, 5)
	assert.Equal(t, "(555) 123-4567", f.Pages.About.Contact.Phone)
	assert.Equal(t, []string{"Cash", "Zelle", "Venmo"}, f.Pages.About.PaymentMethods)
	require.Len(t, f.Pages.SocialMedia.Links, 2)
	assert.Equal(t, "instagram", f.Pages.SocialMedia.Links[0].Icon)

	kittens := f.KittenRecords()
	require.Len(t, kittens, 4)
	for _, k := range kittens {
		assert.NoError(t, k.Validate(), k.Name)
	}
	assert.False(t, kittens[3].Available)

	parents := f.ParentRecords()
	require.Len(t, parents, 2)
	for _, p := range parents {
		assert.NoError(t, p.Validate(), p.Name)
	}
}

func TestApply_Idempotent(t *testing.T) {
	ctx := context.Background()
	f, err := seed.Default()
	require.NoError(t, err)

	signer, err := jwt.NewSigner(jwt.Config{SecretKey: "k", TTL: time.Hour})
	require.NoError(t, err)

	contentSvc := content.NewService(memory.NewContentRepo())
	kittens := catalog.NewService(memory.NewEntityRepo[catalog.Kitten]())
	parents := catalog.NewService(memory.NewEntityRepo[catalog.Parent]())
	adminSvc := admin.NewService(memory.NewSettingsRepo(), signer)

	targets := seed.Targets{
		Content:  contentSvc,
		Kittens:  kittens,
		Parents:  parents,
		Admin:    adminSvc,
		Password: "admin123",
	}

	// una página ya editada no se pisa
	_, err = contentSvc.Put(ctx, content.PageHome, `{"company_name":"Mine"}`)
	require.NoError(t, err)

	require.NoError(t, seed.Apply(ctx, f, targets, logger.Nop()))
	require.NoError(t, seed.Apply(ctx, f, targets, logger.Nop()))

	home, err := contentSvc.Get(ctx, content.PageHome)
	require.NoError(t, err)
	assert.JSONEq(t, `{"company_name":"Mine"}`, home.Content)

	care, err := contentSvc.Get(ctx, content.PageCare)
	require.NoError(t, err)
	var doc content.Care
	require.NoError(t, json.Unmarshal([]byte(care.Content), &doc))
	assert.Equal(t, "Caring for Your Abyssinian", doc.Title)

	ks, err := kittens.List(ctx, catalog.Filter{})
	require.NoError(t, err)
	assert.Len(t, ks, 4)
	ps, err := parents.List(ctx, catalog.Filter{})
	require.NoError(t, err)
	assert.Len(t, ps, 2)

	_, err = adminSvc.Login(ctx, "admin123")
	assert.NoError(t, err)
}
