package content_test

import (
	"context"
	"testing"
	"time"

	"cattery-cms/internal/adapters/storage/memory"
	"cattery-cms/internal/domain/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_PutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := content.NewService(memory.NewContentRepo())

	_, err := svc.Get(ctx, content.PageAbout)
	assert.ErrorIs(t, err, content.ErrNotFound)

	doc := content.About{
		Title:          "About",
		Description:    "We breed",
		Contact:        content.Contact{Email: "a@b.com", Phone: "1", Address: "x"},
		PaymentMethods: []string{"Cash"},
	}
	raw, err := content.Encode(doc)
	require.NoError(t, err)

	put, err := svc.Put(ctx, content.PageAbout, raw)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, put.UpdatedAt.Location())

	got, err := svc.Get(ctx, content.PageAbout)
	require.NoError(t, err)
	decoded, err := content.DecodeAbout(got.Content)
	require.NoError(t, err)
	assert.Equal(t, doc, decoded)
}

func TestService_PutOverwritesWholeDocument(t *testing.T) {
	ctx := context.Background()
	svc := content.NewService(memory.NewContentRepo())

	first, err := svc.Put(ctx, content.PageHome, `{"company_name":"A","tagline":"T"}`)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	second, err := svc.Put(ctx, content.PageHome, `{"company_name":"B"}`)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	got, err := svc.Get(ctx, content.PageHome)
	require.NoError(t, err)
	home, err := content.DecodeHome(got.Content)
	require.NoError(t, err)
	assert.Equal(t, "B", home.CompanyName)
	assert.Equal(t, "", home.Tagline)
}

func TestService_RejectsBlankPage(t *testing.T) {
	svc := content.NewService(memory.NewContentRepo())
	_, err := svc.Put(context.Background(), "  ", "{}")
	assert.ErrorIs(t, err, content.ErrInvalidInput)
	_, err = svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, content.ErrInvalidInput)
}

func TestService_SeedDoesNotOverwrite(t *testing.T) {
	ctx := context.Background()
	svc := content.NewService(memory.NewContentRepo())

	inserted, err := svc.Seed(ctx, content.PageCare, content.DefaultCare())
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = svc.Seed(ctx, content.PageCare, content.Care{Title: "other"})
	require.NoError(t, err)
	assert.False(t, inserted)

	got, _ := svc.Get(ctx, content.PageCare)
	care, _ := content.DecodeCare(got.Content)
	assert.Equal(t, content.DefaultCare().Title, care.Title)
}
