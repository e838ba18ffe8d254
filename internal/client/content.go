package client

import (
	"context"
	"net/http"

	"cattery-cms/internal/domain/content"
	"cattery-cms/internal/platform/httpclient"
)

type envelope struct {
	PageName string `json:"page_name"`
	Content  string `json:"content"`
}

// ContentClient lee y escribe los documentos de página.
// Las lecturas nunca fallan: ante cualquier error se loguea y se devuelve el default.
type ContentClient struct {
	c *Client
}

func (c *Client) Content() ContentClient { return ContentClient{c: c} }

// fetch devuelve el content crudo de la página. Una página que todavía no existe
// (404) no es un error: se decodifica como vacía y queda en el default.
func (cc ContentClient) fetch(ctx context.Context, page string) (string, error) {
	var env envelope
	if err := cc.c.do(ctx, http.MethodGet, "/api/content/"+page, nil, &env); err != nil {
		if httpclient.IsNotFound(err) {
			return "", nil
		}
		return "", err
	}
	return env.Content, nil
}

func (cc ContentClient) loadHome(ctx context.Context) (content.Home, error) {
	raw, err := cc.fetch(ctx, content.PageHome)
	if err != nil {
		return content.DefaultHome(), err
	}
	return content.DecodeHome(raw)
}

func (cc ContentClient) loadCare(ctx context.Context) (content.Care, error) {
	raw, err := cc.fetch(ctx, content.PageCare)
	if err != nil {
		return content.DefaultCare(), err
	}
	return content.DecodeCare(raw)
}

func (cc ContentClient) loadAbout(ctx context.Context) (content.About, error) {
	raw, err := cc.fetch(ctx, content.PageAbout)
	if err != nil {
		return content.DefaultAbout(), err
	}
	return content.DecodeAbout(raw)
}

func (cc ContentClient) loadSocialMedia(ctx context.Context) (content.SocialMedia, error) {
	raw, err := cc.fetch(ctx, content.PageSocialMedia)
	if err != nil {
		return content.DefaultSocialMedia(), err
	}
	return content.DecodeSocialMedia(raw)
}

func (cc ContentClient) Home(ctx context.Context) content.Home {
	doc, err := cc.loadHome(ctx)
	cc.logFailure(content.PageHome, err)
	return doc
}

func (cc ContentClient) Care(ctx context.Context) content.Care {
	doc, err := cc.loadCare(ctx)
	cc.logFailure(content.PageCare, err)
	return doc
}

func (cc ContentClient) About(ctx context.Context) content.About {
	doc, err := cc.loadAbout(ctx)
	cc.logFailure(content.PageAbout, err)
	return doc
}

func (cc ContentClient) SocialMedia(ctx context.Context) content.SocialMedia {
	doc, err := cc.loadSocialMedia(ctx)
	cc.logFailure(content.PageSocialMedia, err)
	return doc
}

// Put reemplaza el documento completo de la página.
func (cc ContentClient) Put(ctx context.Context, page string, doc any) error {
	raw, err := content.Encode(doc)
	if err != nil {
		return err
	}
	return cc.c.do(ctx, http.MethodPut, "/api/content", envelope{PageName: page, Content: raw}, nil)
}

func (cc ContentClient) logFailure(page string, err error) {
	if err != nil {
		cc.c.log.Warn("content read failed, using defaults", map[string]any{"page": page, "err": err})
	}
}
