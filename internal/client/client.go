// Package client es el cliente Go de la API del sitio: lo usa el panel de
// administración para leer y editar contenido, catálogo y lista de espera.
package client

import (
	"context"
	"net/http"
	"time"

	"cattery-cms/internal/platform/httpclient"
	"cattery-cms/internal/platform/logger"
)

type Client struct {
	http    *httpclient.Client
	session *Session
	log     logger.Logger
}

func New(baseURL string, session *Session, log logger.Logger) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, httpclient.DefaultTimeout)
	if err != nil {
		return nil, err
	}
	if session == nil {
		session = NewSession()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{http: hc, session: session, log: log}, nil
}

func (c *Client) Session() *Session { return c.session }

// do adjunta el token de la sesión; un 401 manda la sesión a anonymous.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	err := c.http.DoJSON(ctx, method, path, httpclient.Bearer(c.session.Token()), in, out)
	if httpclient.IsUnauthorized(err) {
		c.session.Apply(EventUnauthorized, "")
	}
	return err
}

type loginResponse struct {
	Message       string `json:"message"`
	Authenticated bool   `json:"authenticated"`
	Token         string `json:"token"`
}

// Login no pasa por do: un 401 acá es "contraseña incorrecta", no sesión vencida.
func (c *Client) Login(ctx context.Context, password string) error {
	var out loginResponse
	err := c.http.DoJSON(ctx, http.MethodPost, "/api/admin/login", nil, map[string]string{"password": password}, &out)
	if err != nil {
		return err
	}
	c.session.Apply(EventLoginSucceeded, out.Token)
	return nil
}

// Logout es local: no hay revocación en el servidor.
func (c *Client) Logout() {
	c.session.Apply(EventLogout, "")
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	return c.do(ctx, http.MethodPost, "/api/admin/change-password", map[string]string{
		"current_password": current,
		"new_password":     next,
	}, nil)
}

type WaitlistEntry struct {
	ID          int64     `json:"id,omitzero"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Preferences string    `json:"preferences"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// JoinWaitlist es público: no requiere sesión.
func (c *Client) JoinWaitlist(ctx context.Context, e WaitlistEntry) (WaitlistEntry, error) {
	var out WaitlistEntry
	err := c.do(ctx, http.MethodPost, "/api/waiting-list", e, &out)
	return out, err
}

func (c *Client) Waitlist(ctx context.Context) ([]WaitlistEntry, error) {
	out := []WaitlistEntry{}
	err := c.do(ctx, http.MethodGet, "/api/waiting-list", nil, &out)
	return out, err
}

func (c *Client) RemoveWaitlistEntry(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/waiting-list/"+itoa(id), nil, nil)
}
