package admin

import "context"

// KeyPassword es la clave bajo la que se guarda el hash en admin_settings.
const KeyPassword = "admin_password"

// Repository guarda settings de admin como pares clave/valor.
// Get devuelve ErrNotFound si la clave no existe.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
