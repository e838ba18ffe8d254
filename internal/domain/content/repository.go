package content

import "context"

type Repository interface {
	Get(ctx context.Context, pageName string) (Envelope, error)
	// Upsert reemplaza el documento completo (last write wins) y devuelve la fila guardada.
	// El id se asigna en la primera escritura y se conserva después.
	Upsert(ctx context.Context, e Envelope) (Envelope, error)
	// InsertIfMissing no toca documentos existentes; devuelve true si insertó.
	InsertIfMissing(ctx context.Context, e Envelope) (bool, error)
}
