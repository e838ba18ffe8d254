package client

import (
	"context"
	"errors"

	"cattery-cms/internal/domain/catalog"
)

type EditorMode string

const (
	ModeIdle    EditorMode = "idle"
	ModeEditing EditorMode = "editing"
)

var ErrNotEditing = errors.New("editor: not editing")

// Editor modela el formulario de alta/edición de una colección.
// En idle Submit crea; en editing actualiza el registro elegido.
type Editor[T catalog.Record[T]] struct {
	col     Collection[T]
	mode    EditorMode
	editing int64
	Draft   T
}

func NewEditor[T catalog.Record[T]](col Collection[T]) *Editor[T] {
	return &Editor[T]{col: col, mode: ModeIdle}
}

func (e *Editor[T]) Mode() EditorMode { return e.mode }

// Edit carga el registro en el borrador y pasa a editing.
func (e *Editor[T]) Edit(rec T) {
	e.mode = ModeEditing
	e.editing = rec.GetID()
	e.Draft = rec
}

// Cancel descarta el borrador sin tocar la red.
func (e *Editor[T]) Cancel() {
	var zero T
	e.mode = ModeIdle
	e.editing = 0
	e.Draft = zero
}

// Submit manda el borrador. Si falla, el editor queda como estaba.
func (e *Editor[T]) Submit(ctx context.Context) (T, error) {
	var (
		saved T
		err   error
	)
	if e.mode == ModeEditing {
		saved, err = e.col.Update(ctx, e.editing, e.Draft)
	} else {
		saved, err = e.col.Create(ctx, e.Draft)
	}
	if err != nil {
		return saved, err
	}
	e.Cancel()
	return saved, nil
}

// Delete borra el registro en edición previa confirmación.
func (e *Editor[T]) Delete(ctx context.Context, confirm func() bool) (bool, error) {
	if e.mode != ModeEditing {
		return false, ErrNotEditing
	}
	id := e.editing
	deleted, err := ConfirmDelete(confirm, func() error { return e.col.Delete(ctx, id) })
	if deleted {
		e.Cancel()
	}
	return deleted, err
}

// ConfirmDelete solo llama a del si confirm devuelve true. confirm nil cuenta como no.
func ConfirmDelete(confirm func() bool, del func() error) (bool, error) {
	if confirm == nil || !confirm() {
		return false, nil
	}
	if err := del(); err != nil {
		return false, err
	}
	return true, nil
}
