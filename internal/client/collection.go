package client

import (
	"context"
	"net/http"
	"strconv"

	"cattery-cms/internal/domain/catalog"
)

// Collection es el CRUD genérico del catálogo visto desde el cliente.
type Collection[T catalog.Record[T]] struct {
	c    *Client
	path string
}

func NewCollection[T catalog.Record[T]](c *Client, path string) Collection[T] {
	return Collection[T]{c: c, path: path}
}

func (c *Client) Kittens() Collection[catalog.Kitten] {
	return NewCollection[catalog.Kitten](c, "/api/kittens")
}

func (c *Client) Parents() Collection[catalog.Parent] {
	return NewCollection[catalog.Parent](c, "/api/parents")
}

func (c *Client) Products() Collection[catalog.Product] {
	return NewCollection[catalog.Product](c, "/api/products")
}

func (col Collection[T]) List(ctx context.Context) ([]T, error) {
	out := []T{}
	err := col.c.do(ctx, http.MethodGet, col.path, nil, &out)
	return out, err
}

func (col Collection[T]) Get(ctx context.Context, id int64) (T, error) {
	var out T
	err := col.c.do(ctx, http.MethodGet, col.path+"/"+itoa(id), nil, &out)
	return out, err
}

func (col Collection[T]) Create(ctx context.Context, rec T) (T, error) {
	var out T
	err := col.c.do(ctx, http.MethodPost, col.path, rec, &out)
	return out, err
}

func (col Collection[T]) Update(ctx context.Context, id int64, rec T) (T, error) {
	var out T
	err := col.c.do(ctx, http.MethodPut, col.path+"/"+itoa(id), rec, &out)
	return out, err
}

func (col Collection[T]) Delete(ctx context.Context, id int64) error {
	return col.c.do(ctx, http.MethodDelete, col.path+"/"+itoa(id), nil, nil)
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
