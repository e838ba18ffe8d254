// Package respond junta los helpers JSON que antes estaban duplicados en cada handler.
package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// MaxBodyBytes limita los bodies de entrada (los documentos de contenido son chicos).
const MaxBodyBytes = 1 << 20

type ErrorBody struct {
	Detail string `json:"detail"`
}

type MessageBody struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, detail string) {
	JSON(w, status, ErrorBody{Detail: detail})
}

func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, MessageBody{Message: msg})
}

var ErrInvalidJSON = errors.New("invalid json")

// Decode lee un body JSON. Body vacío o malformado => ErrInvalidJSON.
func Decode(r *http.Request, into any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(into); err != nil {
		return ErrInvalidJSON
	}
	return nil
}
