package auth

import "time"

// SubjectAdmin es el único sujeto del sistema: hay una sola contraseña compartida.
const SubjectAdmin = "admin"

// Claims representa la información extraída del token.
type Claims struct {
	Subject   string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Token es lo que se le entrega al cliente en el login.
type Token struct {
	Value     string
	ExpiresAt time.Time
}
