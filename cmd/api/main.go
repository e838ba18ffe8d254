// @title Abyssinian Cat Breeder API
// @version 1.0
// @description Contenido del sitio, catálogo, lista de espera y sesión de admin.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer <token> devuelto por /api/admin/login
package main

//go:generate swag init -g main.go -d ./,../../internal -o ../../docs --outputTypes go --parseInternal

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
