package main

import (
	"log"

	"github.com/almursalaat/admin-api/app"
)

func main() {
	if err := app.SetupAndRunServer(); err != nil {
		log.Fatal(err)
	}
}
