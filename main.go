package main

import (
	"os"

	"github.com/sakaigo/site-group-manager/app"
)

func main() {
	if err := app.Execute(); err != nil {
		os.Exit(1)
	}
}
