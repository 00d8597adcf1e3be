package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/freezeomatic/internal/app"
	"github.com/dmitrijs2005/freezeomatic/internal/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
