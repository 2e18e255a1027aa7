package main

import (
	"context"
	"log"

	"github.com/alexkarev/travellog/internal/devserver"
	"github.com/alexkarev/travellog/internal/devserver/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := devserver.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
