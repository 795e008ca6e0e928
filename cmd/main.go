package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/DurgaPydahSoft/client-sub008/config"
	"github.com/DurgaPydahSoft/client-sub008/database"
	"github.com/DurgaPydahSoft/client-sub008/routes"
)

func main() {
	cfg := config.Load()

	// Connect first; if the DB isn't up the process should die right away.
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
