// Package main is the entry point for the webster-service application.
//
// @title           Webster Pack Service API
// @version         1.0.0
// @description     API for preparing and verifying Webster pack medication blister packs.
//
//	The service tracks the preparation checklist of each pack, verifies packed
//	medications by barcode scan, and derives pack completion from checklist state.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/medpak/webster-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT issued by the pharmacy identity provider, prefixed with "Bearer ".
//
// @tag.name        Packs
// @tag.description Webster pack preparation and verification operations
//
// @tag.name        Customers
// @tag.description Customer management endpoints
//
// @tag.name        Medications
// @tag.description Medication catalog endpoints
//
// @tag.name        Audit
// @tag.description Audit trail queries
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/medpak/webster-service/docs" // swagger docs

	"github.com/medpak/webster-service/config"
	"github.com/medpak/webster-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
