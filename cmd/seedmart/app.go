package main

import (
	"io"
	"log"
	"time"

	"github.com/diewo77/seedmart/internal/config"
	"github.com/diewo77/seedmart/internal/console"
	"github.com/diewo77/seedmart/internal/i18n"
	"github.com/diewo77/seedmart/internal/policy"
	"github.com/diewo77/seedmart/internal/services"
	"gorm.io/gorm"
)

// App wires the services of one store around a database connection.
type App struct {
	db       *gorm.DB
	gate     *policy.AuthGate
	services console.Services
	lang     string
	loc      *time.Location
}

// NewApp creates the authorization gate and the services used by the
// console menus.
func NewApp(db *gorm.DB, cfg *config.Config) *App {
	ag := policy.NewAuthGate(db, cfg.App.AuthCacheTTL)
	loc := cfg.App.Location()
	app := &App{
		db:   db,
		gate: ag,
		lang: i18n.DetectLanguage(cfg.App.Lang),
		loc:  loc,
		services: console.Services{
			Gate:     ag,
			Auth:     services.NewAuthenticator(db),
			Users:    services.NewUserService(db, ag, cfg.App.BcryptCost),
			Catalog:  services.NewCatalogService(db, ag),
			Recorder: services.NewRecorder(db, ag, cfg.App.StoreName, loc),
			Reports:  services.NewReportService(db, ag),
		},
	}
	log.Printf("Store %q ready (lang=%s, tz=%s)", cfg.App.StoreName, app.lang, loc)
	return app
}

// Console returns a console reading from in and writing to out.
func (a *App) Console(in io.Reader, out io.Writer) *console.Console {
	return console.New(a.services, in, out, a.lang, a.loc)
}
