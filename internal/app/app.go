package app

import (
	"github.com/rgm-logistics/forms-api/internal/config"
	"github.com/rgm-logistics/forms-api/internal/services"
	"github.com/rgm-logistics/forms-api/pkg/utils"
)

// App struct holds references to config & services.
type App struct {
	Config      *config.Config
	FormService services.FormService
}

// NewApp sets up the core application context (no DB needed).
func NewApp(cfg *config.Config) *App {
	utils.Logger.Info("Initializing forms-api App")

	mailer := services.NewSendgridMailer(cfg.SendgridAPIKey)
	formSvc := services.NewFormService(cfg, mailer)

	return &App{
		Config:      cfg,
		FormService: formSvc,
	}
}

// Close is a no-op here but included for consistency.
func (a *App) Close() {
	utils.Logger.Info("forms-api app shutting down.")
}
