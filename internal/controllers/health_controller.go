package controllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rgm-logistics/forms-api/internal/app"
	"github.com/rgm-logistics/forms-api/pkg/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(a *app.App) *HealthController {
	return &HealthController{app: a}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	// Probe the only external dependency (SendGrid key sanity).
	if err := c.app.FormService.Ping(context.Background()); err != nil {
		utils.Logger.WithError(err).Error("forms-api unhealthy")
		utils.RespondError(w, http.StatusServiceUnavailable, "Service unhealthy", err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "%s Backend Running", c.app.Config.OrgName)
}
