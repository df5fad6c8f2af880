package main

import (
	"net/http"

	"github.com/gorilla/mux"
	_ "time/tzdata"

	"github.com/rgm-logistics/forms-api/internal/app"
	"github.com/rgm-logistics/forms-api/internal/config"
	"github.com/rgm-logistics/forms-api/internal/controllers"
	"github.com/rgm-logistics/forms-api/internal/routes"
	"github.com/rgm-logistics/forms-api/pkg/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()
	defer cfg.Close()

	// 2) Core application (services, etc.)
	application := app.NewApp(cfg)
	defer application.Close()

	// 3) Controllers
	healthCtrl := controllers.NewHealthController(application)
	formsCtrl := controllers.NewFormsController(cfg, application.FormService)

	// 4) Router
	router := mux.NewRouter()
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Apply, formsCtrl.SubmitApplication).Methods(http.MethodPost)
	router.HandleFunc(routes.RateQuote, formsCtrl.SubmitRateQuote).Methods(http.MethodPost)

	// 5) CORS
	handler := app.CORSHandler(cfg, router)

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, handler); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
