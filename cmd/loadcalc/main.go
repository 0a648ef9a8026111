package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/spf13/viper"

	loadHandler "github.com/phantomdigital/truckcheck-sub001/services/loadcalc/handler/http"
	"github.com/phantomdigital/truckcheck-sub001/services/loadcalc/usecase"
)

func init() {
	viper.SetConfigName("loadcalc")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.SetDefault("server.address", ":8081")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Error reading config file: %s", err)
	}
}

func main() {
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(viper.GetString("newrelic.app_name")),
		newrelic.ConfigLicense(viper.GetString("newrelic.license_key")),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigEnabled(viper.GetBool("newrelic.enabled")),
	)
	if err != nil {
		log.Fatal(err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(nrgin.Middleware(app))

	h := loadHandler.NewLoadCalcHandler(usecase.NewLoadCalcUC())
	h.RegisterRoutes(router)

	addr := viper.GetString("server.address")
	log.Printf("Starting load calculator on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatal(err)
	}
}
