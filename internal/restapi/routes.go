package restapi

import (
	"github.com/shopcore/shopcore/config"
)

var appConfig *config.AppConfig

// RegisterRoutes attaches every API handler to the web server. Call after
// webserver.Init.
func RegisterRoutes(cfg *config.AppConfig) {
	appConfig = cfg
	registerAuthRoutes()
	registerUserRoutes()
	registerProductRoutes()
	registerOrderRoutes()
}
