package di

import (
	menuService "tandoor/internal/domains/menu/service"
	"tandoor/transport/http"
)

// App bundles the HTTP server with the services the entrypoint drives
// directly, such as the startup catalog seed.
type App struct {
	HTTP *http.HTTP
	Menu menuService.Menu
}
