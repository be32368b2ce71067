package nav

// Route identifica una pantalla del wallet.
type Route string

const (
	RouteHome         Route = "/"
	RouteLogin        Route = "/login"
	RouteScan         Route = "/scan-qr"
	RouteAccessPrompt Route = "/access-prompt"
	RouteDownload     Route = "/home/download"
	RouteAccesses     Route = "/accesses"
)

// Params son los parámetros que viajan con una transición.
type Params map[string]string

// Navigator abstrae el stack de navegación de la app.
// Push deja la pantalla actual en el stack (se puede volver);
// Replace la reemplaza (no hay vuelta atrás); Back vuelve a la anterior.
type Navigator interface {
	Push(route Route, params Params)
	Replace(route Route, params Params)
	Back()
}
