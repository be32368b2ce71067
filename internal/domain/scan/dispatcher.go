package scan

import (
	"data-wallet/internal/platform/logger"
	"data-wallet/internal/ports/nav"
)

// Dispatcher rutea un scan ya clasificado hacia la pantalla que toca.
type Dispatcher struct {
	nav nav.Navigator
	log logger.Logger
}

func NewDispatcher(navigator nav.Navigator, log logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{nav: navigator, log: log}
}

// HandleScan clasifica el texto escaneado y navega:
// - AccessPrompt => Replace a /access-prompt (el scanner sale del stack)
// - Download     => Push a /home/download (se puede volver al scanner)
// - otro         => Back a la pantalla anterior + ErrUnrecognized
// El error devuelto es para que el caller muestre el mensaje; la
// navegación ya quedó resuelta acá.
func (d *Dispatcher) HandleScan(raw string) error {
	payload, err := Classify(raw)
	if err != nil {
		d.log.Warn("qr code not a valid format", map[string]any{"len": len(raw)})
		d.nav.Back()
		return err
	}

	switch p := payload.(type) {
	case AccessPrompt:
		d.nav.Replace(nav.RouteAccessPrompt, nav.Params{
			"webId":  p.WebID,
			"client": p.Client,
			"type":   p.Type,
		})
	case Download:
		d.nav.Push(nav.RouteDownload, nav.Params{
			"uri":         p.URI,
			"contentType": p.ContentType,
		})
	}
	return nil
}
