package scan

import (
	"encoding/json"
	"errors"
	"net/url"
)

// ErrUnrecognized indica que el texto escaneado no matchea ningún
// formato conocido (JSON inválido incluido). Es el fallback terminal:
// nunca debe tumbar el flujo de escaneo.
var ErrUnrecognized = errors.New("qr code not a recognized type")

// Payload es el union de los dos intents reconocidos en un QR.
type Payload interface {
	isPayload()
}

// AccessPrompt pide acceso a un recurso en nombre de una app cliente.
type AccessPrompt struct {
	WebID  string
	Client string
	Type   string
}

func (AccessPrompt) isPayload() {}

// Download apunta a un recurso descargable para guardar en el wallet.
type Download struct {
	URI         string
	ContentType string
}

func (Download) isPayload() {}

// Classify decide qué intent representa el texto escaneado.
// Es total: cualquier input (vacío, no-JSON, arrays, primitivos,
// objetos incompletos) termina en ErrUnrecognized, sin panics.
// AccessPrompt se chequea antes que Download; un payload que
// satisface ambos shapes se clasifica como AccessPrompt.
func Classify(raw string) (Payload, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, ErrUnrecognized
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrUnrecognized
	}

	if p, ok := asAccessPrompt(obj); ok {
		return p, nil
	}
	if d, ok := asDownload(obj); ok {
		return d, nil
	}
	return nil, ErrUnrecognized
}

func asAccessPrompt(obj map[string]any) (AccessPrompt, bool) {
	webID, ok := stringField(obj, "webId")
	if !ok || !isValidURL(webID) {
		return AccessPrompt{}, false
	}
	client, ok := stringField(obj, "client")
	if !ok {
		return AccessPrompt{}, false
	}
	typ, ok := stringField(obj, "type")
	if !ok {
		return AccessPrompt{}, false
	}
	return AccessPrompt{WebID: webID, Client: client, Type: typ}, true
}

func asDownload(obj map[string]any) (Download, bool) {
	uri, ok := stringField(obj, "uri")
	if !ok || !isValidURL(uri) {
		return Download{}, false
	}
	contentType, ok := stringField(obj, "contentType")
	if !ok {
		return Download{}, false
	}
	return Download{URI: uri, ContentType: contentType}, true
}

func stringField(obj map[string]any, key string) (string, bool) {
	s, ok := obj[key].(string)
	return s, ok
}

// isValidURL acepta cualquier URL absoluta, sin importar el scheme
// (el contrato es "la acepta un constructor de URL", no "es https").
func isValidURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}
