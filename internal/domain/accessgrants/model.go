package accessgrants

import "time"

// Mode es un modo de acceso concedido sobre un recurso.
type Mode string

const (
	ModeRead   Mode = "Read"
	ModeWrite  Mode = "Write"
	ModeAppend Mode = "Append"
)

// Grant es un permiso que el dueño del wallet le extendió a un
// tercero (identificado por su WebID) sobre un recurso concreto.
// El shape con tags JSON es el del contrato wire del backend.
type Grant struct {
	UUID           string    `json:"uuid"`
	Identifier     string    `json:"identifier"`
	WebID          string    `json:"webId"`
	Logo           string    `json:"logo"`
	OwnerName      string    `json:"ownerName"`
	Resource       string    `json:"resource"`
	ResourceName   string    `json:"resourceName"`
	ForPurpose     string    `json:"forPurpose"`
	ExpirationDate time.Time `json:"expirationDate"`
	IssuedDate     time.Time `json:"issuedDate"`
	IsRDFResource  bool      `json:"isRDFResource"`
	Modes          []Mode    `json:"modes"`
}

// Group agrupa los grants de un mismo grantee para las pantallas de
// listado. Es un agregado derivado: se recalcula en cada fetch y no
// tiene identidad propia.
type Group struct {
	WebID     string  `json:"webId"`
	Logo      string  `json:"logo"`
	OwnerName string  `json:"ownerName"`
	Items     []Grant `json:"items"`
}

// HasWriteMode responde si algún modo es de escritura.
func HasWriteMode(modes []Mode) bool {
	for _, m := range modes {
		if m == ModeWrite {
			return true
		}
	}
	return false
}
