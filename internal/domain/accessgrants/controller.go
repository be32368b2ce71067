package accessgrants

import (
	"context"

	"data-wallet/internal/platform/logger"
	"data-wallet/internal/ports/nav"
)

// DetailState es el estado de la vista de detalle de un grupo.
type DetailState int

const (
	Viewing DetailState = iota
	ConfirmingSingleRevoke
	ConfirmingGroupRevoke
	Updating
)

// DetailController maneja la pantalla de detalle de un grantee:
// confirmaciones de revocación y el contrato de navegación posterior.
//
//	Viewing -> ConfirmingSingleRevoke -> Updating -> (Back | Viewing+refetch)
//	Viewing -> ConfirmingGroupRevoke  -> Updating -> Back
//
// Cualquier Confirming* vuelve a Viewing con Cancel. En fallo la
// vista queda en Viewing con los datos intactos.
type DetailController struct {
	svc *Service
	nav nav.Navigator
	log logger.Logger

	webID  string
	state  DetailState
	target Grant // seleccionado para revocación puntual
}

func NewDetailController(svc *Service, navigator nav.Navigator, log logger.Logger, webID string) *DetailController {
	if log == nil {
		log = logger.Nop()
	}
	return &DetailController{
		svc:   svc,
		nav:   navigator,
		log:   log,
		webID: webID,
		state: Viewing,
	}
}

func (c *DetailController) State() DetailState { return c.state }

// Group busca el grupo de esta vista en la agrupación vigente.
func (c *DetailController) Group(ctx context.Context) (Group, bool, error) {
	groups, err := c.svc.Groups(ctx)
	if err != nil {
		return Group{}, false, err
	}
	for _, g := range groups {
		if g.WebID == c.webID {
			return g, true, nil
		}
	}
	return Group{}, false, nil
}

// SelectRevoke abre la confirmación para revocar un item.
func (c *DetailController) SelectRevoke(item Grant) error {
	if c.state != Viewing {
		return ErrBadState
	}
	c.target = item
	c.state = ConfirmingSingleRevoke
	return nil
}

// SelectRevokeAll abre la confirmación para revocar el grupo entero.
func (c *DetailController) SelectRevokeAll() error {
	if c.state != Viewing {
		return ErrBadState
	}
	c.state = ConfirmingGroupRevoke
	return nil
}

// Cancel cierra la confirmación sin tocar nada.
func (c *DetailController) Cancel() {
	if c.state == ConfirmingSingleRevoke || c.state == ConfirmingGroupRevoke {
		c.target = Grant{}
		c.state = Viewing
	}
}

// Confirm ejecuta la revocación pendiente.
// Single: si el grupo tenía un solo item, sale de la vista (Back);
// si no, refetchea la lista y vuelve a Viewing. Group: Back siempre.
// En error vuelve a Viewing y devuelve el error para que el caller
// lo muestre; no hay remoción especulativa.
func (c *DetailController) Confirm(ctx context.Context) error {
	switch c.state {
	case ConfirmingSingleRevoke:
		return c.confirmSingle(ctx)
	case ConfirmingGroupRevoke:
		return c.confirmGroup(ctx)
	default:
		return ErrBadState
	}
}

func (c *DetailController) confirmSingle(ctx context.Context) error {
	group, found, err := c.Group(ctx)
	if err != nil {
		c.state = Viewing
		return err
	}
	if !found {
		c.state = Viewing
		return ErrBadState
	}

	target := c.target
	c.target = Grant{}
	c.state = Updating

	if err := c.svc.RevokeGrant(ctx, target.UUID); err != nil {
		c.state = Viewing
		return err
	}

	if len(group.Items) <= 1 {
		// Era el último grant del grupo: el grupo ya no existe.
		c.state = Viewing
		c.nav.Back()
		return nil
	}

	if _, err := c.svc.RefetchGroups(ctx); err != nil {
		c.log.Error("error while refetching data", map[string]any{"err": err.Error()})
	}
	c.state = Viewing
	return nil
}

func (c *DetailController) confirmGroup(ctx context.Context) error {
	group, found, err := c.Group(ctx)
	if err != nil {
		c.state = Viewing
		return err
	}
	if !found {
		c.state = Viewing
		return ErrBadState
	}

	c.state = Updating
	if err := c.svc.RevokeGroup(ctx, group); err != nil {
		c.state = Viewing
		return err
	}

	c.state = Viewing
	c.nav.Back()
	return nil
}
