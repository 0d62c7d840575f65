package http

import (
	"net/http"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/bom"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateBom handles POST /api/v1/boms.
func (s *Server) CreateBom(ctx echo.Context) error {
	var body servers.NewBom
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	components, err := toComponents(body.Components)
	if err != nil {
		return err
	}

	bomID := kernel.NewUUID()
	cmd, err := commands.NewCreateBomCommand(bomID, body.Name, components)
	if err != nil {
		return err
	}
	if err = s.commands.CreateBom.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: bomID.Bytes()})
}

// GetBom handles GET /api/v1/boms/{id}. Quantity defaults to one product.
func (s *Server) GetBom(ctx echo.Context, id openapi_types.UUID, params servers.GetBomParams) error {
	bomID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	quantity := 1
	if params.Quantity != nil {
		quantity = *params.Quantity
	}
	query, err := queries.NewGetBomQuery(bomID, quantity)
	if err != nil {
		return err
	}

	b, err := s.queries.GetBom.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := servers.Bom{
		Id:         b.ID.Bytes(),
		Name:       b.Name,
		Version:    b.Version,
		PreviousId: optionalUUID(b.PreviousID),
		Quantity:   b.Quantity,
		Components: make([]servers.BomComponent, len(b.Components)),
	}
	for i, c := range b.Components {
		response.Components[i] = servers.BomComponent{
			StockItemId:   c.StockItemID.Bytes(),
			StockItemName: c.StockItemName,
			PerUnit:       c.PerUnit,
			Required:      c.Required,
			Available:     c.Available,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// DeleteBom handles DELETE /api/v1/boms/{id}.
func (s *Server) DeleteBom(ctx echo.Context, id openapi_types.UUID) error {
	bomID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteBomCommand(bomID)
	if err != nil {
		return err
	}

	if err = s.commands.DeleteBom.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ReviseBom handles POST /api/v1/boms/{id}/revisions and returns the id of
// the new version.
func (s *Server) ReviseBom(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.BomRevision
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	bomID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	components, err := toComponents(body.Components)
	if err != nil {
		return err
	}

	revisionID := kernel.NewUUID()
	cmd, err := commands.NewReviseBomCommand(bomID, revisionID, components)
	if err != nil {
		return err
	}
	if err = s.commands.ReviseBom.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: revisionID.Bytes()})
}

func toComponents(lines []servers.ComponentLine) ([]bom.Component, error) {
	components := make([]bom.Component, 0, len(lines))
	for _, line := range lines {
		itemID, err := toKernelUUID(line.StockItemId)
		if err != nil {
			return nil, err
		}
		c, err := bom.NewComponent(itemID, line.PerUnit)
		if err != nil {
			return nil, err
		}
		components = append(components, c)
	}
	return components, nil
}
