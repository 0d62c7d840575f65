package http

import (
	"net/http"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListWorkCenters handles GET /api/v1/work-centers.
func (s *Server) ListWorkCenters(ctx echo.Context) error {
	centers, err := s.queries.ListWorkCenters.Handle(ctx.Request().Context(), queries.NewListWorkCentersQuery())
	if err != nil {
		return err
	}

	response := make([]servers.WorkCenter, len(centers))
	for i, c := range centers {
		response[i] = servers.WorkCenter{
			Id:            c.ID.Bytes(),
			Name:          c.Name,
			CostPerHour:   c.CostPerHour.String(),
			Capacity:      c.Capacity,
			DowntimeHours: c.DowntimeHours.String(),
			Load:          c.Load,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateWorkCenter handles POST /api/v1/work-centers.
func (s *Server) CreateWorkCenter(ctx echo.Context) error {
	var body servers.NewWorkCenter
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	costPerHour, err := parseDecimal("costPerHour", body.CostPerHour)
	if err != nil {
		return err
	}

	centerID := kernel.NewUUID()
	cmd, err := commands.NewCreateWorkCenterCommand(centerID, body.Name, costPerHour, body.Capacity)
	if err != nil {
		return err
	}
	if err = s.commands.CreateWorkCenter.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: centerID.Bytes()})
}

// DeleteWorkCenter handles DELETE /api/v1/work-centers/{id}.
func (s *Server) DeleteWorkCenter(ctx echo.Context, id openapi_types.UUID) error {
	centerID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteWorkCenterCommand(centerID)
	if err != nil {
		return err
	}

	if err = s.commands.DeleteWorkCenter.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetWorkCenterLoad handles GET /api/v1/work-centers/{id}/load.
func (s *Server) GetWorkCenterLoad(ctx echo.Context, id openapi_types.UUID) error {
	centerID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetWorkCenterLoadQuery(centerID)
	if err != nil {
		return err
	}

	load, err := s.queries.GetWorkCenterLoad.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.WorkCenterLoad{
		WorkCenterId: load.WorkCenterID.Bytes(),
		Load:         load.Load,
		Capacity:     load.Capacity,
	})
}

// RecordDowntime handles POST /api/v1/work-centers/{id}/downtime.
func (s *Server) RecordDowntime(ctx echo.Context, id openapi_types.UUID) error {
	var body servers.Downtime
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	centerID, err := toKernelUUID(id)
	if err != nil {
		return err
	}
	hours, err := parseDecimal("hours", body.Hours)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRecordDowntimeCommand(centerID, hours)
	if err != nil {
		return err
	}

	if err = s.commands.RecordDowntime.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
