package queries

import (
	"context"
	"database/sql"
	"errors"

	"manufacturing/internal/core/domain/model/workorder"
	"manufacturing/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetWorkCenterLoadQueryHandler struct {
	db *gorm.DB
}

func NewGetWorkCenterLoadQueryHandler(db *gorm.DB) GetWorkCenterLoadQueryHandler {
	return GetWorkCenterLoadQueryHandler{db: db}
}

func (h GetWorkCenterLoadQueryHandler) Handle(
	ctx context.Context,
	query GetWorkCenterLoadQuery,
) (WorkCenterLoadResponse, error) {
	if err := query.Validate(); err != nil {
		return WorkCenterLoadResponse{}, err
	}

	resp := WorkCenterLoadResponse{WorkCenterID: query.WorkCenterID()}
	err := h.db.WithContext(ctx).Raw(`
		SELECT wc.capacity, `+loadSQL+`
		FROM work_centers wc
		WHERE wc.id = ?
	`, int(workorder.Planned), int(workorder.InProgress), query.WorkCenterID().String()).
		Row().Scan(&resp.Capacity, &resp.Load)
	if errors.Is(err, sql.ErrNoRows) {
		return WorkCenterLoadResponse{}, errs.NewObjectNotFoundError("work center", query.WorkCenterID().String())
	}
	if err != nil {
		return WorkCenterLoadResponse{}, err
	}

	return resp, nil
}
