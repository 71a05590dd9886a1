package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/ratiba/core/schedule"
)

type scheduleApi struct {
	svc *schedule.Service
}

func registerScheduleAPI(g *echo.Group, svc *schedule.Service) {
	api := scheduleApi{svc: svc}

	eg := g.Group("/events")
	eg.GET("", api.query)
	eg.POST("", api.create)
	eg.GET("/types", api.queryTypes)

	// detail endpoints
	dg := eg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.POST("/move", api.move)
	dg.DELETE("", api.destroy)
}

// Handlers

func (api *scheduleApi) create(ctx echo.Context) error {
	var data schedule.NewEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEvent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	evt, err := api.svc.CreateEvent(data)
	if err != nil {
		return errors.Wrap(err, "creating event")
	}
	return ctx.JSON(http.StatusCreated, evt)
}

func (api *scheduleApi) query(ctx echo.Context) error {
	var filter schedule.QueryFilter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to QueryFilter")
	}
	filter.Clean()

	var ord Ordering
	ord.Bind(ctx)
	filter.Orderings = ord.Orderings

	events, err := api.svc.Filter(filter)
	if err != nil {
		return errors.Wrap(err, "filtering events")
	}
	return ctx.JSON(http.StatusOK, events)
}

func (api *scheduleApi) queryTypes(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, schedule.Types)
}

func (api *scheduleApi) retrieve(ctx echo.Context) error {
	evt, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, evt)
}

func (api *scheduleApi) update(ctx echo.Context) error {
	evt, err := api.svc.GetByID(ctx.Param("id"))
	if err != nil {
		return err
	}

	var data schedule.UpdateEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEvent")
	}
	if err := data.Validate(evt); err != nil {
		return err
	}

	evt, err = api.svc.UpdateEvent(evt.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating event")
	}
	return ctx.JSON(http.StatusOK, evt)
}

// move applies a drag-placement drop: new start/end for an existing event.
func (api *scheduleApi) move(ctx echo.Context) error {
	var data schedule.MoveEvent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to MoveEvent")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	evt, err := api.svc.MoveEvent(ctx.Param("id"), data)
	if err != nil {
		if err == schedule.ErrNotFound {
			return err
		}
		return errors.Wrap(err, "moving event")
	}
	return ctx.JSON(http.StatusOK, evt)
}

func (api *scheduleApi) destroy(ctx echo.Context) error {
	if _, err := api.svc.GetByID(ctx.Param("id")); err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting event")
	}
	return ctx.NoContent(http.StatusNoContent)
}
