package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	schHTTP "actionsense/internal/schedule/delivery/http"
	schUC "actionsense/internal/schedule/usecase"
)

// setupScheduleDomain registers /api/v1/schedule. Without a calendar the
// parse route still works and export answers 503.
func (srv *HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := schUC.New(srv.l, srv.resolver, srv.calendar, srv.scheduleOpts, srv.now)
	h := schHTTP.New(srv.l, uc, srv.resolver.Location())
	schHTTP.RegisterRoutes(api.Group("/schedule"), h)

	if srv.calendar == nil {
		srv.l.Warnf(ctx, "Schedule domain registered without Google Calendar, export disabled")
	} else {
		srv.l.Infof(ctx, "Schedule domain registered")
	}
	return nil
}
