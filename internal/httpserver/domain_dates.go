package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	datesHTTP "actionsense/internal/dates/delivery/http"
	datesUC "actionsense/internal/dates/usecase"
)

// setupDatesDomain registers /api/v1/dates.
func (srv *HTTPServer) setupDatesDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := datesUC.New(srv.l, srv.resolver, srv.now)
	h := datesHTTP.New(srv.l, uc, srv.resolver.Location())
	datesHTTP.RegisterRoutes(api.Group("/dates"), h)

	srv.l.Infof(ctx, "Dates domain registered (rules %s, %s)", srv.resolver.Version(), srv.resolver.Location())
	return nil
}
