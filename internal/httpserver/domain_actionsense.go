package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	asHTTP "actionsense/internal/actionsense/delivery/http"
	"actionsense/internal/actionsense/detector"
	asRepo "actionsense/internal/actionsense/repository/memory"
	asUC "actionsense/internal/actionsense/usecase"
)

// setupActionSenseDomain wires repository, detector, usecase and handler,
// then registers /api/v1/actionsense.
func (srv *HTTPServer) setupActionSenseDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo, err := asRepo.New(srv.l, srv.storeSize, srv.now)
	if err != nil {
		return fmt.Errorf("actionsense repository: %w", err)
	}

	// 2. Detector
	det, err := detector.New(srv.resolver, detector.DefaultRules())
	if err != nil {
		return fmt.Errorf("actionsense detector: %w", err)
	}

	// 3. UseCase
	uc := asUC.New(srv.l, repo, det, srv.resolver, srv.extractor, srv.actionSenseOpts, srv.now)

	// 4. Routes
	h := asHTTP.New(srv.l, uc, srv.resolver.Location())
	asHTTP.RegisterRoutes(api.Group("/actionsense"), h)

	if srv.extractor == nil {
		srv.l.Infof(ctx, "ActionSense domain registered (LLM fallback off)")
	} else {
		srv.l.Infof(ctx, "ActionSense domain registered (LLM fallback below %.2f)", srv.actionSenseOpts.LLMFallbackThreshold)
	}
	return nil
}
