package controllers

import (
	"github.com/go-chi/chi/v5"

	"github.com/mitchfriedman/siphon/internal/runtime"
	queuesvc "github.com/mitchfriedman/siphon/internal/services/queues"
)

// ControllerRegistry manages all HTTP controllers.
//
// It provides a centralized way to register all controller routes.
type ControllerRegistry struct {
	general *GeneralController
	queues  *QueuesController
}

// NewControllerRegistry creates a new controller registry.
//
// It initializes all controllers with the provided runtime and services.
func NewControllerRegistry(rt *runtime.Runtime, queuesSvc *queuesvc.Service) *ControllerRegistry {
	return &ControllerRegistry{
		general: NewGeneralController(rt),
		queues:  NewQueuesController(rt, queuesSvc),
	}
}

// RegisterAllRoutes registers all controller routes with the given router.
func (r *ControllerRegistry) RegisterAllRoutes(router chi.Router) {
	r.general.RegisterRoutes(router)
	r.queues.RegisterRoutes(router)
}
