package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mitchfriedman/siphon/internal/queue"
	"github.com/mitchfriedman/siphon/internal/runtime"
	queuesvc "github.com/mitchfriedman/siphon/internal/services/queues"
)

// QueuesController handles all queue-related HTTP endpoints: queue
// creation and listing plus the job enqueue/dequeue flow.
type QueuesController struct {
	rt  *runtime.Runtime
	svc *queuesvc.Service
}

// NewQueuesController creates a new queues controller.
func NewQueuesController(rt *runtime.Runtime, svc *queuesvc.Service) *QueuesController {
	return &QueuesController{
		rt:  rt,
		svc: svc,
	}
}

// RegisterRoutes registers all queue-related routes with the given router.
func (c *QueuesController) RegisterRoutes(r chi.Router) {
	r.Get("/v1/queues", c.handleList)
	r.Post("/v1/queues/create", c.handleCreate)
	r.Post("/v1/queues/enqueue", c.handleEnqueue)
	r.Post("/v1/queues/dequeue", c.handleDequeue)
}

// handleList returns the names of all registered queues.
func (c *QueuesController) handleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"queues": c.svc.Queues(r.Context())})
}

// handleCreate registers a queue. Returns 201 Created; creating a name
// again succeeds and replaces the registration.
func (c *QueuesController) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req queueCreateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "queue name required")
		return
	}
	if err := c.svc.Create(r.Context(), req.Name); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, createResp{
		Status: "created",
		ID:     req.Name,
		Queue:  queueInfo{Name: req.Name},
	})
}

// handleEnqueue stores a job and appends its key to the named queue.
func (c *QueuesController) handleEnqueue(w http.ResponseWriter, r *http.Request) {
	var req enqueueReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Queue == "" {
		writeError(w, http.StatusBadRequest, "queue name required")
		return
	}
	if req.Key == "" {
		writeError(w, http.StatusBadRequest, "job key required")
		return
	}

	err := c.svc.Enqueue(r.Context(), req.Queue, req.Key, req.Fields)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, enqueueResp{
			Status: "enqueued",
			Queue:  req.Queue,
			Key:    req.Key,
		})
	case errors.Is(err, queue.ErrQueueNotFound):
		writeError(w, http.StatusNotFound, "a queue with that name does not exist")
	default:
		writeError(w, http.StatusServiceUnavailable, "job store unavailable")
	}
}

// handleDequeue pops the oldest pending job from the named queue.
//
// An empty queue is a normal outcome and answers 200 with status "empty".
// A job whose fields were lost answers 200 with status "partial" and the
// consumed key.
func (c *QueuesController) handleDequeue(w http.ResponseWriter, r *http.Request) {
	var req dequeueReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Queue == "" {
		writeError(w, http.StatusBadRequest, "queue name required")
		return
	}

	job, err := c.svc.Dequeue(r.Context(), req.Queue)
	var pe *queue.PartialJobError
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, dequeueResp{
			Status: "ok",
			Key:    job.Key,
			Fields: job.Fields,
		})
	case errors.Is(err, queue.ErrQueueNotFound):
		writeError(w, http.StatusNotFound, "a queue with that name does not exist")
	case errors.Is(err, queue.ErrEmpty):
		writeJSON(w, http.StatusOK, dequeueResp{
			Status:  "empty",
			Message: "queue is empty",
		})
	case errors.As(err, &pe):
		writeJSON(w, http.StatusOK, dequeueResp{
			Status: "partial",
			Key:    pe.Key,
		})
	default:
		writeError(w, http.StatusServiceUnavailable, "job store unavailable")
	}
}
