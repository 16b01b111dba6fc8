// handlers/handlers.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.temporal.io/sdk/client"

	"greeter/db"
	"greeter/shared"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	TemporalClient client.Client
	Store          *db.Store
	TaskQueue      string
}

// NewHandler creates a new Handler instance
func NewHandler(tc client.Client, store *db.Store, taskQueue string) *Handler {
	return &Handler{
		TemporalClient: tc,
		Store:          store,
		TaskQueue:      taskQueue,
	}
}

// RegisterRoutes attaches the handler's routes to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/healthz", h.HealthHandler)
	r.Post("/greetings", h.StartGreetingHandler)
	r.Get("/greetings", h.ListGreetingsHandler)
}

// HealthHandler reports liveness and names the active task queue.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"taskQueue": h.TaskQueue,
	})
}

// StartGreetingHandler starts a say-hello workflow on the task queue. The
// request body is optional; without a name the workflow uses its default.
func (h *Handler) StartGreetingHandler(w http.ResponseWriter, r *http.Request) {
	var req shared.StartGreetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	// Omit the input entirely when no name was supplied, rather than sending
	// an empty map.
	var input map[string]any
	if req.Name != nil {
		input = map[string]any{"name": *req.Name}
	}

	workflowOptions := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("say-hello-%d", time.Now().UnixNano()),
		TaskQueue: h.TaskQueue,
	}

	// Second argument is the state payload slot the DSL parent would fill.
	we, err := h.TemporalClient.ExecuteWorkflow(r.Context(), workflowOptions, shared.SayHelloWorkflowName, input, nil)
	if err != nil {
		log.Printf("Error starting workflow: %v", err)
		http.Error(w, "Failed to start greeting workflow", http.StatusInternalServerError)
		return
	}

	log.Printf("Started workflow | WorkflowID: %s | RunID: %s", we.GetID(), we.GetRunID())

	writeJSON(w, http.StatusAccepted, shared.StartGreetingResponse{
		WorkflowID: we.GetID(),
		RunID:      we.GetRunID(),
	})
}

// ListGreetingsHandler returns recently served greetings, newest first.
func (h *Handler) ListGreetingsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := h.Store.RecentGreetings(r.Context(), limit)
	if err != nil {
		log.Printf("Error listing greetings: %v", err)
		http.Error(w, "Failed to list greetings", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, records)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
