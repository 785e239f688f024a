package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"healthassist/internal/chat"
	"healthassist/internal/directory"
	"healthassist/internal/models"
	"healthassist/internal/triage"
)

const (
	defaultMaxBodySize = 1024 * 1024 // 1MB
	defaultTimeout     = 30 * time.Second
)

// HandlerConfig contains configuration for the HTTP handler
type HandlerConfig struct {
	// TypingDelay is waited before a chat reply is returned
	TypingDelay    time.Duration
	MaxBodySize    int64
	RequestTimeout time.Duration
}

// Handler serves the health assistant API. It keeps no conversation state
// between requests.
type Handler struct {
	log         *slog.Logger
	coordinator *SymptomCoordinator
	responder   Responder
	directory   *directory.Directory
	validate    *validator.Validate
	config      HandlerConfig
}

// NewHandler creates a new API handler
func NewHandler(log *slog.Logger, coordinator *SymptomCoordinator, responder Responder, dir *directory.Directory, config HandlerConfig) *Handler {
	if config.MaxBodySize == 0 {
		config.MaxBodySize = defaultMaxBodySize
	}

	if config.RequestTimeout == 0 {
		config.RequestTimeout = defaultTimeout
	}

	return &Handler{
		log:         log,
		coordinator: coordinator,
		responder:   responder,
		directory:   dir,
		validate:    validator.New(),
		config:      config,
	}
}

type symptomRequest struct {
	Symptoms string `json:"symptoms" validate:"required,max=2000"`
}

type chatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type chatResponse struct {
	Reply     string        `json:"reply"`
	Origin    models.Origin `json:"origin"`
	CreatedAt time.Time     `json:"created_at"`
}

type locationsResponse struct {
	Filter           string         `json:"filter"`
	Locations        []locationView `json:"locations"`
	EmergencyNumber  string         `json:"emergency_number"`
	EmergencyCallURL string         `json:"emergency_call_url"`
}

type locationView struct {
	models.Location
	Distance    string `json:"distance"`
	StatusLabel string `json:"status_label"`
	CallURL     string `json:"call_url"`
	NavigateURL string `json:"navigate_url"`
}

// RegisterRoutes registers the API routes
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/v1/symptoms/check", h.HandleSymptomCheck)
	mux.HandleFunc("/api/v1/symptoms/common", h.HandleCommonSymptoms)
	mux.HandleFunc("/api/v1/chat", h.HandleChat)
	mux.HandleFunc("/api/v1/chat/quick-questions", h.HandleQuickQuestions)
	mux.HandleFunc("/api/v1/locations", h.HandleLocations)
	mux.HandleFunc("/api/v1/health", h.HandleHealthCheck)
}

// HandleSymptomCheck classifies a symptom description
func (h *Handler) HandleSymptomCheck(w http.ResponseWriter, r *http.Request) {
	var body symptomRequest
	if !h.decode(w, r, &body) {
		return
	}

	body.Symptoms = strings.TrimSpace(body.Symptoms)
	if err := h.validate.Struct(body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid symptoms: %v", err), http.StatusBadRequest)
		return
	}

	h.log.Debug("Received symptom check request", "length", len(body.Symptoms))

	ctx, cancel := context.WithTimeout(r.Context(), h.config.RequestTimeout)
	defer cancel()

	report, err := h.coordinator.CheckSymptoms(ctx, body.Symptoms)
	if err != nil {
		if errors.Is(err, ErrEmptySymptoms) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to check symptoms: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, report)
}

// HandleCommonSymptoms lists the quick-pick symptom descriptions
func (h *Handler) HandleCommonSymptoms(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	h.writeJSON(w, http.StatusOK, map[string][]string{"symptoms": triage.CommonSymptoms()})
}

// HandleChat answers one chat message after the typing delay
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var body chatRequest
	if !h.decode(w, r, &body) {
		return
	}

	body.Message = strings.TrimSpace(body.Message)
	if err := h.validate.Struct(body); err != nil {
		http.Error(w, fmt.Sprintf("Invalid message: %v", err), http.StatusBadRequest)
		return
	}

	reply := h.responder.Respond(body.Message)

	ctx, cancel := context.WithTimeout(r.Context(), h.config.RequestTimeout)
	defer cancel()

	if err := chat.Wait(ctx, h.config.TypingDelay); err != nil {
		h.log.Debug("Chat request ended while typing", "error", err)
		http.Error(w, "Request canceled", http.StatusServiceUnavailable)
		return
	}

	h.writeJSON(w, http.StatusOK, chatResponse{
		Reply:     reply,
		Origin:    models.OriginBot,
		CreatedAt: time.Now().UTC(),
	})
}

// HandleQuickQuestions lists the suggested first chat questions
func (h *Handler) HandleQuickQuestions(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"greeting":  chat.Greeting,
		"questions": chat.QuickQuestions(),
	})
}

// HandleLocations lists nearby providers, optionally filtered by ?type=
func (h *Handler) HandleLocations(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	filter := r.URL.Query().Get("type")
	locations, err := h.directory.List(filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if filter == "" {
		filter = directory.FilterAll
	}

	views := make([]locationView, 0, len(locations))
	for _, l := range locations {
		views = append(views, locationView{
			Location:    l,
			Distance:    directory.FormatDistance(l.DistanceKm),
			StatusLabel: directory.StatusLabel(l.Status),
			CallURL:     directory.CallURL(l),
			NavigateURL: directory.NavigateURL(l),
		})
	}

	h.writeJSON(w, http.StatusOK, locationsResponse{
		Filter:           filter,
		Locations:        views,
		EmergencyNumber:  directory.EmergencyNumber,
		EmergencyCallURL: directory.EmergencyCallURL(),
	})
}

// HandleHealthCheck provides a basic health check endpoint
func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// decode checks method and content type and reads a size-limited JSON body into v
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if !allowMethod(w, r, http.MethodPost) {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		http.Error(w, "Content-Type must be application/json", http.StatusBadRequest)
		return false
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, h.config.MaxBodySize+1))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read request body: %v", err), http.StatusBadRequest)
		return false
	}
	defer r.Body.Close()

	if int64(len(body)) > h.config.MaxBodySize {
		http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
		return false
	}

	if err := json.Unmarshal(body, v); err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON: %v", err), http.StatusBadRequest)
		return false
	}

	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("Failed to encode response", "error", err)
	}
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.Header().Set("Allow", method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}
