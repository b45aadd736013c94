package cart

import (
	"encoding/json"
	"net/http"

	"github.com/Moustafa-Elbaloty/souq-backend/internal/apperr"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/auth"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
	jwtKey  []byte
}

func NewHandler(service Service, jwtKey []byte) *Handler {
	return &Handler{service: service, jwtKey: jwtKey}
}

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Group(func(r chi.Router) {
		r.Use(auth.Protect(h.jwtKey))

		r.Get("/cart", h.getCart)
		r.Post("/cart/items", h.addItem)
		r.Put("/cart/items/{productId}", h.updateItem)
		r.Delete("/cart/items/{productId}", h.removeItem)
		r.Delete("/cart", h.clearCart)
	})
}

// targetUser is the admin-only override passed as ?user_id=.
func targetUser(r *http.Request) string {
	return r.URL.Query().Get("user_id")
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.PrincipalFrom(r.Context())

	c, err := h.service.GetCart(r.Context(), caller, targetUser(r))
	if err != nil {
		http.Error(w, err.Error(), apperr.Status(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.PrincipalFrom(r.Context())

	type request struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.service.AddItem(r.Context(), caller, targetUser(r), req.ProductID, req.Quantity)
	if err != nil {
		http.Error(w, err.Error(), apperr.Status(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.PrincipalFrom(r.Context())

	type request struct {
		Quantity int `json:"quantity"`
	}
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.service.UpdateItem(r.Context(), caller, targetUser(r), chi.URLParam(r, "productId"), req.Quantity)
	if err != nil {
		http.Error(w, err.Error(), apperr.Status(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.PrincipalFrom(r.Context())

	c, err := h.service.RemoveItem(r.Context(), caller, targetUser(r), chi.URLParam(r, "productId"))
	if err != nil {
		http.Error(w, err.Error(), apperr.Status(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.PrincipalFrom(r.Context())

	if err := h.service.Clear(r.Context(), caller, targetUser(r)); err != nil {
		http.Error(w, err.Error(), apperr.Status(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "cart cleared"})
}
