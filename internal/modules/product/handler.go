package product

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Moustafa-Elbaloty/souq-backend/internal/apperr"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/auth"
	"github.com/Moustafa-Elbaloty/souq-backend/internal/modules/user"
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
	router.Get("/products", h.listProducts)
	router.Get("/products/{id}", h.getProduct)
	router.Get("/products/{id}/stock-check", h.stockCheck)

	router.Group(func(r chi.Router) {
		r.Use(auth.Protect(h.jwtKey))
		r.With(auth.RequireRole(user.RoleMerchant)).Post("/products", h.addProduct)
		r.Put("/products/{id}", h.updateProduct)
		r.Delete("/products/{id}", h.deleteProduct)
	})
}

func (h *Handler) addProduct(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.PrincipalFrom(r.Context())

	var req SaveProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.service.AddProduct(r.Context(), caller, req)
	if err != nil {
		http.Error(w, err.Error(), apperr.Status(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.PrincipalFrom(r.Context())

	var req SaveProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := h.service.UpdateProduct(r.Context(), caller, chi.URLParam(r, "id"), req)
	if err != nil {
		http.Error(w, err.Error(), apperr.Status(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.PrincipalFrom(r.Context())

	if err := h.service.DeleteProduct(r.Context(), caller, chi.URLParam(r, "id")); err != nil {
		http.Error(w, err.Error(), apperr.Status(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "product deleted"})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), apperr.Status(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		http.Error(w, err.Error(), apperr.Status(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

func (h *Handler) stockCheck(w http.ResponseWriter, r *http.Request) {
	qty, err := strconv.Atoi(r.URL.Query().Get("qty"))
	if err != nil {
		http.Error(w, "qty must be an integer", http.StatusBadRequest)
		return
	}

	check, err := h.service.StockCheck(r.Context(), chi.URLParam(r, "id"), qty)
	if err != nil {
		http.Error(w, err.Error(), apperr.Status(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(check)
}
