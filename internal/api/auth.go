package api

import (
	"encoding/json"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Login")
	defer span.End()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid body"})
		return
	}

	user, err := h.auth.Login(ctx, sessionID(r), req.Email, req.Password)
	if err != nil {
		h.log.Warn("login failed", "email", req.Email, "err", err)
		respondJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Register")
	defer span.End()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid body"})
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "username, email and password are required"})
		return
	}

	user, err := h.auth.Register(ctx, sessionID(r), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Logout")
	defer span.End()

	if err := h.auth.Logout(ctx, sessionID(r)); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "Me")
	defer span.End()

	user, err := h.auth.Current(ctx, sessionID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	if user == nil {
		respondJSON(w, http.StatusUnauthorized, errorBody{Error: "not authenticated"})
		return
	}
	respondJSON(w, http.StatusOK, user)
}
