package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/orgdb/internal/users"
	"github.com/dmitrymomot/orgdb/pkg/logger"
)

const maxBodyBytes = 1 << 20

type handlers struct {
	deps Deps
	errs errorWriter
}

func (h *handlers) createUser(w http.ResponseWriter, r *http.Request) {
	var in users.User
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&in); err != nil {
		h.errs.write(w, r, errors.Join(ErrInvalidJSON, err))
		return
	}

	u, err := h.deps.Store.Create(r.Context(), in)
	if err != nil {
		h.errs.write(w, r, err)
		return
	}

	h.deps.Logger.InfoContext(r.Context(), "user created",
		logger.Database(h.deps.Database(r.Context())),
		logger.UserID(u.ID),
	)
	writeJSON(w, http.StatusOK, u)
}

func (h *handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.deps.Store.List(r.Context())
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *handlers) generateOrgID(w http.ResponseWriter, r *http.Request) {
	id, err := h.deps.NewID()
	if err != nil {
		h.errs.write(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(id.String()))
}
