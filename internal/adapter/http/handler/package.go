package handler

import (
	"net/http"

	"github.com/vahanex/vahanex-server/internal/domain/models"
	"github.com/vahanex/vahanex-server/pkg/logger"
	wrap "github.com/vahanex/vahanex-server/pkg/logger/wrapper"
)

// Package serves the static training package catalogue.
type Package struct {
	l logger.Logger
}

func NewPackage(l logger.Logger) *Package {
	return &Package{
		l: l,
	}
}

func (h *Package) List(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "list_packages")

	response := envelope{
		"message": "success",
		"data":    models.TrainingPackages(),
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write response", err)
		internalErrorResponse(w, err.Error())
	}
}
