package controllers

import (
	"net/http"

	"github.com/nikhilbhatia/shopsight-backend/api/responses"
	"github.com/nikhilbhatia/shopsight-backend/internal/executives"
	"github.com/nikhilbhatia/shopsight-backend/pkg/logger"
)

func ListExecutives(service executives.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		roster, err := service.ListExecutives(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, roster)
	}
}

func GetExecutive(service executives.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := parseIDParam(r, "executiveID")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		executive, err := service.GetExecutive(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, executive)
	}
}
