package auth

import (
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/syrilster/personio-absence-kit/internal/tokenstore"
	"github.com/syrilster/personio-absence-kit/internal/util"
	"github.com/syrilster/personio-absence-kit/pkg/personio"
)

func ImportTokenHandler(handler TokenHandler) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		contextLogger := log.WithContext(ctx)
		if err := r.ParseForm(); err != nil {
			contextLogger.WithError(err).Error("could not parse incoming form")
			util.WithBodyAndStatus(nil, http.StatusBadRequest, w)
			return
		}

		status, err := handler.ImportToken(ctx, r.FormValue("token"), r.FormValue("api_uri"))
		if err != nil {
			if errors.Is(err, personio.ErrEmptyToken) {
				util.WithBodyAndStatus("token is required", http.StatusBadRequest, w)
				return
			}
			contextLogger.WithError(err).Error("Failed to import the access token")
			util.WithBodyAndStatus("Failed to import the access token", http.StatusBadRequest, w)
			return
		}
		util.WithBodyAndStatus(status, http.StatusCreated, w)
	}
}

func TokenStatusHandler(handler TokenHandler) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		status, err := handler.Status(ctx)
		if errors.Is(err, tokenstore.ErrNoToken) {
			util.WithBodyAndStatus("No access token stored", http.StatusNotFound, w)
			return
		}
		if err != nil {
			log.WithContext(ctx).WithError(err).Error("Failed to read the access token")
			util.WithBodyAndStatus(nil, http.StatusInternalServerError, w)
			return
		}
		util.WithBodyAndStatus(status, http.StatusOK, w)
	}
}
