package middlewares

import (
	"net/http"

	"github.com/syrilster/personio-absence-kit/internal/util"
)

// RuntimeHealthCheck answers the liveness probe
func RuntimeHealthCheck() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		util.WithBodyAndStatus("All OK", http.StatusOK, w)
	}
}
