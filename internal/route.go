package internal

import (
	"context"
	"net/http"

	"github.com/syrilster/personio-absence-kit/internal/config"
)

type AbsenceAPIHandler interface {
	SummariseAbsences(ctx context.Context, xlsPath string) ([]string, []string)
}

func Route(absenceHandler AbsenceAPIHandler, xlsFileLocation string) (route config.Route) {
	route = config.Route{
		Path:    "/absences/summary",
		Method:  http.MethodPost,
		Handler: Handler(absenceHandler, xlsFileLocation),
	}

	return route
}
