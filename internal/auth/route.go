package auth

import (
	"context"
	"net/http"

	"github.com/syrilster/personio-absence-kit/internal/config"
)

type TokenHandler interface {
	ImportToken(ctx context.Context, raw string, apiURI string) (*TokenStatus, error)
	Status(ctx context.Context) (*TokenStatus, error)
}

func Routes(handler TokenHandler) []config.Route {
	return []config.Route{
		{
			Path:    "/token",
			Method:  http.MethodPost,
			Handler: ImportTokenHandler(handler),
		},
		{
			Path:    "/token/status",
			Method:  http.MethodGet,
			Handler: TokenStatusHandler(handler),
		},
	}
}
