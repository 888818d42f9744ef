package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.HandlePage)
	mux.HandleFunc("POST /{$}", handler.HandlePage)
	mux.HandleFunc("POST /api/v1/count", handler.HandleCount)
}
