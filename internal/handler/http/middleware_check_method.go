// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 whenever a path matches but the method does not. This
// handler answers 404 instead, so an unsupported method on a known path
// looks the same as an unknown path. If the router does match the method
// (e.g. after a subrouter fallthrough) the request is served normally.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
