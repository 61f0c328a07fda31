// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated means the server config names neither an HTTP
	// nor a gRPC address.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNilServices means an HTTP address is configured but there are no
	// services to route requests to.
	errNilServices = errors.New("http handler needs services")
)
