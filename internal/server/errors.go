// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errNoServersToRun      = errors.New("no servers to run")
	errMissingHandler      = errors.New("address is set but its handler is missing")
)
