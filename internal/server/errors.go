// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler    = errors.New("http handler is not initialised")
	errEmptyHTTPAddress = errors.New("http listen address is empty")
)
