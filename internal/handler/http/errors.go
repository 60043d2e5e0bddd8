// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrNoTokenProvided is returned by the auth middleware when the incoming
// request does not include an "Authorization" header at all. Its text is the
// message clients see in the 401 envelope.
var ErrNoTokenProvided = errors.New("no token provided")
