// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// DefaultCallerTokenHeader is the inbound header checked when the gateway
// configuration does not name one.
const DefaultCallerTokenHeader = "X-Access-Token"

// ErrMissingCallerToken is logged by the caller token middleware when the
// inbound request carries no caller token.
var ErrMissingCallerToken = errors.New("empty caller token header")
