package http

import "errors"

// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
// incoming request does not include an "Authorization" header at all.
// Malformed header values surface the error from [utils.ParseBearerToken]
// instead.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
