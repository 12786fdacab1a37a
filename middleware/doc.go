// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Request Logging

WithLogging wraps a handler func and logs start/completion with method, path,
and duration via slog.

# JSON Helpers

JSONResponse, ErrorResponse, and ParseJSONBody centralize JSON encoding so
handlers stay focused on their flow.

# CORS

CORS reflects the Origin header and answers preflight requests. The allowed
header list includes X-Owner-Id, which carries the requester identity on
series deletion.

# Client IP

GetClientIP walks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
