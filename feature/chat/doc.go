// Package chat proxies questions to a third-party conversational-AI API.
//
// The handler is a thin pass-through: it validates that a message is
// present, wraps it in the upstream request shape and returns the upstream
// JSON response verbatim. Upstream failures surface as a generic internal
// error without leaking provider detail.
package chat
