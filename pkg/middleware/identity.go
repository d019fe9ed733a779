package middleware

import "net/http"

// UserIDHeader carries the caller's stable user id, resolved and
// authenticated by the upstream gateway. The service trusts it as-is.
const UserIDHeader = "X-User-Id"

// CallerID returns the authenticated caller id for a request, or "" when the
// request is anonymous.
func CallerID(r *http.Request) string {
	return r.Header.Get(UserIDHeader)
}
