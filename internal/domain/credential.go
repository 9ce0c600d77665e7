package domain

import "time"

// Credential is the opaque bearer token identifying an authenticated
// session. The client never inspects or expires it; an invalid token only
// shows up as a failed request.
type Credential struct {
	Token      string
	BackendURL string
	SavedAt    time.Time
}
