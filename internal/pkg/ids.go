package pkg

import "github.com/google/uuid"

// GenerateSessionID - returns a random identifier for one application session.
func GenerateSessionID() string {
	return uuid.NewString()
}
