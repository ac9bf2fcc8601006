package domain

import "github.com/google/uuid"

// UserID uniquely identifies the user owning scans and reports. It is a thin
// wrapper around uuid.UUID to provide type safety at the domain layer; user
// identity itself is established by the API bearer token, not stored here.
type UserID uuid.UUID
