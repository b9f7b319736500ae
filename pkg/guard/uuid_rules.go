package guard

import "github.com/google/uuid"

// NotNilUUID fails when id is uuid.Nil, the all-zero identifier.
func NotNilUUID(id uuid.UUID) error {
	return NotNilUUIDMsg(id, "")
}

func NotNilUUIDMsg(id uuid.UUID, message string) error {
	if id == uuid.Nil {
		return invalid(message)
	}
	return nil
}
