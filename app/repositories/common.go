package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// Key prefixes for different entity types
	UserKeyPrefix = "user:"
	PostKeyPrefix = "post:"

	// ListLimit caps how many documents a single listing returns.
	ListLimit = 100
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateUser = errors.New("username already registered")

	// ErrNotFoundOrUnauthorized deliberately merges "no such post" and
	// "post owned by someone else" so callers cannot probe for the
	// existence of other authors' documents.
	ErrNotFoundOrUnauthorized = errors.New("post not found or unauthorized")
)

func userKey(username string) []byte {
	return []byte(UserKeyPrefix + username)
}

func postKey(id string) []byte {
	return []byte(PostKeyPrefix + id)
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
