package utils

import "github.com/google/uuid"

// UUIDGenerator produces unique identifiers for request tracing and
// stored image file names. UUIDv7 keeps generated names roughly
// time-ordered on disk.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
