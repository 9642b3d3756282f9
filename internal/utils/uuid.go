package utils

import "github.com/google/uuid"

// IDGenerator hands out ids for the transaction journal.
type IDGenerator interface {
	Generate() string
}

// IDFunc adapts a plain function to IDGenerator.
type IDFunc func() string

func (f IDFunc) Generate() string { return f() }

// UUIDGenerator returns UUIDv7 strings, so journal rows listed by id come
// out in send order.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		// v7 only fails when the random source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}
