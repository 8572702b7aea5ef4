package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// GenerateReceiptNo generates a unique receipt number such as "RC-1F3A9B2C"
func GenerateReceiptNo(prefix string) string {
	return prefix + strings.ToUpper(uuid.New().String()[:8])
}
