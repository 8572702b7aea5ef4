package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReceiptNo(t *testing.T) {
	first := GenerateReceiptNo("RC-")
	second := GenerateReceiptNo("RC-")

	assert.True(t, strings.HasPrefix(first, "RC-"))
	assert.Len(t, first, len("RC-")+8)
	assert.Equal(t, strings.ToUpper(first), first)
	assert.NotEqual(t, first, second)
}

func TestNewUUID(t *testing.T) {
	assert.NotEqual(t, NewUUID(), NewUUID())
}
