package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailWellFormed(t *testing.T) {
	assert.True(t, IsEmailWellFormed("ana@example.com"))
	assert.True(t, IsEmailWellFormed("ana.maria+tag@mail.example.org"))

	assert.False(t, IsEmailWellFormed(""))
	assert.False(t, IsEmailWellFormed("ana"))
	assert.False(t, IsEmailWellFormed("ana@localhost"))
	assert.False(t, IsEmailWellFormed("Ana <ana@example.com>"))
	assert.False(t, IsEmailWellFormed("@example.com"))
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	assert.False(t, IsEmailDomainValid("ana"))
	assert.False(t, IsEmailDomainValid("ana@"))
}
