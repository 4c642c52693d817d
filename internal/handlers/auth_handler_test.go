package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUsernameTaken(t *testing.T) {
	assert.True(t, usernameTaken(gorm.ErrDuplicatedKey))
	assert.True(t, usernameTaken(fmt.Errorf("create user: %w", gorm.ErrDuplicatedKey)))

	assert.False(t, usernameTaken(errors.New("connection refused")))
	assert.False(t, usernameTaken(gorm.ErrRecordNotFound))
	assert.False(t, usernameTaken(nil))
}
