package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTypeValid(t *testing.T) {
	assert.True(t, TypeAlumni.Valid())
	assert.True(t, TypeAdmin.Valid())
	assert.False(t, UserType("student").Valid())
	assert.False(t, UserType("").Valid())
}

func TestEmploymentCurrent(t *testing.T) {
	open := Employment{StartDate: time.Now()}
	assert.True(t, open.Current())

	ended := time.Now()
	closed := Employment{StartDate: time.Now().Add(-time.Hour), EndDate: &ended}
	assert.False(t, closed.Current())
}

func TestUserJSONHidesPassword(t *testing.T) {
	user := User{
		ID:       1,
		Type:     TypeAlumni,
		Name:     "Maria Silva",
		Email:    "maria@mail.com",
		Password: "$2a$12$hash",
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "$2a$12$hash")
	assert.NotContains(t, string(raw), "password")
}
