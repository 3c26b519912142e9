package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSetAndCheckPassword(t *testing.T) {
	u := &User{UID: 3, Name: "admin", Mail: "admin@example.org"}
	require.NoError(t, u.SetPassword("secret-pass"))

	cost, err := bcrypt.Cost([]byte(u.Pass))
	require.NoError(t, err)
	assert.Equal(t, PasswordHashCost, cost)

	assert.True(t, u.CheckPassword("secret-pass"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestCheckPasswordRejectsLegacyHash(t *testing.T) {
	u := &User{Pass: "$S$DlegacyDrupalHash"}
	assert.False(t, u.CheckPassword("anything"))
}

func TestSessionUser(t *testing.T) {
	u := &User{UID: 42, Name: "admin", Mail: "admin@example.org"}
	assert.Equal(t, SessionUser{ID: "42", Name: "admin", Email: "admin@example.org"}, u.SessionUser())
}
