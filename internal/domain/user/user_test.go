//go:build unit

package user_test

import (
	"testing"

	"parkhub/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain address", input: "driver@example.com", want: "driver@example.com"},
		{name: "lowercased and trimmed", input: "  Driver@Example.COM ", want: "driver@example.com"},
		{name: "missing domain", input: "driver@", errIs: user.ErrInvalidEmail},
		{name: "missing at sign", input: "driver.example.com", errIs: user.ErrInvalidEmail},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
		{name: "embedded whitespace", input: "dr iver@example.com", errIs: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := user.NewEmail(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, email.String())
		})
	}
}

func TestNewRole(t *testing.T) {
	role, err := user.NewRole("admin")
	require.NoError(t, err)
	assert.True(t, role.IsAdmin())

	role, err = user.NewRole("user")
	require.NoError(t, err)
	assert.False(t, role.IsAdmin())

	_, err = user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("driver@example.com")
	require.NoError(t, err)

	u := user.NewUser("Asha", email, "hashed", user.RoleUser)

	assert.Equal(t, "Asha", u.Name())
	assert.Equal(t, email, u.Email())
	assert.Equal(t, user.RoleUser, u.Role())
	assert.True(t, u.IsActive())
}
