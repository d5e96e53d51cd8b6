//go:build unit

package user_test

import (
	"testing"

	"sportfields/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		want  string
		errIs error
	}{
		{name: "plain address OK", in: "ion.popescu@gmail.com", want: "ion.popescu@gmail.com"},
		{name: "case and whitespace normalized", in: "  Ion.Popescu@Gmail.COM ", want: "ion.popescu@gmail.com"},
		{name: "missing at NG", in: "ion.popescu.gmail.com", errIs: user.ErrInvalidEmail},
		{name: "empty local part NG", in: "@gmail.com", errIs: user.ErrInvalidEmail},
		{name: "empty domain NG", in: "ion.popescu@", errIs: user.ErrInvalidEmail},
		{name: "double at NG", in: "ion@popescu@gmail.com", errIs: user.ErrInvalidEmail},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := user.NewEmail(tc.in)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, email.String())
		})
	}
}

func TestEmailLocalPart(t *testing.T) {
	email, err := user.NewEmail("ion.popescu@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, "ion.popescu", email.LocalPart())
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("ion.popescu@gmail.com")
	require.NoError(t, err)

	t.Run("username comes from the email local part", func(t *testing.T) {
		u, err := user.NewUser(email, "Ion", "Popescu", "hashed", user.RoleAthlete)
		require.NoError(t, err)

		assert.Equal(t, "ion.popescu", u.Username())
		assert.Equal(t, user.RoleAthlete, u.Role())
		assert.False(t, u.IsOwner())
	})

	t.Run("owner role is recognized", func(t *testing.T) {
		u, err := user.NewUser(email, "Ion", "Popescu", "hashed", user.RoleOwner)
		require.NoError(t, err)
		assert.True(t, u.IsOwner())
	})

	t.Run("blank names are rejected", func(t *testing.T) {
		_, err := user.NewUser(email, "  ", "Popescu", "hashed", user.RoleAthlete)
		assert.ErrorIs(t, err, user.ErrEmptyName)

		_, err = user.NewUser(email, "Ion", "", "hashed", user.RoleAthlete)
		assert.ErrorIs(t, err, user.ErrEmptyName)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := user.NewUser(email, "Ion", "Popescu", "hashed", user.Role("admin"))
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}
