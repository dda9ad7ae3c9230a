package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rasupy/todo-myapp/internal/domain"
)

func TestNewUserNormalizesInput(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("  Alice  ", "  Alice@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestNewUserValidation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		userName  string
		email     string
		wantedErr error
	}{
		{name: "empty name", userName: "   ", email: "a@b.com", wantedErr: domain.ErrEmptyName},
		{name: "empty email", userName: "Alice", email: "", wantedErr: domain.ErrEmptyEmail},
		{name: "missing at sign", userName: "Alice", email: "alice.example.com", wantedErr: domain.ErrInvalidEmail},
		{name: "missing local part", userName: "Alice", email: "@example.com", wantedErr: domain.ErrInvalidEmail},
		{name: "missing domain dot", userName: "Alice", email: "alice@example", wantedErr: domain.ErrInvalidEmail},
		{name: "trailing dot", userName: "Alice", email: "alice@example.", wantedErr: domain.ErrInvalidEmail},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := domain.NewUser(tc.userName, tc.email)
			assert.ErrorIs(t, err, tc.wantedErr)
		})
	}
}

func TestUserValidateRequiresHashedPassword(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("Alice", "alice@example.com")
	require.NoError(t, err)

	assert.ErrorIs(t, user.Validate(), domain.ErrEmptyHashedPassword)

	user.HashedPassword = "$2a$10$notarealhashbutnonempty"
	assert.NoError(t, user.Validate())
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "x@y.co", domain.NormalizeEmail("  X@Y.Co\t"))
}
