package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ichaoui56/service-stock2/internal/apperr"
)

func TestSignUpHashesPassword(t *testing.T) {
	env := newTestEnv(t)

	user, err := env.auth.SignUp(SignUpInput{
		Name: "Alice", Email: "alice@techvault.com", Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)

	stored, err := env.users.FindByEmail("alice@techvault.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", stored.Password, "plaintext never stored")
	assert.True(t, stored.CheckPassword("s3cret-pass"))
	assert.False(t, stored.CheckPassword("wrong"))
}

func TestSignUpDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.SignUp(SignUpInput{Name: "Alice", Email: "alice@techvault.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = env.auth.SignUp(SignUpInput{Name: "Other", Email: "alice@techvault.com", Password: "different1"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindDuplicateKey, apperr.KindOf(err))
	assert.Equal(t, "User already exists", err.Error())
}

func TestSignUpValidation(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name  string
		input SignUpInput
	}{
		{"bad email", SignUpInput{Name: "Alice", Email: "not-an-email", Password: "s3cret-pass"}},
		{"short password", SignUpInput{Name: "Alice", Email: "alice@techvault.com", Password: "abc"}},
		{"missing name", SignUpInput{Email: "alice@techvault.com", Password: "s3cret-pass"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.auth.SignUp(tc.input)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestLoginAndValidateToken(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.auth.SignUp(SignUpInput{Name: "Alice", Email: "alice@techvault.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	resp, err := env.auth.Login(LoginInput{Email: "alice@techvault.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice@techvault.com", resp.User.Email)

	user, err := env.auth.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.auth.SignUp(SignUpInput{Name: "Alice", Email: "alice@techvault.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = env.auth.Login(LoginInput{Email: "alice@techvault.com", Password: "wrong-pass"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidCredentials, apperr.KindOf(err))

	_, err = env.auth.Login(LoginInput{Email: "nobody@techvault.com", Password: "s3cret-pass"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidCredentials, apperr.KindOf(err))
}

func TestSecondLoginInvalidatesFirstSession(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.auth.SignUp(SignUpInput{Name: "Alice", Email: "alice@techvault.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	first, err := env.auth.Login(LoginInput{Email: "alice@techvault.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	second, err := env.auth.Login(LoginInput{Email: "alice@techvault.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = env.auth.ValidateToken(second.Token)
	require.NoError(t, err)

	_, err = env.auth.ValidateToken(first.Token)
	require.Error(t, err, "stale token version rejected")
}
