package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate_Success(t *testing.T) {
	svc := NewTokenService("super-secret", time.Hour)

	tok, err := svc.Issue("admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	subject, err := svc.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestValidate_Expired(t *testing.T) {
	svc := NewTokenService("super-secret", -1*time.Second)

	tok, err := svc.Issue("admin")
	require.NoError(t, err)

	_, err = svc.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer := NewTokenService("right-secret", time.Hour)
	verifier := NewTokenService("wrong-secret", time.Hour)

	tok, err := issuer.Issue("admin")
	require.NoError(t, err)

	_, err = verifier.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_MalformedString(t *testing.T) {
	svc := NewTokenService("k", time.Hour)

	_, err := svc.Validate("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_MissingSubject(t *testing.T) {
	svc := NewTokenService("super-secret", time.Hour)

	tok, err := svc.Issue("")
	require.NoError(t, err)

	_, err = svc.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
