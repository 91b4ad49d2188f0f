package token_test

import (
	"testing"
	"time"

	"go-workerconnect-backend/pkg/token"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndVerify(t *testing.T) {
	m := token.NewManager("secret", time.Hour)

	signed, err := m.Issue("session-123")
	assert.NoError(t, err)

	sid, err := m.Verify(signed)
	assert.NoError(t, err)
	assert.Equal(t, "session-123", sid)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := token.NewManager("secret-a", time.Hour).Issue("s")
	assert.NoError(t, err)

	_, err = token.NewManager("secret-b", time.Hour).Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := token.NewManager("secret", -time.Minute)

	signed, err := m.Issue("s")
	assert.NoError(t, err)

	_, err = m.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := token.NewManager("secret", time.Hour)
	_, err := m.Verify("not-a-token")
	assert.Error(t, err)
}
