package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farm-market/models"
)

func TestSaveAndToken(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.Save(models.RoleFarmer, "abc123"))

	token, err := s.Token(models.RoleFarmer)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestTokenMissingIsLoggedOut(t *testing.T) {
	s := NewStore(t.TempDir())

	token, err := s.Token(models.RoleBuyer)
	require.NoError(t, err)
	assert.Equal(t, "", token)
}

func TestTokenTrimsWhitespace(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save(models.RoleBuyer, "tok\n"))

	token, err := s.Token(models.RoleBuyer)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestRolesCoexist(t *testing.T) {
	s := NewStore(t.TempDir())

	require.NoError(t, s.Save(models.RoleFarmer, "farmer-token"))
	require.NoError(t, s.Save(models.RoleBuyer, "buyer-token"))

	farmer, err := s.Token(models.RoleFarmer)
	require.NoError(t, err)
	buyer, err := s.Token(models.RoleBuyer)
	require.NoError(t, err)
	assert.Equal(t, "farmer-token", farmer)
	assert.Equal(t, "buyer-token", buyer)
}

func TestClear(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save(models.RoleFarmer, "abc"))

	require.NoError(t, s.Clear(models.RoleFarmer))
	token, err := s.Token(models.RoleFarmer)
	require.NoError(t, err)
	assert.Equal(t, "", token)

	// Clearing again is a no-op.
	require.NoError(t, s.Clear(models.RoleFarmer))
}

func TestSaveOverwrites(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.Save(models.RoleBuyer, "old"))
	require.NoError(t, s.Save(models.RoleBuyer, "new"))

	token, err := s.Token(models.RoleBuyer)
	require.NoError(t, err)
	assert.Equal(t, "new", token)
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/session"
	s := NewStore(dir)

	require.NoError(t, s.Save(models.RoleFarmer, "abc"))
	token, err := s.Token(models.RoleFarmer)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}
