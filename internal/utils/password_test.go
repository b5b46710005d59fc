package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/prodcat/catalog_backend_app/internal/utils"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	password := "s3cret-password"

	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, utils.CheckPasswordHash(password, hash))
	assert.False(t, utils.CheckPasswordHash("wrong-password", hash))
}

func TestHashPassword_OutOfRangeCostFallsBack(t *testing.T) {
	hash, err := utils.HashPassword("password123", 99)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestCheckPasswordHash_RejectsGarbageHash(t *testing.T) {
	assert.False(t, utils.CheckPasswordHash("password123", "not-a-bcrypt-hash"))
	assert.False(t, utils.CheckPasswordHash("password123", ""))
}
