package db

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/client/config"
)

type probe struct {
	ID   int64
	Name string
}

func TestNewConnection_SQLite(t *testing.T) {
	database, err := NewConnection(&config.DatabaseConfig{
		URL:             "file:dbtest?mode=memory&cache=shared",
		ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, database.AutoMigrate(&probe{}))
	require.NoError(t, database.DB().Create(&probe{Name: "ok"}).Error)

	var count int64
	require.NoError(t, database.DB().Model(&probe{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.True(t, database.HealthCheck())
}

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + server.Addr() + "/0", DB: 2})
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, 2, client.Options().DB)
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(&config.RedisConfig{URL: "://nope"})
	assert.Error(t, err)
}
