package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/recipebox/backend/internal/database"
	"github.com/pageza/recipebox/backend/internal/models"
	"github.com/pageza/recipebox/backend/internal/storage"
	"github.com/pageza/recipebox/backend/internal/testhelpers"
)

func TestPostgres(t *testing.T) {
	ctx := context.Background()
	db := testhelpers.SetupPostgresDatabase(t)

	require.NoError(t, database.HealthCheck(ctx, db))
	assert.Equal(t, "postgres", db.Dialector.Name())

	user := models.User{Email: "cook@example.com", PasswordHash: "hash"}
	require.NoError(t, db.Create(&user).Error)

	kv, err := storage.NewGormStore(db)
	require.NoError(t, err)
	key := storage.Namespace(user.ID.String(), "favoriteRecipes")
	require.NoError(t, kv.Put(ctx, key, []byte(`["pizza"]`)))
	require.NoError(t, kv.Put(ctx, key, []byte(`["pizza","ugali"]`)))

	got, err := kv.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `["pizza","ugali"]`, string(got))

	// re-running migrations against an existing schema is a no-op
	require.NoError(t, database.RunMigrations(db, zap.NewNop()))
}
