//go:build integration

package planet

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"planet-builder/internal/classification"
	"planet-builder/internal/shared/database"
	apperrors "planet-builder/internal/shared/errors"
)

var (
	testDB    *database.DB
	testRedis *goredis.Client
)

func startContainer(ctx context.Context, req testcontainers.ContainerRequest, port string) (testcontainers.Container, string) {
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatalf("Failed to start %s container: %v", req.Image, err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		log.Fatalf("Failed to get container host: %v", err)
	}
	if host == "" || host == "null" {
		host = "localhost"
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		log.Fatalf("Failed to get mapped port: %v", err)
	}
	return c, fmt.Sprintf("%s:%s", host, mapped.Port())
}

func TestMain(m *testing.M) {
	os.Setenv("TESTCONTAINERS_RYUK_DISABLED", "true")
	ctx := context.Background()

	pg, pgAddr := startContainer(ctx, testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "planet_builder",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}, "5432")

	rd, redisAddr := startContainer(ctx, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
	}, "6379")

	var err error
	testDB, err = database.Open(ctx, fmt.Sprintf("postgres://postgres:postgres@%s/planet_builder?sslmode=disable", pgAddr), database.PoolConfig{MaxOpenConns: 5, MaxIdleConns: 2})
	if err != nil {
		log.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := testDB.RunMigrations(filepath.Join("..", "..", "migrations")); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	testRedis = goredis.NewClient(&goredis.Options{Addr: redisAddr})

	code := m.Run()

	_ = testRedis.Close()
	_ = testDB.Close()
	_ = rd.Terminate(ctx)
	_ = pg.Terminate(ctx)
	os.Exit(code)
}

func createDesigner(t *testing.T, email string) int {
	t.Helper()
	var id int
	err := testDB.QueryRowContext(context.Background(),
		`INSERT INTO designers (username, email, display_name) VALUES ($1, $2, $1) RETURNING id`,
		email, email).Scan(&id)
	require.NoError(t, err)
	return id
}

func TestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(testDB, discard)
	owner := createDesigner(t, "repo@example.com")

	now := time.Now().UTC().Truncate(time.Microsecond)
	d := &Design{
		ID:            uuid.New(),
		OwnerID:       owner,
		Name:          "Gaia",
		Configuration: earth(),
		PlanetType:    classification.TypeEarthLike,
		TotalScore:    89,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	require.NoError(t, repo.Create(ctx, d))

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.Name, got.Name)
	assert.Equal(t, d.Configuration, got.Configuration)
	assert.Equal(t, classification.TypeEarthLike, got.PlanetType)
	assert.True(t, d.CreatedAt.Equal(got.CreatedAt))

	list, err := repo.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, d.ID))
	_, err = repo.GetByID(ctx, d.ID)
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.GetType(err))
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.GetType(repo.Delete(ctx, d.ID)))
}

func TestServiceWithRedisAndPostgres(t *testing.T) {
	ctx := context.Background()
	cache := NewRedisCache(testRedis, time.Minute)
	svc := NewService(classification.New(), cache, NewRepository(testDB, discard), discard)
	owner := createDesigner(t, "service@example.com")

	saved, err := svc.SaveDesign(ctx, owner, CreateDesignRequest{Name: "Blue Marble", Configuration: earth()})
	require.NoError(t, err)

	key, err := CacheKey(earth())
	require.NoError(t, err)
	cached, err := cache.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, saved.Assessment.Habitability, cached.Habitability)
	assert.Equal(t, saved.Assessment.Classification, cached.Classification)

	got, err := svc.GetDesign(ctx, owner, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Blue Marble", got.Name)
}

func TestRedisCacheMiss(t *testing.T) {
	cache := NewRedisCache(testRedis, time.Minute)
	a, err := cache.Get(context.Background(), "assessment:missing")
	require.NoError(t, err)
	assert.Nil(t, a)
}
