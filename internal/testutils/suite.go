package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"dad-circles-backend/internal/config"
	"dad-circles-backend/internal/database"
	"dad-circles-backend/internal/database/models"
	"dad-circles-backend/internal/matching"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	pgUser     = "testuser"
	pgPassword = "testpass"
	pgDatabase = "testdb"
)

// Containers are started once per test binary and purged by CleanupSharedContainer.
var (
	poolOnce sync.Once
	pool     *dockertest.Pool
	poolErr  error

	pgOnce     sync.Once
	pgErr      error
	pgResource *dockertest.Resource
	sharedDB   *gorm.DB
	sharedCfg  *config.Config

	redisOnce     sync.Once
	redisErr      error
	redisResource *dockertest.Resource
	redisURL      string
)

// BaseTestSuite gives integration suites a migrated database and a matching config
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	pgOnce.Do(func() { pgErr = startPostgres() })
	if pgErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", pgErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedCfg}
}

// StartRedis starts the shared Redis container on first use and returns its URL
func StartRedis(t *testing.T) string {
	t.Helper()
	redisOnce.Do(func() { redisErr = startRedis() })
	if redisErr != nil {
		t.Fatalf("failed to initialize redis container: %v", redisErr)
	}
	return redisURL
}

// CleanupSharedContainer purges every container this binary started.
// Call it from TestMain after m.Run.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	for _, r := range []*dockertest.Resource{pgResource, redisResource} {
		if pool == nil || r == nil {
			continue
		}
		if err := pool.Purge(r); err != nil {
			logrus.WithError(err).Warnf("could not purge container %s", r.Container.Name)
			continue
		}
		logrus.Infof("purged container %s", r.Container.Name)
	}
	pgResource, redisResource = nil, nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container is shared and stays up
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties the members and groups tables
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	s.DB.Exec(`TRUNCATE TABLE "members", "groups" RESTART IDENTITY CASCADE`)
}

func dockerPool() (*dockertest.Pool, error) {
	poolOnce.Do(func() {
		pool, poolErr = dockertest.NewPool("")
		if poolErr != nil {
			poolErr = fmt.Errorf("could not connect to docker: %w", poolErr)
			return
		}
		pool.MaxWait = 2 * time.Minute
	})
	return pool, poolErr
}

func runContainer(opts *dockertest.RunOptions) (*dockertest.Resource, error) {
	p, err := dockerPool()
	if err != nil {
		return nil, err
	}
	return p.RunWithOptions(opts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
}

func startPostgres() error {
	resource, err := runContainer(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	pgResource = resource

	port := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, port, pgDatabase)

	err = pool.Retry(func() error {
		// plain database/sql ping first; gorm migrations only run once postgres accepts connections
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		db, err := database.Initialize(dsn, &database.Options{LogLevel: gormlogger.Warn})
		if err != nil {
			return err
		}
		sharedDB = db
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not connect to docker database: %w", err)
	}

	settings := matching.DefaultSettings()
	sharedCfg = &config.Config{
		DatabaseURL:      dsn,
		Port:             "8080",
		LogLevel:         "debug",
		Environment:      "test",
		JWTSecret:        "test-secret",
		MinGroupSize:     settings.MinGroupSize,
		MaxGroupSize:     settings.MaxGroupSize,
		MaxGapExpecting:  settings.MaxGap[models.LifeStageExpecting],
		MaxGapNewborn:    settings.MaxGap[models.LifeStageNewborn],
		MaxGapInfant:     settings.MaxGap[models.LifeStageInfant],
		MaxGapToddler:    settings.MaxGap[models.LifeStageToddler],
		ChunkPolicy:      "fixed",
		MatchParallelism: 2,
		SiteName:         "Dad Circles",
	}

	logrus.Infof("shared postgres ready on port %s", port)
	return nil
}

func startRedis() error {
	resource, err := runContainer(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	})
	if err != nil {
		return fmt.Errorf("could not start redis: %w", err)
	}
	redisResource = resource
	url := fmt.Sprintf("redis://127.0.0.1:%s/0", resource.GetPort("6379/tcp"))

	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}
	err = pool.Retry(func() error {
		client := redis.NewClient(opts)
		defer client.Close()
		return client.Ping(context.Background()).Err()
	})
	if err != nil {
		return fmt.Errorf("could not connect to docker redis: %w", err)
	}
	redisURL = url
	return nil
}
