package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	root "scanrunner"
	"scanrunner/pkg/domain"
	"scanrunner/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
	testDB       = "testdb"
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432"},
		Env: map[string]string{
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
			"POSTGRES_DB":       testDB,
		},
		WaitingFor: wait.ForListeningPort("5432"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{
		Container: container,
		Host:      host,
		Port:      mappedPort.Int(),
	}, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	// start container
	pgContainer, err := startPostgresContainer(ctx)
	require.NoError(t, err)

	// create postgres instance
	pgSQL, err := postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               pgContainer.Host,
		Port:               pgContainer.Port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
	require.NoError(t, err)

	require.NoError(t, runMigrations(pgSQL.DB.(*sql.DB)))

	return pgSQL, func() {
		_ = pgSQL.Close()
		_ = pgContainer.Container.Terminate(ctx)
	}
}

func seedUser(t *testing.T, pg *postgres.PgSQL, email string, notification int) domain.UserID {
	t.Helper()

	var id int64
	row := pg.DB.QueryRowContext(context.Background(),
		`INSERT INTO users(email, notification) VALUES ($1, $2) RETURNING id`, email, notification)
	require.NoError(t, row.Scan(&id))

	return domain.UserID(id)
}

func seedTask(t *testing.T, pg *postgres.PgSQL, userID domain.UserID, target string) domain.ScanTaskID {
	t.Helper()

	var id int64
	row := pg.DB.QueryRowContext(context.Background(),
		`INSERT INTO scan_tasks(user_id, name, target) VALUES ($1, $2, $2) RETURNING id`, int64(userID), target)
	require.NoError(t, row.Scan(&id))

	return domain.ScanTaskID(id)
}

func seedProfile(t *testing.T, pg *postgres.PgSQL, userID *domain.UserID, name string, isDefault bool) domain.ProfileID {
	t.Helper()

	var owner sql.NullInt64
	if userID != nil {
		owner = sql.NullInt64{Int64: int64(*userID), Valid: true}
	}

	var id int64
	row := pg.DB.QueryRowContext(context.Background(),
		`INSERT INTO scan_profiles(user_id, name, body, is_default) VALUES ($1, $2, $3, $4) RETURNING id`,
		owner, name, "output "+name, isDefault)
	require.NoError(t, row.Scan(&id))

	return domain.ProfileID(id)
}

func linkProfile(t *testing.T, pg *postgres.PgSQL, taskID domain.ScanTaskID, profileID domain.ProfileID) {
	t.Helper()

	_, err := pg.DB.ExecContext(context.Background(),
		`INSERT INTO profile_tasks(task_id, profile_id) VALUES ($1, $2)`, int64(taskID), int64(profileID))
	require.NoError(t, err)
}
