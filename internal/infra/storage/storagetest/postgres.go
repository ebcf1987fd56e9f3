//go:build integration

// Package storagetest поднимает PostgreSQL в контейнере для интеграционных тестов репозиториев
package storagetest

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/m04kA/SMC-VetClinicService/internal/infra/migrations"
	"github.com/m04kA/SMC-VetClinicService/pkg/dbmetrics"
	"github.com/m04kA/SMC-VetClinicService/pkg/txmanager"
)

// Postgres тестовая БД со схемой сервиса
type Postgres struct {
	Raw *sql.DB
	DB  *dbmetrics.DB
	Tx  *txmanager.TransactionManager
}

// StartPostgres запускает контейнер, применяет миграции и регистрирует очистку
func StartPostgres(t *testing.T) *Postgres {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()

	ctr, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("vetclinic_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(ctr)
	})

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	raw, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })

	require.NoError(t, raw.PingContext(ctx))
	require.NoError(t, migrations.Up(raw))

	db := dbmetrics.Wrap(raw, nil)

	return &Postgres{
		Raw: raw,
		DB:  db,
		Tx:  txmanager.NewTransactionManager(db),
	}
}
