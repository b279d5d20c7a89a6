//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/testcontainers/testcontainers-go/wait"

	pgrepo "github.com/Gunvolt24/medcatalog/internal/repo/postgres"
)

// Общий логгер для testcontainers.
var tcLogger = log.New(os.Stdout, "[tc] ", log.LstdFlags)

func shortID(c tc.Container) string {
	id := c.GetContainerID()
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// logHooks — короткие строки о жизненном цикле контейнера.
func logHooks(l *log.Logger) tc.ContainerLifecycleHooks {
	stage := func(name string) tc.ContainerHook {
		return func(_ context.Context, c tc.Container) error {
			l.Printf("%s id=%s", name, shortID(c))
			return nil
		}
	}
	return tc.ContainerLifecycleHooks{
		PreCreates: []tc.ContainerRequestHook{
			func(_ context.Context, req tc.ContainerRequest) error {
				l.Printf("creating image=%s", req.Image)
				return nil
			},
		},
		PostStarts:     []tc.ContainerHook{stage("started")},
		PostReadies:    []tc.ContainerHook{stage("ready")},
		PostTerminates: []tc.ContainerHook{stage("terminated")},
	}
}

// ----------------------------------------------------------------------------
// Postgres
// ----------------------------------------------------------------------------

type PGContainer struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

// StartPostgresTC — контейнер Postgres с применёнными миграциями каталога и готовым пулом.
func StartPostgresTC(ctx context.Context) (*PGContainer, func(context.Context) error, error) {
	pg, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		tc.WithLifecycleHooks(logHooks(tcLogger)),
		postgres.WithDatabase("catalog"),
		postgres.WithUsername("app"),
		postgres.WithPassword("app"),
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}
	fail := func(err error) (*PGContainer, func(context.Context) error, error) {
		_ = pg.Terminate(context.Background())
		return nil, nil, err
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return fail(fmt.Errorf("conn string: %w", err))
	}
	if err := pgrepo.Migrate(ctx, dsn); err != nil {
		return fail(fmt.Errorf("migrate: %w", err))
	}
	pool, err := pgrepo.NewPool(ctx, dsn, 5)
	if err != nil {
		return fail(fmt.Errorf("new pool: %w", err))
	}

	stop := func(c context.Context) error {
		pool.Close()
		return pg.Terminate(c)
	}
	return &PGContainer{Container: pg, DSN: dsn, Pool: pool}, stop, nil
}

// ----------------------------------------------------------------------------
// Kafka
// ----------------------------------------------------------------------------

type KafkaEnv struct {
	Container *redpanda.Container
	Brokers   []string
}

// StartKafkaTC — redpanda с автосозданием топиков.
func StartKafkaTC(ctx context.Context) (*KafkaEnv, func(context.Context) error, error) {
	rp, err := redpanda.Run(
		ctx,
		"docker.redpanda.com/redpandadata/redpanda:v23.3.8",
		tc.WithLifecycleHooks(logHooks(tcLogger)),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}

	stop := func(_ context.Context) error { return tc.TerminateContainer(rp) }
	return &KafkaEnv{Container: rp, Brokers: []string{seed}}, stop, nil
}
