package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/ngobridge/platform-go/internal/domain/discount"
	"github.com/ngobridge/platform-go/internal/domain/notification"
	"github.com/ngobridge/platform-go/internal/domain/opportunity"
	"github.com/ngobridge/platform-go/internal/domain/profile"
	"github.com/ngobridge/platform-go/internal/domain/search"
	"github.com/ngobridge/platform-go/internal/domain/submission"
	"github.com/ngobridge/platform-go/internal/domain/user"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupPostgresForIntegration starts a throwaway Postgres, migrates the full
// schema, and returns a gorm handle. Set TEST_DB_DSN to reuse an external
// database instead of spinning up a container.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		waitForPostgres(dsn, 3)
		db := openGorm(dsn)
		return db, func() {}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "ngobridge",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/ngobridge?sslmode=disable", host, port.Port())
	waitForPostgres(dsn, 10)

	db := openGorm(dsn)
	cleanup := func() {
		_ = pg.Terminate(ctx)
	}
	return db, cleanup
}

func waitForPostgres(dsn string, attempts int) {
	var err error
	for i := 0; i < attempts; i++ {
		var raw *sql.DB
		raw, err = sql.Open("postgres", dsn)
		if err == nil {
			err = raw.Ping()
			_ = raw.Close()
			if err == nil {
				return
			}
		}
		time.Sleep(1 * time.Second)
	}
	log.Fatal(err)
}

func openGorm(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&user.User{},
		&profile.NgoProfile{},
		&profile.FunderProfile{},
		&profile.ProviderProfile{},
		&opportunity.FundingOpportunity{},
		&submission.Submission{},
		&discount.DiscountOffer{},
		&search.SavedSearch{},
		&notification.Notification{},
	); err != nil {
		log.Fatal(err)
	}
	return db
}
