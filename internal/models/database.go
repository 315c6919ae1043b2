package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database for the DSN and migrates the schema.
//
// DSNs starting with postgres:// or postgresql:// are opened with the PostgreSQL
// driver, everything else is treated as an SQLite database path. SQLite
// connections always enforce foreign keys.
func Connect(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	db, err := gorm.Open(dialector(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)

	if db.Dialector.Name() == "sqlite" {
		// A single connection avoids SQLITE_BUSY
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// IsPostgres reports if the DSN is opened with the PostgreSQL driver.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func dialector(dsn string) gorm.Dialector {
	if IsPostgres(dsn) {
		return postgres.Open(dsn)
	}

	return sqlite.Open(withForeignKeys(dsn))
}

// withForeignKeys turns on foreign key enforcement, which SQLite
// leaves off unless the connection asks for it.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_pragma=foreign_keys") {
		return dsn
	}

	if strings.Contains(dsn, "?") {
		return dsn + "&_pragma=foreign_keys(1)"
	}

	return dsn + "?_pragma=foreign_keys(1)"
}

func registerCallbacks(db *gorm.DB) error {
	cb := db.Callback()

	// Specific errors are translated first, generalCallback catches the rest
	callbacks := []struct {
		register func(string, func(*gorm.DB)) error
		name     string
		fn       func(*gorm.DB)
	}{
		{cb.Query().After("*").Register, "budget_planner:after_query", queryCallback},
		{cb.Query().After("budget_planner:after_query").Register, "budget_planner:after_query_general", generalCallback},
		{cb.Create().After("*").Register, "budget_planner:after_create", createCallback},
		{cb.Create().After("budget_planner:after_create").Register, "budget_planner:after_create_general", generalCallback},
		{cb.Update().After("*").Register, "budget_planner:after_update_general", generalCallback},
		{cb.Delete().After("*").Register, "budget_planner:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.register(c.name, c.fn); err != nil {
			return fmt.Errorf("registering callback %s: %w", c.name, err)
		}
	}

	return nil
}

// queryCallback replaces the generic "no record" error with one naming
// the resource type.
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// "expenses" => "expense"
		name := strings.TrimSuffix(db.Statement.Table, "s")
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createCallback maps constraint violations on insert to model errors.
func createCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// SQLite reports the column, PostgreSQL the index name
	msg := db.Error.Error()
	if strings.Contains(msg, "UNIQUE constraint failed: users.login") || strings.Contains(msg, "idx_users_login") {
		db.Error = ErrLoginTaken
	}
}

// generalCallback logs driver level errors and hides them behind ErrGeneral.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// database/sql has no exported error for a closed database
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(User{}, Wallet{}, Budget{}, Item{}, Expense{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	return nil
}
