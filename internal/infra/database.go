package infra

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"renascer/internal/metrics"
	"renascer/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update all tables.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := registerMetricsCallbacks(db); err != nil {
		return nil, fmt.Errorf("metrics callbacks: %w", err)
	}

	return db, nil
}

const dbMetricsStartKey = "metrics:db_start"

// registerMetricsCallbacks hooks the create/query/update/delete pipelines so
// every statement feeds the db_operation_duration histogram. Requires
// metrics.Init to have run.
func registerMetricsCallbacks(db *gorm.DB) error {
	before := func(d *gorm.DB) { d.InstanceSet(dbMetricsStartKey, time.Now()) }
	after := func(operation string) func(*gorm.DB) {
		return func(d *gorm.DB) {
			v, ok := d.InstanceGet(dbMetricsStartKey)
			if !ok {
				return
			}
			start, ok := v.(time.Time)
			if !ok {
				return
			}
			metrics.TrackDBOperation(operation, d.Statement.Table)(start)
		}
	}

	cb := db.Callback()
	if err := cb.Create().Before("gorm:create").Register("metrics:before_create", before); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("metrics:after_create", after("create")); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register("metrics:before_query", before); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("metrics:after_query", after("query")); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("metrics:before_update", before); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("metrics:after_update", after("update")); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("metrics:before_delete", before); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("metrics:after_delete", after("delete")); err != nil {
		return err
	}
	return nil
}

// RunMigrations applies the schema. Referenced tables must migrate before the
// tables that hold foreign keys to them, so collections and sales go last.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Supplier{},
		&model.Client{},
		&model.CollectionPoint{},
		&model.ProductType{},
		&model.Collection{},
		&model.Sale{},
	)
}
