// Package db provides database connectivity and operations for the blog
package db

import (
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/dongdio/OpenBlog/internal/conf"
	"github.com/dongdio/OpenBlog/internal/model"
)

var (
	// ErrDatabaseNotInitialized is returned when a database operation is attempted before initialization
	ErrDatabaseNotInitialized = errors.New("database not initialized")
)

var (
	// db holds the global database connection instance
	db *gorm.DB

	// dbMutex protects the db variable from concurrent access
	dbMutex sync.RWMutex
)

// Init initializes the database connection and performs schema migrations.
// The function will terminate the application if migrations fail
func Init(d *gorm.DB) {
	if d == nil {
		log.Fatal("cannot initialize with nil database connection")
		return
	}

	dbMutex.Lock()
	db = d
	dbMutex.Unlock()

	err := AutoMigrate(
		&model.Option{},
		&model.User{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	log.Info("database initialized successfully")
}

// AutoMigrate performs database schema migrations for the given models.
// MySQL tables get an explicit charset and engine
func AutoMigrate(models ...any) error {
	dbMutex.RLock()
	defer dbMutex.RUnlock()

	if db == nil {
		return ErrDatabaseNotInitialized
	}

	var err error
	if conf.Conf != nil && conf.Conf.Database.Type == "mysql" {
		err = db.Set("gorm:table_options", "ENGINE=InnoDB CHARSET=utf8mb4").AutoMigrate(models...)
	} else {
		err = db.AutoMigrate(models...)
	}

	if err != nil {
		log.Errorf("database migration failed: %v", err)
	}

	return err
}

// GetDB returns the current database connection, nil before Init
func GetDB() *gorm.DB {
	dbMutex.RLock()
	defer dbMutex.RUnlock()

	return db
}

// Close properly closes the database connection
func Close() {
	dbMutex.Lock()
	defer dbMutex.Unlock()

	if db == nil {
		log.Warn("attempting to close nil database connection")
		return
	}

	log.Info("closing database connection")

	sqlDB, err := db.DB()
	if err != nil {
		log.Errorf("failed to get sql.DB instance: %v", err)
		return
	}

	if err = sqlDB.Close(); err != nil {
		log.Errorf("failed to close database connection: %v", err)
	} else {
		log.Info("database connection closed successfully")
	}

	db = nil
}
