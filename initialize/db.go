package initialize

import (
	"fmt"
	stdlog "log"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/dongdio/OpenBlog/global"
	"github.com/dongdio/OpenBlog/internal/conf"
	"github.com/dongdio/OpenBlog/internal/db"
)

const (
	// SQLiteMemoryDSN is the DSN for in-memory SQLite database with shared cache
	SQLiteMemoryDSN = "file::memory:?cache=shared"

	// SQLiteJournalMode sets the journal mode for SQLite databases
	SQLiteJournalMode = "WAL"

	// SQLiteVacuumMode sets the vacuum mode for SQLite databases
	SQLiteVacuumMode = "incremental"

	// DefaultTimeZone is the default timezone for database connections
	DefaultTimeZone = "Asia/Shanghai"

	// ConnectAttempts bounds the connection attempts to a database server
	ConnectAttempts = 5
)

// initializeDB opens the configured database and migrates the models.
// Development mode always uses an in-memory SQLite database
func initializeDB() {
	gormConfig := createGormConfig()

	var dbConn *gorm.DB
	var err error

	if global.Dev {
		dbConn, err = gorm.Open(sqlite.Open(SQLiteMemoryDSN), gormConfig)
		conf.Conf.Database.Type = "sqlite3"
	} else {
		dbConn, err = connectToDatabase(gormConfig)
	}

	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	db.Init(dbConn)
	log.Info("database connection established successfully")
}

// createGormConfig creates a GORM configuration with appropriate logger and naming strategy
func createGormConfig() *gorm.Config {
	logLevel := logger.Silent
	if global.Debug || global.Dev {
		logLevel = logger.Info
	}

	gormLogger := logger.New(
		stdlog.New(log.StandardLogger().Out, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	return &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: conf.Conf.Database.TablePrefix,
		},
		Logger: gormLogger,
	}
}

// connectToDatabase establishes a database connection based on the configuration
func connectToDatabase(gormConfig *gorm.Config) (*gorm.DB, error) {
	dbConfig := conf.Conf.Database

	switch dbConfig.Type {
	case "sqlite3":
		return connectToSQLite(dbConfig, gormConfig)
	case "mysql":
		return withRetry(func() (*gorm.DB, error) { return connectToMySQL(dbConfig, gormConfig) })
	case "postgres":
		return withRetry(func() (*gorm.DB, error) { return connectToPostgres(dbConfig, gormConfig) })
	default:
		return nil, errors.Errorf("unsupported database type: %s", dbConfig.Type)
	}
}

// withRetry retries connecting to a database server that may come up after the blog.
func withRetry(connect func() (*gorm.DB, error)) (*gorm.DB, error) {
	var dbConn *gorm.DB
	err := retry.Do(
		func() (err error) {
			dbConn, err = connect()
			return err
		},
		retry.Attempts(ConnectAttempts),
		retry.Delay(time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warnf("failed to connect to database (attempt %d): %v", n+1, err)
		}),
	)
	return dbConn, err
}

func connectToSQLite(dbConfig conf.Database, gormConfig *gorm.Config) (*gorm.DB, error) {
	if !isValidSQLiteFileName(dbConfig.DBFile) {
		return nil, errors.Errorf("invalid SQLite database file name: %s", dbConfig.DBFile)
	}

	dsn := fmt.Sprintf("%s?_journal=%s&_vacuum=%s",
		dbConfig.DBFile,
		SQLiteJournalMode,
		SQLiteVacuumMode)

	return gorm.Open(sqlite.Open(dsn), gormConfig)
}

func isValidSQLiteFileName(fileName string) bool {
	return strings.HasSuffix(fileName, ".db") && len(fileName) > 3
}

func connectToMySQL(dbConfig conf.Database, gormConfig *gorm.Config) (*gorm.DB, error) {
	dsn := dbConfig.DSN
	if dsn == "" {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&tls=%s",
			dbConfig.User,
			dbConfig.Password,
			dbConfig.Host,
			dbConfig.Port,
			dbConfig.Name,
			dbConfig.SSLMode)
	}

	return gorm.Open(mysql.Open(dsn), gormConfig)
}

func connectToPostgres(dbConfig conf.Database, gormConfig *gorm.Config) (*gorm.DB, error) {
	dsn := dbConfig.DSN
	if dsn == "" {
		dsn = buildPostgresDSN(dbConfig)
	}

	return gorm.Open(postgres.Open(dsn), gormConfig)
}

// buildPostgresDSN builds a DSN string for PostgreSQL connection
func buildPostgresDSN(dbConfig conf.Database) string {
	parts := []string{
		"host=" + dbConfig.Host,
		"user=" + dbConfig.User,
	}
	if dbConfig.Password != "" {
		parts = append(parts, "password="+dbConfig.Password)
	}
	parts = append(parts,
		"dbname="+dbConfig.Name,
		fmt.Sprintf("port=%d", dbConfig.Port),
		"sslmode="+dbConfig.SSLMode,
		"TimeZone="+DefaultTimeZone,
	)
	return strings.Join(parts, " ")
}
