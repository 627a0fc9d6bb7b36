package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"hotel-ledger/models"

	"github.com/glebarez/sqlite"
	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var defaultRooms = []models.Room{
	{Type: "Single", Price: decimal.NewFromInt(1000), Status: models.RoomStatusAvailable},
	{Type: "Double", Price: decimal.NewFromInt(1800), Status: models.RoomStatusAvailable},
	{Type: "Suite", Price: decimal.NewFromInt(3000), Status: models.RoomStatusAvailable},
}

var defaultMenu = []models.FoodMenuItem{
	{Name: "Pasta", Price: decimal.NewFromInt(250)},
	{Name: "Burger", Price: decimal.NewFromInt(150)},
	{Name: "Pizza", Price: decimal.NewFromInt(400)},
	{Name: "Coffee", Price: decimal.NewFromInt(100)},
	{Name: "Sandwich", Price: decimal.NewFromInt(120)},
}

// SeedDatabase fills rooms and the food menu, each only when its table is empty.
func SeedDatabase(db *gorm.DB, log *zap.Logger) error {
	var roomCount int64
	if err := db.Model(&models.Room{}).Count(&roomCount).Error; err != nil {
		return fmt.Errorf("count rooms: %w", err)
	}
	if roomCount == 0 {
		rooms := make([]models.Room, len(defaultRooms))
		copy(rooms, defaultRooms)
		if err := db.Create(&rooms).Error; err != nil {
			return fmt.Errorf("seed rooms: %w", err)
		}
		log.Info("rooms seeded", zap.Int("count", len(rooms)))
	}

	var menuCount int64
	if err := db.Model(&models.FoodMenuItem{}).Count(&menuCount).Error; err != nil {
		return fmt.Errorf("count food menu: %w", err)
	}
	if menuCount == 0 {
		menu := make([]models.FoodMenuItem, len(defaultMenu))
		copy(menu, defaultMenu)
		if err := db.Create(&menu).Error; err != nil {
			return fmt.Errorf("seed food menu: %w", err)
		}
		log.Info("food menu seeded", zap.Int("count", len(menu)))
	}
	return nil
}

// Migrate creates the four ledger tables, parents before children.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Room{},
		&models.FoodMenuItem{},
		&models.Customer{},
		&models.Order{},
	)
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	port := u.Port()
	if port == "" {
		port = "3306"
	}
	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	cfg := mysqldrv.NewConfig()
	cfg.User = u.User.Username()
	cfg.Passwd, _ = u.User.Password()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(u.Hostname(), port)
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	for k, v := range u.Query() {
		if len(v) == 0 {
			continue
		}
		switch k {
		case "parseTime", "loc":
			// always on / local, the ledger stores calendar dates
		default:
			cfg.Params[k] = v[0]
		}
	}
	return cfg.FormatDSN(), nil
}

func resolveMySQLDSN(c App) (string, error) {
	raw := strings.TrimSpace(c.MySQLURL)
	if raw == "" {
		raw = strings.TrimSpace(c.DatabaseURL)
	}
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	port := c.DBPort
	if port == "" {
		port = "3306"
	}
	cfg := mysqldrv.NewConfig()
	cfg.User = c.DBUser
	cfg.Passwd = c.DBPass
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.DBHost, port)
	cfg.DBName = c.DBName
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN(), nil
}

func resolvePostgresDSN(c App) string {
	if raw := strings.TrimSpace(c.DatabaseURL); raw != "" {
		return raw
	}
	port := c.DBPort
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, port, c.DBUser, c.DBPass, c.DBName)
}

func sqliteDSN(path string) string {
	if path == "" {
		path = "hotel.db"
	}
	if strings.Contains(path, "?") {
		return path
	}
	return path + "?_pragma=foreign_keys(1)"
}

func dialectorFor(c App) (gorm.Dialector, error) {
	switch c.DBDriver {
	case DriverSQLite, "":
		return sqlite.Open(sqliteDSN(c.SQLitePath)), nil
	case DriverMySQL:
		dsn, err := resolveMySQLDSN(c)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case DriverPostgres:
		return postgres.Open(resolvePostgresDSN(c)), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// ConnectDatabase opens the store, migrates it and seeds the reference data.
// The caller owns the returned handle and closes it on shutdown.
func ConnectDatabase(c App, log *zap.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(c)
	if err != nil {
		return nil, err
	}

	gormLogger := logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogLevel(c.DBLogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	if c.DBDriver == DriverSQLite || c.DBDriver == "" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// one writer; an in-memory database also lives and dies with its connection
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		CloseDatabase(db)
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := SeedDatabase(db, log); err != nil {
		CloseDatabase(db)
		return nil, err
	}
	return db, nil
}

func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
