package config

import (
	"testing"

	"hotel-ledger/models"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func memoryApp() App {
	return App{DBDriver: DriverSQLite, SQLitePath: ":memory:", DBLogLevel: "silent"}
}

func TestConnectDatabase_SeedsEmptyStore(t *testing.T) {
	db, err := ConnectDatabase(memoryApp(), zap.NewNop())
	require.NoError(t, err)
	defer CloseDatabase(db)

	var rooms []models.Room
	require.NoError(t, db.Order("id").Find(&rooms).Error)
	require.Len(t, rooms, 3)
	assert.Equal(t, "Single", rooms[0].Type)
	assert.True(t, rooms[0].Price.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "Suite", rooms[2].Type)
	for _, r := range rooms {
		assert.Equal(t, models.RoomStatusAvailable, r.Status)
	}

	var menu []models.FoodMenuItem
	require.NoError(t, db.Order("id").Find(&menu).Error)
	require.Len(t, menu, 5)
	assert.Equal(t, "Pasta", menu[0].Name)
	assert.True(t, menu[0].Price.Equal(decimal.NewFromInt(250)))
}

func TestSeedDatabase_OnlyWhenEmpty(t *testing.T) {
	db, err := ConnectDatabase(memoryApp(), zap.NewNop())
	require.NoError(t, err)
	defer CloseDatabase(db)

	require.NoError(t, db.Create(&models.FoodMenuItem{Name: "Tea", Price: decimal.NewFromInt(80)}).Error)
	require.NoError(t, SeedDatabase(db, zap.NewNop()))

	var rooms, items int64
	require.NoError(t, db.Model(&models.Room{}).Count(&rooms).Error)
	require.NoError(t, db.Model(&models.FoodMenuItem{}).Count(&items).Error)
	assert.EqualValues(t, 3, rooms)
	assert.EqualValues(t, 6, items)
}

func TestConnectDatabase_UnknownDriver(t *testing.T) {
	_, err := ConnectDatabase(App{DBDriver: "oracle"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oracle")
}

func TestResolveMySQLDSN_FromFields(t *testing.T) {
	dsn, err := resolveMySQLDSN(App{DBHost: "10.0.0.5", DBUser: "desk", DBPass: "s3cret", DBName: "hotel_db"})
	require.NoError(t, err)

	cfg, err := mysqldrv.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "desk", cfg.User)
	assert.Equal(t, "s3cret", cfg.Passwd)
	assert.Equal(t, "10.0.0.5:3306", cfg.Addr)
	assert.Equal(t, "hotel_db", cfg.DBName)
	assert.True(t, cfg.ParseTime)
}

func TestResolveMySQLDSN_FromURL(t *testing.T) {
	dsn, err := resolveMySQLDSN(App{MySQLURL: "mysql://u:p@db.example:3307/ledger?timeout=5s"})
	require.NoError(t, err)

	cfg, err := mysqldrv.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "u", cfg.User)
	assert.Equal(t, "db.example:3307", cfg.Addr)
	assert.Equal(t, "ledger", cfg.DBName)
	assert.True(t, cfg.ParseTime)
}

func TestResolveMySQLDSN_URLWithoutDatabase(t *testing.T) {
	_, err := resolveMySQLDSN(App{DatabaseURL: "mysql://u:p@db.example"})
	require.Error(t, err)
}

func TestResolvePostgresDSN(t *testing.T) {
	assert.Equal(t, "postgres://x@y/z", resolvePostgresDSN(App{DatabaseURL: "postgres://x@y/z"}))
	assert.Equal(t,
		"host=pg port=5432 user=desk password=pw dbname=hotel_db sslmode=disable",
		resolvePostgresDSN(App{DBHost: "pg", DBUser: "desk", DBPass: "pw", DBName: "hotel_db"}))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "hotel.db?_pragma=foreign_keys(1)", sqliteDSN(""))
	assert.Equal(t, "file:x.db?mode=ro", sqliteDSN("file:x.db?mode=ro"))
}
