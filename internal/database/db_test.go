package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestOptionsDSN(t *testing.T) {
	dsn := Options{User: "fit", Password: "secret", Host: "db", Port: "3306", Name: "fitness"}.DSN()

	cfg, err := mysql.ParseDSN(dsn)
	assert.NoError(t, err)
	assert.Equal(t, "fit", cfg.User)
	assert.Equal(t, "secret", cfg.Passwd)
	assert.Equal(t, "db:3306", cfg.Addr)
	assert.Equal(t, "fitness", cfg.DBName)
	assert.True(t, cfg.ParseTime)
	assert.Equal(t, "UTC", cfg.Loc.String())
	assert.Equal(t, "'+00:00'", cfg.Params["time_zone"])
}

func TestIsDuplicateKey(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	assert.True(t, IsDuplicateKey(dup))
	assert.True(t, IsDuplicateKey(fmt.Errorf("insert: %w", dup)))
	assert.False(t, IsDuplicateKey(&mysql.MySQLError{Number: 1452}))
	assert.False(t, IsDuplicateKey(errors.New("1062")))
	assert.False(t, IsDuplicateKey(nil))
}
