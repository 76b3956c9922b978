package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"northwind/internal/config"
)

func testConfig(t *testing.T) config.DatabaseConfig {
	return config.DatabaseConfig{
		Path:            filepath.Join(t.TempDir(), "northwind.db"),
		MaxOpenConns:    2,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	}
}

func TestNewConnection_RequiresPath(t *testing.T) {
	_, err := NewConnection(config.DatabaseConfig{})
	assert.Error(t, err)
}

func TestNewConnection_AppliesSchema(t *testing.T) {
	db, err := NewConnection(testConfig(t))
	require.NoError(t, err)
	defer db.Close()

	tables := []string{
		"Customers", "Employees", "Shippers", "Suppliers",
		"Categories", "Products", "Orders", "OrderDetails",
	}
	for _, table := range tables {
		var n int
		err := db.QueryRow(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&n)
		require.NoError(t, err)
		assert.Equal(t, 1, n, "table %s must exist", table)
	}
}

func TestNewConnection_SchemaIsIdempotent(t *testing.T) {
	cfg := testConfig(t)

	db, err := NewConnection(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening the same file applies the schema again without error.
	db, err = NewConnection(cfg)
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}

func TestNewConnection_EnforcesForeignKeys(t *testing.T) {
	db, err := NewConnection(testConfig(t))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO Products (ProductId, ProductName, CategoryId, SupplierId) VALUES (1, 'Chai', 99, 99)`)
	assert.Error(t, err)
}
