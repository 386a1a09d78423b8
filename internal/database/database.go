package database

import (
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

func Connect() (*sqlx.DB, error) {
	dsn := viper.GetString("DB_DSN")
	return sqlx.Connect("pgx", dsn)
}

// EnsureSchema creates all tables and indexes if they do not exist yet.
// Safe to run on every startup; any failure is returned to the caller.
func EnsureSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    email VARCHAR(255) UNIQUE NOT NULL,
    password VARCHAR(255) NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_login TIMESTAMP NULL,
    is_active BOOLEAN DEFAULT true
);

CREATE INDEX IF NOT EXISTS idx_email ON users(email);

CREATE TABLE IF NOT EXISTS tambak (
    id SERIAL PRIMARY KEY,
    nama VARCHAR(100) NOT NULL,
    lokasi VARCHAR(255) NOT NULL,
    luas_m2 DECIMAL(10,2) NOT NULL,
    kapasitas INT NOT NULL,
    status VARCHAR(20) DEFAULT 'Aktif',
    user_id INT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_tambak_user ON tambak(user_id);
CREATE INDEX IF NOT EXISTS idx_tambak_status ON tambak(status);

CREATE TABLE IF NOT EXISTS monitoring_data (
    id SERIAL PRIMARY KEY,
    tambak_id INT NOT NULL,
    suhu DECIMAL(5,2) NOT NULL,
    salinitas DECIMAL(5,2) NOT NULL,
    ph DECIMAL(4,2) NOT NULL,
    oksigen DECIMAL(5,2),
    recorded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (tambak_id) REFERENCES tambak(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_monitoring_tambak ON monitoring_data(tambak_id);
CREATE INDEX IF NOT EXISTS idx_monitoring_recorded_at ON monitoring_data(recorded_at DESC);

CREATE TABLE IF NOT EXISTS panen (
    id SERIAL PRIMARY KEY,
    tambak_id INT NOT NULL,
    tanggal_panen DATE NOT NULL,
    jumlah_kg DECIMAL(10,2) NOT NULL,
    harga_per_kg DECIMAL(12,2),
    total_nilai DECIMAL(15,2),
    keterangan TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (tambak_id) REFERENCES tambak(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_panen_tambak ON panen(tambak_id);
CREATE INDEX IF NOT EXISTS idx_panen_tanggal ON panen(tanggal_panen DESC);
`
