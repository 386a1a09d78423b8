package service

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummary_AllValues(t *testing.T) {
	db, mock, svcs := setupMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tambak`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`DISTINCT ON \(tambak_id\) suhu`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(28.4))
	mock.ExpectQuery(`DISTINCT ON \(tambak_id\) salinitas`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(15.2))
	mock.ExpectQuery(`DISTINCT ON \(tambak_id\) ph`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(7.6))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(jumlah_kg\), 0\)`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(120.5))

	summary := svcs.Dashboard.GetSummary(1)

	assert.Equal(t, 3, summary.TotalTambak)
	assert.InDelta(t, 28.4, summary.RataSuhu, 1e-9)
	assert.InDelta(t, 15.2, summary.RataSalinitas, 1e-9)
	assert.InDelta(t, 7.6, summary.RataPh, 1e-9)
	assert.InDelta(t, 120.5, summary.TotalPanenBulanIni, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSummary_ZeroDefaultsOnQueryFailure(t *testing.T) {
	db, mock, svcs := setupMock(t)
	defer db.Close()

	queryErr := errors.New("connection reset")
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tambak`).WillReturnError(queryErr)
	mock.ExpectQuery(`DISTINCT ON \(tambak_id\) suhu`).WillReturnError(queryErr)
	mock.ExpectQuery(`DISTINCT ON \(tambak_id\) salinitas`).WillReturnError(queryErr)
	mock.ExpectQuery(`DISTINCT ON \(tambak_id\) ph`).WillReturnError(queryErr)
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(jumlah_kg\), 0\)`).WillReturnError(queryErr)

	summary := svcs.Dashboard.GetSummary(1)

	assert.Equal(t, 0, summary.TotalTambak)
	assert.Zero(t, summary.RataSuhu)
	assert.Zero(t, summary.RataSalinitas)
	assert.Zero(t, summary.RataPh)
	assert.Zero(t, summary.TotalPanenBulanIni)
}

func TestGetSummary_NoPondsIsAllZero(t *testing.T) {
	db, mock, svcs := setupMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tambak`).
		WithArgs(9).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`DISTINCT ON \(tambak_id\) suhu`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))
	mock.ExpectQuery(`DISTINCT ON \(tambak_id\) salinitas`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))
	mock.ExpectQuery(`DISTINCT ON \(tambak_id\) ph`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(jumlah_kg\), 0\)`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0.0))

	summary := svcs.Dashboard.GetSummary(9)

	assert.Equal(t, 0, summary.TotalTambak)
	assert.Zero(t, summary.TotalPanenBulanIni)
}

func TestGetPondsWithLatest_MapsJoinedFields(t *testing.T) {
	db, mock, svcs := setupMock(t)
	defer db.Close()

	now := time.Now()
	columns := []string{
		"id", "nama", "lokasi", "luas_m2", "kapasitas", "status", "user_id",
		"suhu_terkini", "salinitas_terkini", "ph_terkini", "last_update",
		"created_at", "updated_at", "total_panen_tahun_ini", "pendapatan_tahun_ini",
	}
	mock.ExpectQuery(`FROM tambak t`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(1, "Tambak A", "Brebes", 2500.0, 10000, "Aktif", 1,
				28.5, 15.0, 7.4, now, now, now, 320.0, 4800000.0).
			AddRow(2, "Tambak B", "Pemalang", 1800.0, 8000, "Maintenance", 1,
				nil, nil, nil, nil, now, now, 0.0, 0.0))

	ponds := svcs.Dashboard.GetPondsWithLatest(1)

	require.Len(t, ponds, 2)
	require.NotNil(t, ponds[0].SuhuTerkini)
	assert.InDelta(t, 28.5, *ponds[0].SuhuTerkini, 1e-9)
	assert.InDelta(t, 320.0, ponds[0].TotalPanenTahunIni, 1e-9)

	// Pond without readings or harvests still appears, with nil/zero fields.
	assert.Nil(t, ponds[1].SuhuTerkini)
	assert.Nil(t, ponds[1].LastUpdate)
	assert.Zero(t, ponds[1].TotalPanenTahunIni)
}

func TestGetPondsWithLatest_EmptyOnError(t *testing.T) {
	db, mock, svcs := setupMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM tambak t`).WillReturnError(errors.New("boom"))

	ponds := svcs.Dashboard.GetPondsWithLatest(1)

	assert.NotNil(t, ponds)
	assert.Empty(t, ponds)
}

func TestGetRecentReadings_EmptyOnError(t *testing.T) {
	db, mock, svcs := setupMock(t)
	defer db.Close()

	mock.ExpectQuery(`INTERVAL '5 hours'`).WillReturnError(errors.New("boom"))

	readings := svcs.Dashboard.GetRecentReadings(1)

	assert.NotNil(t, readings)
	assert.Empty(t, readings)
}

func TestAddHarvest_TotalValueWithPrice(t *testing.T) {
	db, mock, svcs := setupMock(t)
	defer db.Close()

	date := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	price := 5000.0

	mock.ExpectExec(`INSERT INTO panen`).
		WithArgs(1, date, 10.0, 5000.0, 50000.0, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	res := svcs.Dashboard.AddHarvest(1, date, 10, &price, nil)

	assert.True(t, res.Success)
	assert.Equal(t, "Data panen berhasil ditambahkan!", res.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddHarvest_NoPriceNoTotalValue(t *testing.T) {
	db, mock, svcs := setupMock(t)
	defer db.Close()

	date := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`INSERT INTO panen`).
		WithArgs(1, date, 10.0, nil, nil, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	res := svcs.Dashboard.AddHarvest(1, date, 10, nil, nil)

	assert.True(t, res.Success)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddHarvest_FailureResultOnDBError(t *testing.T) {
	db, mock, svcs := setupMock(t)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO panen`).
		WillReturnError(errors.New("foreign key violation"))

	res := svcs.Dashboard.AddHarvest(99, time.Now(), 10, nil, nil)

	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "foreign key violation")
}
