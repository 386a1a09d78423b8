package domain

import "time"

// User is a row in the users table. The password hash never leaves the API.
type User struct {
	ID           int        `db:"id" json:"id"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password" json:"-"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
	IsActive     bool       `db:"is_active" json:"is_active"`
}

// Pond (tambak) with the latest monitoring reading and this-year harvest
// totals joined in. The joined fields are nil/zero when no data exists.
type Pond struct {
	ID        int     `db:"id" json:"id"`
	Nama      string  `db:"nama" json:"nama"`
	Lokasi    string  `db:"lokasi" json:"lokasi"`
	LuasM2    float64 `db:"luas_m2" json:"luas_m2"`
	Kapasitas int     `db:"kapasitas" json:"kapasitas"`
	Status    string  `db:"status" json:"status"`
	UserID    int     `db:"user_id" json:"user_id"`

	SuhuTerkini      *float64   `db:"suhu_terkini" json:"suhu_terkini,omitempty"`
	SalinitasTerkini *float64   `db:"salinitas_terkini" json:"salinitas_terkini,omitempty"`
	PhTerkini        *float64   `db:"ph_terkini" json:"ph_terkini,omitempty"`
	LastUpdate       *time.Time `db:"last_update" json:"last_update,omitempty"`

	TotalPanenTahunIni float64 `db:"total_panen_tahun_ini" json:"total_panen_tahun_ini"`
	PendapatanTahunIni float64 `db:"pendapatan_tahun_ini" json:"pendapatan_tahun_ini"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// MonitoringReading is one timestamped sensor sample for a pond.
type MonitoringReading struct {
	ID         int       `db:"id" json:"id"`
	TambakID   int       `db:"tambak_id" json:"tambak_id"`
	Suhu       float64   `db:"suhu" json:"suhu"`
	Salinitas  float64   `db:"salinitas" json:"salinitas"`
	Ph         float64   `db:"ph" json:"ph"`
	Oksigen    *float64  `db:"oksigen" json:"oksigen,omitempty"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
}

// HarvestRecord (panen). TotalNilai is computed once at insert time and is
// nil unless HargaPerKg was supplied.
type HarvestRecord struct {
	ID           int       `db:"id" json:"id"`
	TambakID     int       `db:"tambak_id" json:"tambak_id"`
	TanggalPanen time.Time `db:"tanggal_panen" json:"tanggal_panen"`
	JumlahKg     float64   `db:"jumlah_kg" json:"jumlah_kg"`
	HargaPerKg   *float64  `db:"harga_per_kg" json:"harga_per_kg,omitempty"`
	TotalNilai   *float64  `db:"total_nilai" json:"total_nilai,omitempty"`
	Keterangan   *string   `db:"keterangan" json:"keterangan,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// DashboardSummary is recomputed on every dashboard load; it has no identity
// of its own. Averages are over each pond's latest reading, not over history.
type DashboardSummary struct {
	TotalTambak        int     `json:"total_tambak"`
	RataSuhu           float64 `json:"rata_suhu"`
	RataSalinitas      float64 `json:"rata_salinitas"`
	RataPh             float64 `json:"rata_ph"`
	TotalPanenBulanIni float64 `json:"total_panen_bulan_ini"`
}

// AuthResult is the tagged outcome of a sign-up or login attempt. Failures
// are values, not errors.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}

func AuthSuccess(user *User, message string) AuthResult {
	return AuthResult{Success: true, Message: message, User: user}
}

func AuthFailure(message string) AuthResult {
	return AuthResult{Success: false, Message: message}
}

// HarvestResult is the outcome of recording a harvest.
type HarvestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
