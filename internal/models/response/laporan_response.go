package response

// LaporanPembayaranResponse is the monthly payment report payload.
// TotalPembayaran sums jumlah across the period regardless of status.
type LaporanPembayaranResponse struct {
	Bulan           int     `json:"bulan"`
	Tahun           int     `json:"tahun"`
	TotalPembayaran float64 `json:"total_pembayaran"`
	Lunas           int64   `json:"lunas"`
	BelumLunas      int64   `json:"belum_lunas"`
}
