package response

// KamarStatisticsResponse is the kamar dashboard payload
type KamarStatisticsResponse struct {
	TotalKamar    int64 `json:"total_kamar"`
	KamarTersedia int64 `json:"kamar_tersedia"`
	KamarTerisi   int64 `json:"kamar_terisi"`
}
