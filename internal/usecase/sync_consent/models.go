package sync_consent

// Request модель запроса синхронизации согласий
type Request struct {
	RequestID string // ID запроса подписи во внешнем сервисе
}

// Response модель результата синхронизации
type Response struct {
	RequestID       string
	SignatureStatus string // Статус запроса подписи в SignService
	ConsentStatus   string // Итоговый статус согласия регистраций
	UpdatedCount    int    // Сколько регистраций обновлено
	SkippedCount    int    // Сколько регистраций уже были в финальном статусе
}
