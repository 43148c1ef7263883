package signservice

import "time"

// Статусы запроса подписи во внешнем сервисе
const (
	StatusPending  = "pending"
	StatusSigned   = "signed"
	StatusDeclined = "declined"
	StatusExpired  = "expired"
)

// SignatureRequest модель запроса подписи из SignService
type SignatureRequest struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"` // pending / signed / declined / expired
	DocumentID  string     `json:"document_id"`
	SignerEmail string     `json:"signer_email"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IsSigned возвращает true, если документ подписан
func (r *SignatureRequest) IsSigned() bool {
	return r.Status == StatusSigned
}

// IsDeclined возвращает true, если подписант отказался (или запрос истёк)
func (r *SignatureRequest) IsDeclined() bool {
	return r.Status == StatusDeclined || r.Status == StatusExpired
}

// ErrorResponse модель ошибки от SignService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
