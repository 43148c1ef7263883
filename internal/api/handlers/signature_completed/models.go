package signature_completed

import (
	syncConsent "github.com/apermyakov/SLM-RentalService/internal/usecase/sync_consent"
)

// WebhookRequest HTTP request model (вебхук от сервиса подписей)
type WebhookRequest struct {
	RequestID string `json:"requestId"`
}

// SyncResponse HTTP response model
type SyncResponse struct {
	RequestID       string `json:"requestId"`
	SignatureStatus string `json:"signatureStatus"`
	ConsentStatus   string `json:"consentStatus"`
	UpdatedCount    int    `json:"updatedCount"`
	SkippedCount    int    `json:"skippedCount"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *WebhookRequest) ToUseCaseRequest() *syncConsent.Request {
	return &syncConsent.Request{RequestID: r.RequestID}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *syncConsent.Response) *SyncResponse {
	return &SyncResponse{
		RequestID:       resp.RequestID,
		SignatureStatus: resp.SignatureStatus,
		ConsentStatus:   resp.ConsentStatus,
		UpdatedCount:    resp.UpdatedCount,
		SkippedCount:    resp.SkippedCount,
	}
}
