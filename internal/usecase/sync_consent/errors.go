package sync_consent

import "errors"

var (
	// ErrRequestNotFound возвращается, когда запрос подписи не найден в SignService
	ErrRequestNotFound = errors.New("signature request not found")

	// ErrNoRegistrations возвращается, когда к запросу подписи не привязано ни одной регистрации
	ErrNoRegistrations = errors.New("no registrations linked to signature request")

	// ErrServiceUnavailable возвращается, когда SignService недоступен
	// Вызывающая сторона может повторить синхронизацию позже
	ErrServiceUnavailable = errors.New("sign service unavailable, retry later")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
