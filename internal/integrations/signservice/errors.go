package signservice

import "errors"

var (
	// ErrRequestNotFound возвращается, когда запрос подписи не найден
	ErrRequestNotFound = errors.New("signature request not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("signservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("signservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что SignService недоступен и синхронизацию стоит повторить позже
	ErrServiceDegraded = errors.New("signservice unavailable: graceful degradation applied")
)
