package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истек по TTL
	ErrDraftNotFound = errors.New("draft.repository: draft not found")

	// ErrMarshalDraft возвращается при ошибке сериализации черновика
	ErrMarshalDraft = errors.New("draft.repository: failed to marshal draft")

	// ErrUnmarshalDraft возвращается при ошибке десериализации черновика
	ErrUnmarshalDraft = errors.New("draft.repository: failed to unmarshal draft")

	// ErrRedisOp возвращается при ошибке операции с Redis
	ErrRedisOp = errors.New("draft.repository: redis operation failed")
)
