package ocrservice

// RecognizeRequest запрос на распознавание текста с изображения
type RecognizeRequest struct {
	ImageURL string `json:"image_url"`
}

// RecognizeResponse ответ OCR-сервиса
// Text может быть пустым, если текст распознать не удалось
type RecognizeResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// ErrorResponse модель ошибки от OCR-сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
