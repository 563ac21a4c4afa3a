package verify_payment

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Порог расхождения суммы: копейки, потерянные при распознавании, не считаются
const amountTolerance = 0.01

// paymentKeywords маркеры успешной оплаты в распознанном тексте
var paymentKeywords = []string{
	"payment",
	"successful",
	"completed",
	"confirmed",
	"paid",
	"transaction",
}

// amountPattern числа вида "1500", "1500.00", "1 500,50"
var amountPattern = regexp.MustCompile(`\d[\d ]*(?:[.,]\d{1,2})?`)

// AnalyzeSlip сопоставляет распознанный текст платежного документа с ожидаемой
// суммой бронирования и выносит вердикт
//
// Правила:
//   - пустой текст: распознавание не удалось, вердикт не выносится (confidence 0.1)
//   - найдена сумма, совпадающая с ожидаемой (+-0.01): оплата подтверждена
//     (confidence 0.8; 0.95 если в тексте больше двух ключевых слов)
//   - сумма не совпала, но ключевых слов больше двух: документ похож на
//     платеж, требуется ручная проверка (confidence 0.5)
//   - иначе: документ не распознан как платеж (confidence 0.2)
//
// Функция чистая: никогда не меняет состояние документа или бронирования,
// решение о переходе статусов принимает вызывающая сторона
func AnalyzeSlip(ocrText string, expectedAmount float64) domain.VerificationVerdict {
	text := strings.TrimSpace(ocrText)
	if text == "" {
		return domain.VerificationVerdict{
			Verified:   false,
			Confidence: 0.1,
			Notes:      "OCR failed: no text recognized",
		}
	}

	lower := strings.ToLower(text)

	keywordCount := 0
	for _, kw := range paymentKeywords {
		if strings.Contains(lower, kw) {
			keywordCount++
		}
	}

	if amountMatches(text, expectedAmount) {
		confidence := 0.8
		if keywordCount > 2 {
			confidence = 0.95
		}
		return domain.VerificationVerdict{
			Verified:   true,
			Confidence: confidence,
			Notes:      fmt.Sprintf("amount %.2f found in recognized text", expectedAmount),
		}
	}

	if keywordCount > 2 {
		return domain.VerificationVerdict{
			Verified:   false,
			Confidence: 0.5,
			Notes:      "payment keywords found but amount does not match, manual review required",
		}
	}

	return domain.VerificationVerdict{
		Verified:   false,
		Confidence: 0.2,
		Notes:      "document not recognized as a payment",
	}
}

// amountMatches проверяет, встречается ли в тексте число, совпадающее с
// ожидаемой суммой с точностью до amountTolerance
func amountMatches(text string, expected float64) bool {
	for _, match := range amountPattern.FindAllString(text, -1) {
		normalized := strings.ReplaceAll(match, " ", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")

		value, err := strconv.ParseFloat(normalized, 64)
		if err != nil {
			continue
		}

		if math.Abs(value-expected) <= amountTolerance {
			return true
		}
	}
	return false
}
