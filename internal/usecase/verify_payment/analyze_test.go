package verify_payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSlip_EmptyText(t *testing.T) {
	verdict := AnalyzeSlip("", 1500)

	assert.False(t, verdict.Verified)
	assert.Equal(t, 0.1, verdict.Confidence)
	assert.Contains(t, verdict.Notes, "OCR failed")

	verdict = AnalyzeSlip("   \n\t ", 1500)
	assert.Equal(t, 0.1, verdict.Confidence)
}

func TestAnalyzeSlip_AmountMatch(t *testing.T) {
	verdict := AnalyzeSlip("Transfer of 1500.00 RUB to Central Parking", 1500)

	assert.True(t, verdict.Verified)
	assert.Equal(t, 0.8, verdict.Confidence)
}

func TestAnalyzeSlip_AmountMatchWithKeywords(t *testing.T) {
	text := "Payment successful. Transaction completed. Amount: 1500.00"

	verdict := AnalyzeSlip(text, 1500)

	assert.True(t, verdict.Verified)
	assert.Equal(t, 0.95, verdict.Confidence)
}

func TestAnalyzeSlip_AmountWithinTolerance(t *testing.T) {
	assert.True(t, AnalyzeSlip("total 1500.01", 1500).Verified)
	assert.True(t, AnalyzeSlip("total 1499.99", 1500).Verified)
	assert.False(t, AnalyzeSlip("total 1500.50", 1500).Verified)
}

func TestAnalyzeSlip_CommaDecimalSeparator(t *testing.T) {
	verdict := AnalyzeSlip("Сумма: 1500,00", 1500)
	assert.True(t, verdict.Verified)
}

func TestAnalyzeSlip_KeywordsWithoutAmount(t *testing.T) {
	text := "Payment completed successfully, thank you"

	verdict := AnalyzeSlip(text, 1500)

	assert.False(t, verdict.Verified)
	assert.Equal(t, 0.5, verdict.Confidence)
	assert.Contains(t, verdict.Notes, "manual review")
}

func TestAnalyzeSlip_WrongAmountWithFewKeywords(t *testing.T) {
	// Сумма не совпала, ключевых слов всего два - уверенности, что это
	// оплата именно этого бронирования, нет
	verdict := AnalyzeSlip("$45.00 payment successful", 50.00)

	assert.False(t, verdict.Verified)
	assert.LessOrEqual(t, verdict.Confidence, 0.3)

	// Та же квитанция с совпадающей суммой подтверждается
	verdict = AnalyzeSlip("$45.00 payment successful", 45.00)
	assert.True(t, verdict.Verified)
	assert.Equal(t, 0.8, verdict.Confidence)
}

func TestAnalyzeSlip_UnrelatedText(t *testing.T) {
	verdict := AnalyzeSlip("grocery list: milk 50, bread 30", 1500)

	assert.False(t, verdict.Verified)
	assert.Equal(t, 0.2, verdict.Confidence)
}

func TestAnalyzeSlip_KeywordsCaseInsensitive(t *testing.T) {
	verdict := AnalyzeSlip("PAYMENT CONFIRMED: 2000", 2000)

	assert.True(t, verdict.Verified)
	assert.Equal(t, 0.8, verdict.Confidence)
}
