package scan_access

import (
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// credentialKind вид отсканированного кода доступа
type credentialKind int

const (
	credentialUnknown credentialKind = iota
	credentialPIN                    // 4-значный PIN
	credentialPayload                // структурированный QR-payload (JSON)
	credentialFlatCode               // плоский QR-токен (legacy формат)
)

// parsedCredential результат разбора отсканированной строки
type parsedCredential struct {
	kind    credentialKind
	pin     string
	payload *domain.QRPayload
	flat    string
}

// parseCredential классифицирует отсканированную строку
//
// Порядок разбора:
//  1. ровно 4 цифры - PIN
//  2. валидный JSON с type=parking_verification - структурированный payload
//  3. любая другая непустая строка - плоский QR-токен (legacy)
func parseCredential(scanned string) parsedCredential {
	scanned = strings.TrimSpace(scanned)

	if scanned == "" {
		return parsedCredential{kind: credentialUnknown}
	}

	if domain.IsPIN(scanned) {
		return parsedCredential{kind: credentialPIN, pin: scanned}
	}

	if payload, err := domain.DecodeQRPayload(scanned); err == nil {
		return parsedCredential{kind: credentialPayload, payload: payload}
	}

	return parsedCredential{kind: credentialFlatCode, flat: scanned}
}
