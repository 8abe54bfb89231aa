package utils

import (
	"ayuraksha-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

func SanitizeSignupRequest(input *requests.Signup) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.LicenseNumber = strings.TrimSpace(input.LicenseNumber)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.FacilityName = strings.TrimSpace(input.FacilityName)
	input.FacilityAddress = strings.TrimSpace(input.FacilityAddress)
}

func SanitizeVerifyPatientRequest(input *requests.VerifyPatient) {
	input.PatientCode = strings.TrimSpace(input.PatientCode)
}

func SanitizeChatMessageRequest(input *requests.ChatMessage) {
	input.Message = strings.TrimSpace(input.Message)
	input.Language = strings.TrimSpace(input.Language)
}
