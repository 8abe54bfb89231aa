package utils

import (
	"ayuraksha-service/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var numericRegex = regexp.MustCompile(constvars.RegexNumeric)

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("portal", validatePortal)
	validate.RegisterValidation("patient_code", validatePatientCode)
	validate.RegisterValidation("document_type", validateDocumentType)
	validate.RegisterValidation("accepted", validateAccepted)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) >= 8
}

func validatePortal(fl validator.FieldLevel) bool {
	return IsKnownPortal(fl.Field().String())
}

func validatePatientCode(fl validator.FieldLevel) bool {
	return IsValidPatientCode(fl.Field().String())
}

func validateDocumentType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, docType := range constvars.DocumentTypes {
		if value == docType {
			return true
		}
	}
	return false
}

func validateAccepted(fl validator.FieldLevel) bool {
	return fl.Field().Bool()
}

func IsKnownPortal(portal string) bool {
	return portal == constvars.PortalPatient ||
		portal == constvars.PortalDoctor ||
		portal == constvars.PortalUploader
}

func IsValidPatientCode(code string) bool {
	if len(code) < constvars.PatientCodeMinDigits || len(code) > constvars.PatientCodeMaxDigits {
		return false
	}
	return numericRegex.MatchString(code)
}
