package requests

import "mime/multipart"

type VerifyPatient struct {
	PatientCode string `json:"patient_code" validate:"required,patient_code"`
}

type UploadDocument struct {
	PatientCode  string `validate:"required,patient_code"`
	DocumentType string `validate:"required,document_type"`

	File       multipart.File        `validate:"-"`
	FileHeader *multipart.FileHeader `validate:"-"`
}
