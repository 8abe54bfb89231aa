// Package mockdata holds the static sample records served when the backend
// is unreachable or the user has no patient linkage code. Read-only.
package mockdata

import "ayuraksha-service/internal/app/models"

func Alerts() []models.Alert {
	return []models.Alert{
		{
			ID:   "1",
			Type: "High Risk",
			Title: models.LocalizedText{
				English: "High Blood Pressure Detected",
				Hindi:   "उच्च रक्तचाप का पता चला",
			},
			Summary: models.LocalizedText{
				English: "Your recent blood pressure reading shows elevated levels.",
				Hindi:   "आपकी हाल की रक्तचाप रीडिंग उच्च स्तर दिखाती है।",
			},
			Details: models.LocalizedText{
				English: "Your blood pressure reading of 150/95 is higher than normal. Please consult your doctor immediately and avoid stress.",
				Hindi:   "150/95 की आपकी रक्तचाप रीडिंग सामान्य से अधिक है। कृपया तुरंत अपने डॉक्टर से परामर्श लें और तनाव से बचें।",
			},
			Date: "2025-01-04",
		},
		{
			ID:   "2",
			Type: "Guidance",
			Title: models.LocalizedText{
				English: "Medication Reminder",
				Hindi:   "दवा याद दिलाना",
			},
			Summary: models.LocalizedText{
				English: "Time to refill your prescription.",
				Hindi:   "अपने नुस्खे को फिर से भरने का समय।",
			},
			Details: models.LocalizedText{
				English: "Your blood pressure medication is running low. Please schedule a consultation to refill your prescription.",
				Hindi:   "आपकी रक्तचाप की दवा कम हो रही है। कृपया अपने नुस्खे को फिर से भरने के लिए परामर्श निर्धारित करें।",
			},
			Date: "2025-01-03",
		},
		{
			ID:   "3",
			Type: "Advisory",
			Title: models.LocalizedText{
				English: "Annual Checkup Due",
				Hindi:   "वार्षिक जांच बाकी",
			},
			Summary: models.LocalizedText{
				English: "Schedule your annual health checkup.",
				Hindi:   "अपनी वार्षिक स्वास्थ्य जांच निर्धारित करें।",
			},
			Details: models.LocalizedText{
				English: "It's time for your annual health checkup. Regular checkups help in early detection of health issues.",
				Hindi:   "यह आपकी वार्षिक स्वास्थ्य जांच का समय है। नियमित जांच स्वास्थ्य समस्याओं का शीघ्र पता लगाने में मदद करती है।",
			},
			Date: "2025-01-02",
		},
	}
}

func Records() []models.MedicalRecord {
	return []models.MedicalRecord{
		{
			ID:       "rec-1",
			Type:     "Blood Report",
			Date:     "2025-01-04",
			Doctor:   "Dr. Sharma",
			Clinic:   "City Hospital",
			Findings: "All parameters within normal range. Hemoglobin: 14.2 g/dL, WBC: 7500/μL",
			Status:   "Normal",
		},
		{
			ID:       "rec-2",
			Type:     "Prescription",
			Date:     "2025-01-03",
			Doctor:   "Dr. Patel",
			Clinic:   "Health Clinic",
			Findings: "Prescribed medication for hypertension: Amlodipine 5mg, once daily",
			Status:   "Reviewed",
		},
		{
			ID:       "rec-3",
			Type:     "Consultation",
			Date:     "2025-01-01",
			Doctor:   "Dr. Kumar",
			Clinic:   "Wellness Center",
			Findings: "General checkup. Blood pressure slightly elevated. Advised lifestyle changes.",
			Status:   "Reviewed",
		},
	}
}

func Doctors() []models.DoctorProfile {
	return []models.DoctorProfile{
		{
			ID:        "doc-1",
			Name:      "Dr. Rajesh Sharma",
			Specialty: "Cardiologist",
			Rating:    4.8,
			Distance:  "2.5 km",
			Location:  "Mumbai",
			Phone:     "+91 98765 43210",
			Email:     "dr.sharma@hospital.com",
			Address:   "123 Medical Street, Mumbai, Maharashtra 400001",
			About:     "Dr. Sharma is a renowned cardiologist with over 15 years of experience in treating heart conditions.",
			Services:  []string{"Heart Disease Treatment", "ECG", "Echocardiogram", "Cardiac Consultation"},
		},
		{
			ID:        "doc-2",
			Name:      "Dr. Priya Patel",
			Specialty: "General Physician",
			Rating:    4.5,
			Distance:  "1.2 km",
			Location:  "Mumbai",
			Phone:     "+91 98765 43211",
			Email:     "dr.patel@clinic.com",
			Address:   "456 Health Avenue, Mumbai, Maharashtra 400002",
			About:     "Dr. Patel specializes in general medicine and preventive healthcare.",
			Services:  []string{"General Consultation", "Health Checkups", "Vaccination", "Chronic Disease Management"},
		},
		{
			ID:        "doc-3",
			Name:      "Apollo Hospital",
			Specialty: "Multi-Specialty Hospital",
			Rating:    4.7,
			Distance:  "3.0 km",
			Location:  "Mumbai",
			Phone:     "+91 22 1234 5678",
			Email:     "contact@apollo.com",
			Address:   "789 Hospital Road, Mumbai, Maharashtra 400003",
			About:     "Apollo Hospital is a leading multi-specialty hospital providing comprehensive healthcare services.",
			Services:  []string{"24/7 Emergency", "Surgery", "Diagnostics", "Intensive Care", "Pharmacy"},
		},
	}
}

func Uploads() []models.UploadReceipt {
	return []models.UploadReceipt{
		{
			ID:           "1",
			PatientCode:  "9876543210987654",
			PatientName:  "Priya Sharma",
			DocumentType: "Blood Report",
			Filename:     "blood_report_nov_2025.pdf",
			Size:         2400000,
			Status:       "Completed",
			UploadedBy:   "Dr. Admin",
			UploadedAt:   "2025-11-03",
		},
		{
			ID:           "2",
			PatientCode:  "1122334455667788",
			PatientName:  "Amit Singh",
			DocumentType: "MRI Scan",
			Filename:     "mri_brain_scan.pdf",
			Size:         8700000,
			Status:       "Completed",
			UploadedBy:   "Medical Staff",
			UploadedAt:   "2025-11-02",
		},
		{
			ID:           "3",
			PatientCode:  "1234567890123456",
			PatientName:  "Krishna Kumar",
			DocumentType: "X-Ray",
			Filename:     "chest_xray.jpg",
			Size:         1900000,
			Status:       "Completed",
			UploadedBy:   "Dr. Admin",
			UploadedAt:   "2025-11-01",
		},
		{
			ID:           "4",
			PatientCode:  "2233445566778899",
			PatientName:  "Anjali Menon",
			DocumentType: "Prescription",
			Filename:     "prescription_oct_2025.pdf",
			Size:         500000,
			Status:       "Completed",
			UploadedBy:   "Medical Staff",
			UploadedAt:   "2025-10-30",
		},
		{
			ID:           "5",
			PatientCode:  "9876543210987654",
			PatientName:  "Priya Sharma",
			DocumentType: "CT Scan",
			Filename:     "ct_scan_abdomen.pdf",
			Size:         12300000,
			Status:       "Completed",
			UploadedBy:   "Dr. Admin",
			UploadedAt:   "2025-10-28",
		},
	}
}
