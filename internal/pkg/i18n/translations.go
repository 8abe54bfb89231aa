package i18n

var translations = map[string]Value{
	// Loading states
	"loadingText":    {"English": "Loading...", "Hindi": "लोड हो रहा है..."},
	"processingText": {"English": "Processing...", "Hindi": "प्रसंस्करण..."},

	// Portals
	"patientPortal":       {"English": "Patient Portal", "Hindi": "रोगी पोर्टल"},
	"doctorPortal":        {"English": "Doctor Portal", "Hindi": "डॉक्टर पोर्टल"},
	"uploaderPortal":      {"English": "Uploader Portal", "Hindi": "अपलोडर पोर्टल"},
	"patientDescription":  {"English": "Access your medical records and appointments", "Hindi": "अपने चिकित्सा रिकॉर्ड और नियुक्तियों तक पहुंचें"},
	"doctorDescription":   {"English": "Manage patients and create prescriptions", "Hindi": "रोगियों का प्रबंधन करें और प्रिस्क्रिप्शन बनाएं"},
	"uploaderDescription": {"English": "Upload and manage medical records", "Hindi": "चिकित्सा रिकॉर्ड अपलोड और प्रबंधित करें"},

	// Auth
	"login":         {"English": "Login", "Hindi": "लॉगिन"},
	"signup":        {"English": "Sign Up", "Hindi": "साइन अप करें"},
	"logout":        {"English": "Logout", "Hindi": "लॉगआउट"},
	"createAccount": {"English": "Create Account", "Hindi": "खाता बनाएं"},
	"signupSuccess": {"English": "Account created successfully!", "Hindi": "खाता सफलतापूर्वक बनाया गया!"},
	"loginSuccess":  {"English": "Login successful!", "Hindi": "लॉगिन सफल!"},
	"loginError":    {"English": "Login failed. Please try again.", "Hindi": "लॉगिन विफल। कृपया पुनः प्रयास करें।"},

	// Dashboard
	"dashboard":     {"English": "Dashboard", "Hindi": "डैशबोर्ड"},
	"welcomeBack":   {"English": "Welcome back", "Hindi": "वापसी पर स्वागत है"},
	"activeAlerts":  {"English": "Active Alerts", "Hindi": "सक्रिय अलर्ट"},
	"recentReports": {"English": "Recent Reports", "Hindi": "हाल की रिपोर्ट"},

	// Records and reports
	"reports":        {"English": "Reports", "Hindi": "रिपोर्ट"},
	"reportDetails":  {"English": "Report Details", "Hindi": "रिपोर्ट विवरण"},
	"keyFindings":    {"English": "Key Findings", "Hindi": "मुख्य निष्कर्ष"},
	"reportNotFound": {"English": "Report not found", "Hindi": "रिपोर्ट नहीं मिली"},
	"noRecordsFound": {"English": "No records found", "Hindi": "कोई रिकॉर्ड नहीं मिला"},
	"timeline":       {"English": "Timeline", "Hindi": "समयरेखा"},

	// Alerts
	"alerts": {"English": "Alerts", "Hindi": "अलर्ट"},

	// Doctors
	"findDoctors":    {"English": "Find Doctors", "Hindi": "डॉक्टर खोजें"},
	"doctorNotFound": {"English": "Doctor not found", "Hindi": "डॉक्टर नहीं मिला"},

	// Assistant
	"chatbot":         {"English": "AI Chatbot", "Hindi": "AI चैटबॉट"},
	"aiWelcome":       {"English": "Hello! I'm Ayu-Raksha AI Assistant. How can I help you with your health concerns today?", "Hindi": "नमस्ते! मैं आयु-रक्षा AI सहायक हूं। आज मैं आपकी स्वास्थ्य चिंताओं में कैसे मदद कर सकता हूं?"},
	"chatPlaceholder": {"English": "Type your health question...", "Hindi": "अपना स्वास्थ्य प्रश्न टाइप करें..."},
	"aiRecordsReply":  {"English": "You can browse your medical records under Reports; the newest ones appear first.", "Hindi": "आप अपने चिकित्सा रिकॉर्ड रिपोर्ट अनुभाग में देख सकते हैं; सबसे नए पहले दिखते हैं।"},
	"aiAlertsReply":   {"English": "Your health alerts are listed on the Alerts page. High-risk items need a doctor's attention.", "Hindi": "आपके स्वास्थ्य अलर्ट अलर्ट पृष्ठ पर सूचीबद्ध हैं। उच्च जोखिम वाली मदों पर डॉक्टर का ध्यान आवश्यक है।"},
	"aiUploadReply":   {"English": "To add a document, ask your clinic's uploader to verify your patient ID and upload it.", "Hindi": "दस्तावेज़ जोड़ने के लिए, अपने क्लिनिक के अपलोडर से अपनी रोगी आईडी सत्यापित कर अपलोड करने को कहें।"},
	"aiDefaultReply":  {"English": "I can help with your records, alerts, and document uploads. Could you tell me more?", "Hindi": "मैं आपके रिकॉर्ड, अलर्ट और दस्तावेज़ अपलोड में मदद कर सकता हूं। कृपया और बताएं?"},

	// Uploader
	"verifyPatient":    {"English": "Verify Patient", "Hindi": "रोगी सत्यापित करें"},
	"patientVerified":  {"English": "Patient verified", "Hindi": "रोगी सत्यापित"},
	"patientNotFound":  {"English": "Patient not found. Please check the ID.", "Hindi": "रोगी नहीं मिला। कृपया आईडी जांचें।"},
	"invalidPatientId": {"English": "Please enter a valid Patient ID (10-20 digits)", "Hindi": "कृपया एक वैध रोगी आईडी दर्ज करें (10-20 अंक)"},
	"uploadSuccess":    {"English": "File uploaded successfully!", "Hindi": "फ़ाइल सफलतापूर्वक अपलोड की गई!"},
	"uploadFailed":     {"English": "Upload failed. Please try again.", "Hindi": "अपलोड विफल रहा। कृपया पुनः प्रयास करें।"},
	"invalidFileType":  {"English": "Invalid file type", "Hindi": "अमान्य फ़ाइल प्रकार"},
	"onlyImagesAndPDF": {"English": "Only JPG, PNG, and PDF files are allowed", "Hindi": "केवल JPG, PNG और PDF फ़ाइलों की अनुमति है"},
	"fileTooLarge":     {"English": "File too large", "Hindi": "फ़ाइल बहुत बड़ी है"},
	"maxFileSize":      {"English": "Maximum file size is 10MB", "Hindi": "अधिकतम फ़ाइल आकार 10MB है"},
	"uploadHistory":    {"English": "Upload History", "Hindi": "अपलोड इतिहास"},

	// Misc
	"name": {"English": "Name", "Hindi": "नाम"},
	"age":  {"English": "Age", "Hindi": "आयु"},
	"date": {"English": "Date", "Hindi": "तिथि"},
}
