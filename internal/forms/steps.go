package forms

// Worker registration runs three steps: identity, contact details, and a
// review screen with no fields of its own.
func WorkerSteps() [][]string {
	return [][]string{
		{"email", "password", "confirmPassword", "first_name", "last_name"},
		{"phone", "date_of_birth", "postcode"},
		{},
	}
}

// Care home registration is a single page.
func CareHomeSteps() [][]string {
	return [][]string{
		{"business_name", "cqc_number", "email", "password", "confirmPassword", "phone", "postcode"},
	}
}

// LoginFields are the two fields of the login form.
func LoginFields() []string {
	return []string{"email", "password"}
}

// WorkerProfileFields are parked in the pending-profile store after a
// successful worker registration; the backend only receives credentials.
func WorkerProfileFields() []string {
	return []string{"first_name", "last_name", "phone", "date_of_birth", "postcode"}
}

// CareHomeProfileFields are parked after a care home registration.
func CareHomeProfileFields() []string {
	return []string{"business_name", "cqc_number", "phone", "postcode"}
}
