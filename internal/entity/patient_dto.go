package entity

import "time"

type CreatePatientRequest struct {
	Name            string     `json:"name"`
	Age             *int       `json:"age,omitempty"`
	BloodGroup      *string    `json:"blood_group,omitempty"`
	GestationalWeek *int       `json:"gestational_week,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	MedicalHistory  *string    `json:"medical_history,omitempty"`
}

type UpdatePatientRequest struct {
	Name            *string    `json:"name,omitempty"`
	Age             *int       `json:"age,omitempty"`
	BloodGroup      *string    `json:"blood_group,omitempty"`
	GestationalWeek *int       `json:"gestational_week,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	MedicalHistory  *string    `json:"medical_history,omitempty"`
}

type ListPatientsResponse struct {
	Patients []*Patient `json:"patients"`
}

type DeletePatientResponse struct {
	Status string `json:"status"`
}
