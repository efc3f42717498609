package model

// ContactInput is a single contact as sent to the marketing contacts API.
// Optional fields are pointers so that a present key is sent verbatim
// (even when empty) while an absent key is omitted entirely.
type ContactInput struct {
	Email     string  `json:"email"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// AdditionalFields is the typed form of the node's additionalFields collection.
type AdditionalFields struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// ContactRequestBody is the upsert payload. It carries exactly one contact per call.
type ContactRequestBody struct {
	Contacts []ContactInput `json:"contacts"`
}

// NewContactInput merges the email with whichever additional fields are present.
func NewContactInput(email string, fields AdditionalFields) ContactInput {
	return ContactInput{
		Email:     email,
		FirstName: fields.FirstName,
		LastName:  fields.LastName,
	}
}
