package inquiries

import "time"

// Inquiry es un mensaje de contacto ya guardado.
type Inquiry struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	BreedInterest string    `json:"breedInterest,omitempty"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SubmitInput es lo que manda el formulario público. Phone y Breed son opcionales.
type SubmitInput struct {
	Name    string
	Email   string
	Phone   string
	Breed   string
	Message string
}
