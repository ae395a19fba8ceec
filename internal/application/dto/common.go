package dto

// ErrorResponse respuesta de error uniforme de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Field campo que violó una regla de validación, si aplica.
	Field string `json:"field,omitempty"`
}

// CountResponse respuesta de los endpoints de conteo.
type CountResponse struct {
	Count int `json:"count"`
}

// DeleteResponse respuesta de los endpoints de borrado.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
