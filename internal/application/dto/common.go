package dto

// ErrorResponse respuesta de error con código estable y mensaje legible.
// La usan el middleware de auth y los errores de infraestructura; el contrato
// de ingesta/analítica del frontend existente usa MessageResponse (solo message).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta mínima {message} del contrato de ingesta.
type MessageResponse struct {
	Message string `json:"message"`
}
