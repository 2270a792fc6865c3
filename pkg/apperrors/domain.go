package apperrors

import (
	"net/http"
)

// Messages below are part of the public contract: the registration front-end
// matches on them (e.g. it looks for "cpf/cnpj" in the conflict text).

// --- Registration ---

var ErrMissingFields = New(
	CodeMissingFields,
	"courier",
	"Todos os campos são obrigatórios.",
	http.StatusBadRequest,
)

var ErrNoFieldToCheck = New(
	CodeValidationFailed,
	"courier",
	"Pelo menos um dos campos (email, celular, cpfCNPJ) deve ser fornecido.",
	http.StatusBadRequest,
)

var ErrDocumentTaken = New(CodeConflict, "courier", "CPF/CNPJ já cadastrado.", http.StatusBadRequest)

var ErrPhoneTaken = New(CodeConflict, "courier", "Celular já cadastrado.", http.StatusBadRequest)

var ErrEmailTaken = New(CodeConflict, "courier", "E-mail já cadastrado.", http.StatusBadRequest)

// ErrCourierConflict - the store rejected the insert on a unique index. Raised
// when two registrations race past the availability check.
var ErrCourierConflict = New(
	CodeConflict,
	"courier",
	"E-mail, celular ou CPF/CNPJ já cadastrado.",
	http.StatusBadRequest,
)

var ErrInvalidDocument = New(CodeValidationFailed, "courier", "CPF ou CNPJ inválido.", http.StatusBadRequest)

var ErrInvalidPhoto = New(CodeValidationFailed, "courier", "Imagem inválida: esperado conteúdo em base64.", http.StatusBadRequest)

var ErrInvalidBirthDate = New(CodeValidationFailed, "courier", "Data de nascimento inválida.", http.StatusBadRequest)

var ErrCourierNotFound = New(CodeNotFound, "courier", "Entregador não encontrado.", http.StatusNotFound)

var ErrInvalidAvailability = New(CodeValidationFailed, "courier", "Disponibilidade inválida.", http.StatusBadRequest)

// --- Vehicles ---

var ErrDuplicatePlate = New(
	CodeDuplicatePlate,
	"vehicle",
	"Placa já cadastrada para este entregador.",
	http.StatusBadRequest,
)

// ErrPlateTaken is used instead of ErrDuplicatePlate when plates are unique
// across all couriers (vehicles.global_plate_uniqueness).
var ErrPlateTaken = New(CodeDuplicatePlate, "vehicle", "Placa já cadastrada.", http.StatusBadRequest)

var ErrVehicleNotFound = New(
	CodeNotFound,
	"vehicle",
	"Veículo não encontrado para este entregador.",
	http.StatusNotFound,
)

var ErrVehicleIDRequired = New(CodeValidationFailed, "vehicle", "ID do veículo é obrigatório.", http.StatusBadRequest)

var ErrInvalidPlate = New(CodeValidationFailed, "vehicle", "Placa inválida! Formato deve ser AAA0A00 ou AAA-0000.", http.StatusBadRequest)

var ErrInvalidVehicleType = New(CodeValidationFailed, "vehicle", "Tipo de veículo inválido.", http.StatusBadRequest)

var ErrNoVehicles = New(CodeNotFound, "vehicle", "Nenhum veículo encontrado para este entregador.", http.StatusNotFound)

// --- Auth ---

var ErrLoginFieldsRequired = New(
	CodeValidationFailed,
	"auth",
	"Os campos email e senha são obrigatórios.",
	http.StatusBadRequest,
)

var ErrUserNotFound = New(CodeNotFound, "auth", "Usuário não encontrado.", http.StatusNotFound)

var ErrWrongPassword = New(CodeInvalidCredentials, "auth", "Senha incorreta.", http.StatusUnauthorized)

var ErrInvalidToken = New(CodeInvalidToken, "auth", "Token inválido ou expirado.", http.StatusUnauthorized)

var ErrTokenCourierMismatch = New(CodeUnauthorized, "auth", "Token não pertence a este entregador.", http.StatusUnauthorized)
