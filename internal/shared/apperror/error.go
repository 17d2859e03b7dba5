package apperror

import "fmt"

// AppError adalah error aplikasi yang sudah membawa kode stabil dan status
// HTTP-nya sendiri, sehingga handler tinggal menulis tanpa switch-case.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    any   // payload tambahan untuk client, misal map field -> pesan validasi
	Err        error // error asli yang dibungkus, boleh nil
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap supaya errors.Is/As tembus ke error asli
func (e *AppError) Unwrap() error {
	return e.Err
}

// New membuat sentinel error; dipakai di package errors per modul.
func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap membungkus error asli dengan kode dan status. Mengembalikan nil
// untuk err nil supaya aman dipakai inline di return.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}
