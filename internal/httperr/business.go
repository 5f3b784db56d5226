package httperr

import "errors"

// BusinessError é a falha de regra de negócio identificada por código
// estável ("time_conflict", "holiday", "appointment_not_found"...).
// O handler traduz o código para o status HTTP e a mensagem do usuário.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness testa erro de negócio por código específico
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
