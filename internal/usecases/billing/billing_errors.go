package billing

import (
	"errors"
	"fmt"
)

var (
	ErrPriceIDRequired  = errors.New("priceId é obrigatório")
	ErrCheckoutFailed   = errors.New("falha ao criar sessão de checkout")
	ErrInvalidSignature = errors.New("assinatura do webhook inválida")
)

// BillingError é um erro com contexto adicional para cobrança
type BillingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais, apenas para log
}

// Error implementa a interface error
func (e *BillingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *BillingError) Unwrap() error {
	return e.Err
}

func NewBillingError(err error, code string, details string) *BillingError {
	return &BillingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
