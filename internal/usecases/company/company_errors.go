package company

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrNotEnoughCompanies    = errors.New("informe ao menos duas empresas para comparar")
	ErrInvalidCompanyID      = errors.New("id de empresa inválido")
	ErrSearchQueryRequired   = errors.New("query de busca é obrigatória")
	ErrInvalidMarketCapRange = errors.New("faixa de valor de mercado inválida")

	// Erros de recurso
	ErrCompanyNotFound = errors.New("empresa não encontrada")

	// Erros de banco de dados
	ErrFetchCompanies = errors.New("erro ao buscar empresas no banco de dados")
)

// CompanyError é um erro com contexto adicional para consultas de empresas
type CompanyError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	CompanyID int    // ID da empresa envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CompanyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CompanyError) Unwrap() error {
	return e.Err
}

func NewCompanyError(err error, code string, details string) *CompanyError {
	return &CompanyError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCompanyErrorWithID(err error, code string, companyID int, details string) *CompanyError {
	return &CompanyError{
		Err:       err,
		Code:      code,
		CompanyID: companyID,
		Details:   details,
	}
}
