package payment

import "errors"

var (
	ErrUpstream         = errors.New("falha na comunicação com o provedor de pagamento")
	ErrInvalidSignature = errors.New("assinatura do webhook inválida")
)
