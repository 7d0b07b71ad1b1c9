package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseUint interpreta parâmetros de query como LIMIT e OFFSET. Vazio
// retorna o padrão; negativo, não numérico ou acima do bigint do Postgres é erro.
func ParseUint(value string, defaultValue uint64) (uint64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed < 0 {
		return 0, fmt.Errorf("valor inválido %q: deve ser um inteiro entre 0 e %d", value, int64(math.MaxInt64))
	}

	return uint64(parsed), nil
}

// ParseID interpreta ids de rota, que precisam ser inteiros positivos
func ParseID(value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("id inválido %q", value)
	}

	return parsed, nil
}
