package req

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode Разбор JSON-тела запроса в структуру типа T
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	err := json.NewDecoder(body).Decode(&payload)
	if err != nil {
		return payload, fmt.Errorf("decode request: %w", err)
	}
	return payload, nil
}
