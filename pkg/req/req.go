package req

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodySize тела запросов у нас маленькие
const maxBodySize = 1 << 20

var ErrEmptyBody = errors.New("empty request body")

// Decode читает JSON тело запроса в T. Лишние поля запрещены
func Decode[T any](body io.Reader) (T, error) {
	var payload T

	dec := json.NewDecoder(io.LimitReader(body, maxBodySize))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return payload, ErrEmptyBody
		}
		return payload, fmt.Errorf("decode request: %w", err)
	}

	return payload, nil
}
