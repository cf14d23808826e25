package utils

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodySize limita o corpo das requisições JSON
const maxBodySize = 1 << 20

// WriteJSON serializa a resposta com o status informado
func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// DecodeJSON lê o corpo da requisição rejeitando campos desconhecidos
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("corpo da requisição vazio")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if err == io.EOF {
			return errors.New("corpo da requisição vazio")
		}
		return errors.Wrap(err, "JSON inválido")
	}
	return nil
}
