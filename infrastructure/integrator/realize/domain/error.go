package realizedomain

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

var (
	// ErrPayloadTooLarge indica que a resposta excedeu o teto de bytes e
	// não foi interpretada
	ErrPayloadTooLarge = errors.New("resposta da API excede o tamanho máximo permitido")

	// ErrPageOutOfRange indica uma página fora do intervalo suportado pela
	// paginação de sites
	ErrPageOutOfRange = errors.New("página fora do intervalo permitido")

	// ErrMissingCredentials indica ausência de client_id/client_secret
	ErrMissingCredentials = errors.New("client_id ou client_secret não configurados")
)

// APIError representa uma resposta não-2xx da API do Realize
type APIError struct {
	StatusCode int
	Op         string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API %d (%s)", e.StatusCode, e.Op)
}

// TransportError representa uma falha de rede, distinta de um erro HTTP
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.HostNotFound() {
		return fmt.Sprintf("erro de rede em %s: host não encontrado, verifique sua conexão/VPN", e.Op)
	}
	return fmt.Sprintf("erro de rede em %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HostNotFound informa se a falha é de resolução DNS, caso em que a
// interface orienta o operador a checar conexão/VPN
func (e *TransportError) HostNotFound() bool {
	var dnsErr *net.DNSError
	if errors.As(e.Err, &dnsErr) {
		return dnsErr.IsNotFound
	}
	return strings.Contains(e.Err.Error(), "no such host")
}

// IsNotFound informa se err é um erro HTTP 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
