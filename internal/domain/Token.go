package domain

import "time"

// StoredToken é o token de acesso persistido localmente, já com a margem
// de segurança descontada da expiração
type StoredToken struct {
	Value   string    `json:"value"`
	Expires time.Time `json:"expires"`
}

// Valid informa se o token ainda pode ser usado no instante dado
func (t *StoredToken) Valid(now time.Time) bool {
	return t != nil && t.Value != "" && now.Before(t.Expires)
}
