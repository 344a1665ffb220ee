// Package auth keeps the remote catalog API token in the system keyring.
package auth

import (
	"errors"

	"github.com/marquee-cli/marquee/constant"
	"github.com/zalando/go-keyring"
)

const user = "catalog-token"

var service = constant.Marquee

// SetToken stores the catalog token.
func SetToken(token string) error {
	return keyring.Set(service, user, token)
}

// GetToken returns the stored catalog token. A missing token is not an
// error and yields an empty string.
func GetToken() (string, error) {
	token, err := keyring.Get(service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return token, err
}

// DeleteToken removes the stored catalog token.
func DeleteToken() error {
	err := keyring.Delete(service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
