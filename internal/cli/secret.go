package cli

import (
	"fmt"
	"io"

	"github.com/terraincognita07/rangepicker/internal/security"
)

// RunGenerateSecretCommand prints a fresh value suitable for SECRET_KEY.
func RunGenerateSecretCommand(out io.Writer) error {
	secret, err := security.GenerateSecretKey()
	if err != nil {
		return fmt.Errorf("generate secret: %w", err)
	}
	_, err = fmt.Fprintln(out, secret)
	return err
}
