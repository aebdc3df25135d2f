package store

import (
	"encoding/json"
	"fmt"
	"os"

	"crinkbot/internal/util/memzero"
)

// SealSecrets encrypts values under passphrase and writes them to path (0600).
func SealSecrets(path, passphrase string, values map[string]string) error {
	if passphrase == "" {
		return fmt.Errorf("passphrase required")
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	N, r, p := scryptParamsDefault()
	sealed, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return fmt.Errorf("seal secrets: %w", err)
	}
	return writeFile(path, sealed, 0o600)
}

// OpenSecrets decrypts the secrets file at path.
func OpenSecrets(path, passphrase string) (map[string]string, error) {
	sealed, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := decrypt(passphrase, sealed)
	if err != nil {
		return nil, fmt.Errorf("open secrets %s: %w", path, err)
	}
	defer memzero.Zero(raw)

	values := make(map[string]string)
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("decode secrets %s: %w", path, err)
	}
	return values, nil
}
