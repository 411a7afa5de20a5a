package vault

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

// LoadSecrets reads the configured Vault KV path and exports every
// string secret into the process environment, so config.Load picks
// them up like any other variable. The HTTP client is injected so
// tests can point it at a fake Vault.
//
// Callers decide what a failure means; the services log it and fall
// back to whatever is already in the environment.
func LoadSecrets(client *http.Client) error {
	vaultAddr := os.Getenv("VAULT_ADDR")
	vaultToken := os.Getenv("VAULT_TOKEN")
	secretPath := os.Getenv("VAULT_SECRET_PATH")

	if vaultAddr == "" || secretPath == "" {
		return fmt.Errorf("vault is not configured (VAULT_ADDR / VAULT_SECRET_PATH)")
	}

	url := fmt.Sprintf("%s/v1/%s", vaultAddr, secretPath)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build vault request: %w", err)
	}
	req.Header.Set("X-Vault-Token", vaultToken)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("vault request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read vault response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("vault error: %s", resp.Status)
	}

	var vaultResp map[string]interface{}
	if err := json.Unmarshal(body, &vaultResp); err != nil {
		return fmt.Errorf("decode vault response: %w", err)
	}

	data, ok := vaultResp["data"].(map[string]interface{})
	if !ok {
		return fmt.Errorf("vault response has no 'data' field")
	}

	for key, value := range data {
		valStr, isString := value.(string)
		if !isString {
			log.Printf("[vault] skipping %s: not a string", key)
			continue
		}
		os.Setenv(key, valStr)
	}

	log.Printf("[vault] loaded %d secrets from %s", len(data), secretPath)
	return nil
}
