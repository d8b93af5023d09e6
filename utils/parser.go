package utils

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/vitwit/checkout/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateClientConfig checks a config against its struct tags and makes
// sure at least one credential is present.
func ValidateClientConfig(config *types.ClientConfig) error {
	if config == nil {
		return types.NewValueError("client config is required")
	}
	if err := validate.Struct(config); err != nil {
		return types.NewValueError(fmt.Sprintf("validation failed: %v", err))
	}
	if config.SecretKey == "" && config.PublicKey == "" && config.ClientID == "" {
		return types.NewValueError("a secret key, public key or client id is required")
	}
	return nil
}

// ParseClientConfig parses and validates a ClientConfig from JSON.
func ParseClientConfig(data []byte) (*types.ClientConfig, error) {
	var config types.ClientConfig

	if err := json.Unmarshal(data, &config); err != nil {
		return nil, types.NewValueError(fmt.Sprintf("failed to parse client config: %v", err))
	}
	if config.Environment == "" {
		config.Environment = types.EnvironmentSandbox
	}

	if err := ValidateClientConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// ParsePayload decodes a JSON object into a Payload, keeping numbers as
// json.Number so amounts keep their original spelling.
func ParsePayload(data []byte) (types.Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var p types.Payload
	if err := dec.Decode(&p); err != nil {
		return nil, types.NewValueError(fmt.Sprintf("failed to parse payload: %v", err))
	}
	return p, nil
}

// NormalizeJSON formats JSON with consistent indentation
func NormalizeJSON(data interface{}) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}
