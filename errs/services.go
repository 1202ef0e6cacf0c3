package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Errors raised by the third-party integrations (chat completion, email delivery).
var (
	ErrEmailDelivery   = errors.New("email delivery failed")
	ErrConfigMissing   = errors.New("configuration missing")
	ErrEmptyCompletion = errors.New("empty completion response")
)

func NewEmailDeliveryError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrEmailDelivery,
		Details:    "Contact email could not be delivered",
		Cause:      cause,
	}
}

func NewConfigError(configName string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigMissing,
		Details:    fmt.Sprintf("Configuration value %s is not set", configName),
		Field:      configName,
	}
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigMissing)
}
