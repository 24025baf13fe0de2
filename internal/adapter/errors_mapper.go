// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into a [*ProviderError]. A body
// that is not the provider's error JSON is kept as the message.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	providerErr := &ProviderError{}
	if err := json.Unmarshal(resp.Body(), providerErr); err != nil || providerErr.Message == "" && providerErr.Code == "" {
		body := strings.TrimSpace(string(resp.Body()))
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		providerErr = &ProviderError{Message: body}
	}
	providerErr.StatusCode = resp.StatusCode()

	return providerErr
}
