package validation

import (
	"fmt"
	"net/url"
	"strings"
)

// MutationMethods перечисляет HTTP методы, которые считаются мутациями.
// GET/HEAD не изменяют состояние и в очередь не попадают.
var MutationMethods = map[string]bool{
	"POST":   true,
	"PUT":    true,
	"PATCH":  true,
	"DELETE": true,
}

// MaxLabelLen максимальная длина описания мутации
const MaxLabelLen = 200

// ValidateMethod проверяет, что method является изменяющим HTTP методом
func ValidateMethod(method string) error {
	if method == "" {
		return fmt.Errorf("method cannot be empty")
	}

	if !MutationMethods[strings.ToUpper(method)] {
		return fmt.Errorf("method %s is not a mutation (use POST, PUT, PATCH or DELETE)", method)
	}

	return nil
}

// ValidateURL проверяет адрес мутации.
// Допускается абсолютный http/https URL либо путь, начинающийся с "/",
// который будет разрешён относительно адреса backend.
func ValidateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url cannot be empty")
	}

	if strings.HasPrefix(raw, "/") {
		if strings.HasPrefix(raw, "//") {
			return fmt.Errorf("url must not be protocol-relative: %s", raw)
		}
		return nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	if u.Host == "" {
		return fmt.Errorf("url must have a host: %s", raw)
	}

	return nil
}

// ValidateLabel проверяет длину описания
func ValidateLabel(label string) error {
	if len(label) > MaxLabelLen {
		return fmt.Errorf("label must not exceed %d characters", MaxLabelLen)
	}
	return nil
}
