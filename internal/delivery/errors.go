package delivery

import "fmt"

// ConfigError reports a missing or unusable mail setting.
type ConfigError struct {
	Setting string
	Invalid bool
}

func (e *ConfigError) Error() string {
	if e.Invalid {
		return fmt.Sprintf("Nieprawidlowa wartosc %s w konfiguracji.", e.Setting)
	}
	return fmt.Sprintf("Brak %s w konfiguracji.", e.Setting)
}

// RecipientError reports that no destination address could be resolved.
type RecipientError struct{}

func (e *RecipientError) Error() string {
	return "Brakuje adresu e-mail w formularzu."
}
