package providers

import (
	"fmt"
	"github.com/gookit/validate"
	"perfumefinder/internal/structures"
	"time"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks every tagged section separately so the error names the
// section that failed.
func (cv *CnfValidator) Validate() error {
	sections := []struct {
		name string
		data interface{}
	}{
		{"webServer", &cv.conf.WebServer},
		{"persistence", &cv.conf.Persistence},
		{"logger", &cv.conf.Logger},
		{"trust", &cv.conf.Trust},
	}

	for _, s := range sections {
		v := validate.Struct(s.data)
		if !v.Validate() {
			return fmt.Errorf("invalid %s config: %s", s.name, v.Errors.One())
		}
	}

	if cv.conf.Cache.Enabled && cv.conf.Cache.Size <= 0 {
		return fmt.Errorf("invalid cache config: size must be positive when cache is enabled")
	}
	if ri := cv.conf.Alerts.RefreshInterval; ri != 0 && ri < time.Second {
		return fmt.Errorf("invalid alerts config: refreshInterval must be 0 or at least 1s, got %s", ri)
	}
	return nil
}
