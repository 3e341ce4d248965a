package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/paxelcool/ctrader-open-api-async/cterrors"
)

// Credentials is the application credential file.
//
// The on-disk keys follow the established file format: "clientId", "Secret",
// and "Host" ("demo" or "live").
type Credentials struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"Secret"`
	HostType     string `json:"Host"`
}

// LoadCredentials reads and validates a credential file.
func LoadCredentials(path string) (*Credentials, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, cterrors.Wrap(cterrors.StageToken, cterrors.CodeMissingCredentials, err)
	}
	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, cterrors.Wrap(cterrors.StageToken, cterrors.CodeMissingCredentials, err)
	}
	if c.ClientID == "" || c.ClientSecret == "" {
		return nil, cterrors.Wrap(cterrors.StageToken, cterrors.CodeMissingCredentials,
			fmt.Errorf("credential file %s missing clientId or Secret", path))
	}
	c.HostType = strings.ToLower(c.HostType)
	if c.HostType == "" {
		c.HostType = "demo"
	}
	return &c, nil
}
