package wifi

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// IPConfig is a static address assignment. An empty IP keeps DHCP.
type IPConfig struct {
	IP      string
	Netmask string
	Gateway string
	DNS     string
}

// UnmarshalJSON accepts ["ip","mask","gw","dns"], the same four values as a
// tuple string "('ip', 'mask', 'gw', 'dns')", or an object.
func (c *IPConfig) UnmarshalJSON(b []byte) error {
	var parts []string

	var tuple string
	if err := json.Unmarshal(b, &tuple); err == nil {
		tuple = strings.Trim(strings.TrimSpace(tuple), "()[]")
		if tuple == "" {
			return nil
		}
		for _, p := range strings.Split(tuple, ",") {
			parts = append(parts, strings.Trim(strings.TrimSpace(p), `'"`))
		}
	} else if err := json.Unmarshal(b, &parts); err != nil {
		type plain IPConfig
		return json.Unmarshal(b, (*plain)(c))
	}

	if len(parts) != 4 {
		return errors.Errorf("wifi: ipconfig wants 4 values, got %d", len(parts))
	}

	c.IP, c.Netmask, c.Gateway, c.DNS = parts[0], parts[1], parts[2], parts[3]
	return nil
}

type Network struct {
	SSID     string    `json:"SSID"`
	Pass     string    `json:"PASS"`
	IPConfig *IPConfig `json:"IPCONFIG,omitempty"`
}

// LoadNetworks reads the known networks list, in connection order.
func LoadNetworks(fs afero.Fs, path string) ([]Network, error) {
	bs, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(err, "wifi: read networks")
	}

	var networks []Network
	if err := json.Unmarshal(bs, &networks); err != nil {
		return nil, errors.Wrapf(err, "wifi: parse %s", path)
	}

	for i, n := range networks {
		if n.SSID == "" {
			return nil, errors.Errorf("wifi: network %d has no SSID", i)
		}
	}

	return networks, nil
}
