package wifi

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type calls struct {
	cmds []string
	out  map[string]string
	fail map[string]bool
}

func (c *calls) run(_ context.Context, name string, args ...string) ([]byte, error) {
	cmd := strings.Join(append([]string{name}, args...), " ")
	c.cmds = append(c.cmds, cmd)
	for prefix, out := range c.out {
		if strings.HasPrefix(cmd, prefix) {
			if c.fail[prefix] {
				return []byte(out), errors.New("exit status 10")
			}
			return []byte(out), nil
		}
	}
	return nil, nil
}

func TestNMCLIConnect(t *testing.T) {
	c := &calls{out: map[string]string{"nmcli -t -f STATE general": "connected\n"}}
	st := NewNMCLI("wlan0")
	st.run = c.run

	require.NoError(t, st.Connect(context.Background(), "Home", "homepass"))
	assert.True(t, st.Connected())
	assert.Equal(t, 1, st.Status())
	assert.Equal(t, "nmcli device wifi connect Home password homepass ifname wlan0", c.cmds[0])

	require.NoError(t, st.Configure(&IPConfig{IP: "192.168.1.50", Netmask: "255.255.255.0", Gateway: "192.168.1.1", DNS: "1.1.1.1"}))
	assert.Equal(t, []string{
		"nmcli connection modify Home ipv4.method manual ipv4.addresses 192.168.1.50/24 ipv4.gateway 192.168.1.1 ipv4.dns 1.1.1.1",
		"nmcli connection up Home",
	}, c.cmds[2:])

	require.NoError(t, st.Disconnect())
	assert.Equal(t, "nmcli device disconnect wlan0", c.cmds[len(c.cmds)-1])
	assert.Zero(t, st.Status())
}

func TestNMCLIBadSecret(t *testing.T) {
	c := &calls{
		out:  map[string]string{"nmcli device wifi connect": "Error: Secrets were required, but not provided.", "nmcli -t": "disconnected"},
		fail: map[string]bool{"nmcli device wifi connect": true},
	}
	st := NewNMCLI("")
	st.run = c.run

	assert.Error(t, st.Connect(context.Background(), "Lab", "nope"))
	assert.Equal(t, -1, st.Status())
	assert.False(t, st.Connected())
	assert.Equal(t, "nmcli device wifi connect Lab password nope", c.cmds[0])
}

func TestNMCLIBadNetmask(t *testing.T) {
	st := NewNMCLI("")
	st.run = (&calls{}).run
	assert.Error(t, st.Configure(&IPConfig{IP: "10.0.0.2", Netmask: "nope"}))
}
