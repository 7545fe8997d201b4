package wifi

import (
	"context"
	"net"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// HostStation leaves networking to the operating system and always reports
// a connection.
type HostStation struct{}

func (HostStation) Connect(context.Context, string, string) error { return nil }
func (HostStation) Connected() bool                               { return true }
func (HostStation) Status() int                                   { return 0 }
func (HostStation) Disconnect() error                             { return nil }
func (HostStation) Configure(*IPConfig) error                     { return nil }

type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// NewNMCLI drives NetworkManager through its command line client. iface may
// be empty to let NetworkManager pick the device.
func NewNMCLI(iface string) *NMCLI {
	return &NMCLI{iface: iface, run: execRun}
}

type NMCLI struct {
	iface string
	run   runner

	l      sync.Mutex
	ssid   string
	status int
}

func (n *NMCLI) Connect(ctx context.Context, ssid, pass string) error {
	args := []string{"device", "wifi", "connect", ssid}
	if pass != "" {
		args = append(args, "password", pass)
	}
	if n.iface != "" {
		args = append(args, "ifname", n.iface)
	}

	out, err := n.run(ctx, "nmcli", args...)

	n.l.Lock()
	defer n.l.Unlock()
	n.ssid = ssid

	if err != nil {
		msg := string(out)
		if strings.Contains(msg, "Secrets were required") || strings.Contains(msg, "No network with SSID") {
			n.status = -1
		}
		return errors.Wrapf(err, "nmcli: %s", strings.TrimSpace(msg))
	}

	n.status = 1
	return nil
}

func (n *NMCLI) Connected() bool {
	out, err := n.run(context.Background(), "nmcli", "-t", "-f", "STATE", "general")
	return err == nil && strings.HasPrefix(strings.TrimSpace(string(out)), "connected")
}

func (n *NMCLI) Status() int {
	n.l.Lock()
	defer n.l.Unlock()
	return n.status
}

func (n *NMCLI) Disconnect() error {
	n.l.Lock()
	n.status = 0
	n.l.Unlock()

	if n.iface == "" {
		return nil
	}
	_, err := n.run(context.Background(), "nmcli", "device", "disconnect", n.iface)
	return err
}

// Configure switches the current connection to a static address.
func (n *NMCLI) Configure(ip *IPConfig) error {
	mask := net.ParseIP(ip.Netmask).To4()
	if mask == nil {
		return errors.Errorf("nmcli: bad netmask %q", ip.Netmask)
	}
	ones, _ := net.IPMask(mask).Size()

	n.l.Lock()
	ssid := n.ssid
	n.l.Unlock()

	args := []string{"connection", "modify", ssid,
		"ipv4.method", "manual",
		"ipv4.addresses", ip.IP + "/" + strconv.Itoa(ones),
		"ipv4.gateway", ip.Gateway,
	}
	if ip.DNS != "" {
		args = append(args, "ipv4.dns", ip.DNS)
	}

	ctx := context.Background()
	if out, err := n.run(ctx, "nmcli", args...); err != nil {
		return errors.Wrapf(err, "nmcli: %s", strings.TrimSpace(string(out)))
	}
	if out, err := n.run(ctx, "nmcli", "connection", "up", ssid); err != nil {
		return errors.Wrapf(err, "nmcli: %s", strings.TrimSpace(string(out)))
	}
	return nil
}
