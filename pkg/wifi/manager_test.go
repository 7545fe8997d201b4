package wifi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeStation connects once ssid has been tried `after` times.
type fakeStation struct {
	good       map[string]int
	bad        map[string]bool
	tries      map[string]int
	current    string
	status     int
	configured *IPConfig
	disconnect int
}

func newFakeStation() *fakeStation {
	return &fakeStation{good: map[string]int{}, bad: map[string]bool{}, tries: map[string]int{}}
}

func (s *fakeStation) Connect(_ context.Context, ssid, _ string) error {
	s.tries[ssid]++
	s.current = ssid
	s.status = 1
	if s.bad[ssid] {
		s.status = -1
		return errors.New("secrets were required")
	}
	return nil
}

func (s *fakeStation) Connected() bool {
	after, ok := s.good[s.current]
	return ok && s.tries[s.current] >= after
}

func (s *fakeStation) Status() int { return s.status }

func (s *fakeStation) Disconnect() error {
	s.disconnect++
	s.current = ""
	return nil
}

func (s *fakeStation) Configure(ip *IPConfig) error {
	s.configured = ip
	return nil
}

func newManager(t *testing.T, st Station, opts ...Option) *Manager {
	return NewManager(st, zaptest.NewLogger(t), append([]Option{WithPoll(0)}, opts...)...)
}

func TestConnectRetries(t *testing.T) {
	st := newFakeStation()
	st.good["Home"] = 2
	m := newManager(t, st)

	ip := &IPConfig{IP: "192.168.1.50", Netmask: "255.255.255.0"}
	require.NoError(t, m.Connect(context.Background(), Network{SSID: "Home", IPConfig: ip}))
	assert.Equal(t, 2, st.tries["Home"])
	assert.Equal(t, 1, st.disconnect)
	assert.Equal(t, ip, st.configured)
}

func TestConnectGivesUp(t *testing.T) {
	st := newFakeStation()
	m := newManager(t, st, WithRetry(5, 2))

	err := m.Connect(context.Background(), Network{SSID: "Nowhere"})
	assert.True(t, errors.Is(err, ErrNoConnection))
	assert.Equal(t, 5, st.tries["Nowhere"])
}

func TestConnectBadCredentials(t *testing.T) {
	st := newFakeStation()
	st.bad["Lab"] = true
	m := newManager(t, st)

	err := m.Connect(context.Background(), Network{SSID: "Lab"})
	assert.True(t, errors.Is(err, ErrBadCredentials))
	assert.Equal(t, 1, st.tries["Lab"])
}

func TestConnectCanceled(t *testing.T) {
	st := newFakeStation()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newManager(t, st).Connect(ctx, Network{SSID: "Home"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConnectKnown(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "known_networks.json", []byte(knownNetworks), 0644))

	st := newFakeStation()
	st.bad["Home"] = true
	st.good["Hotspot"] = 1
	st.good["Office"] = 1
	m := newManager(t, st, WithNetworks(fs, "known_networks.json"))

	n, err := m.ConnectKnown(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hotspot", n.SSID)
	assert.Equal(t, 3, st.tries["Lab"])
	assert.Zero(t, st.tries["Office"])

	st = newFakeStation()
	m = newManager(t, st, WithNetworks(fs, "known_networks.json"), WithRetry(1, 1))
	_, err = m.ConnectKnown(context.Background())
	assert.True(t, errors.Is(err, ErrNoConnection))

	m = newManager(t, st, WithNetworks(fs, "missing.json"))
	_, err = m.ConnectKnown(context.Background())
	assert.Error(t, err)
}

func TestSendJSON(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	m := newManager(t, HostStation{})
	require.NoError(t, m.SendJSON(context.Background(), map[string]int{"velocity": 300}, srv.URL+"/readings"))
	assert.Equal(t, 300.0, got["velocity"])

	assert.Error(t, m.SendJSON(context.Background(), map[string]int{"velocity": 1}, srv.URL+"/fail"))
}

func TestSendJSONOffline(t *testing.T) {
	m := newManager(t, newFakeStation())
	err := m.SendJSON(context.Background(), map[string]int{}, "http://127.0.0.1:1/")
	assert.True(t, errors.Is(err, ErrNoConnection))
	assert.False(t, m.Connected())
}
