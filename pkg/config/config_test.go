package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "halo.conf")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

const validConfig = `
failover_pairs = [["mds00", "mds01"]]

[[hosts]]
hostname = "mds00"
fence_agent = "powerman"

[hosts.resources.pool0]
kind = "heartbeat/ZFS"
parameters = { pool = "mdt0pool" }

[hosts.resources.mdt0]
kind = "lustre/Lustre"
parameters = { mountpoint = "/mnt/mdt0", target = "mdt0pool/mdt0" }
requires = "pool0"

[[hosts]]
hostname = "mds01"
fence_agent = "powerman"

[tuning]
tick_interval_seconds = 1
failure_threshold = 5
`

func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	require.Len(t, cfg.Hosts, 2)
	assert.Equal(t, "mds00", cfg.Hosts[0].Hostname)
	assert.Len(t, cfg.Hosts[0].Resources, 2)
	assert.Equal(t, "pool0", cfg.Hosts[0].Resources["mdt0"].Requires)
	assert.Equal(t, [][]string{{"mds00", "mds01"}}, cfg.FailoverPairs)

	assert.Equal(t, time.Second, cfg.Tuning.TickInterval())
	assert.Equal(t, 5, cfg.Tuning.Threshold())
	// Unset tunables take defaults.
	assert.Equal(t, DefaultProbeInterval, cfg.Tuning.ProbeInterval())
	assert.Equal(t, DefaultRPCTimeout, cfg.Tuning.RPCTimeout())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.conf"))
	assert.Error(t, err)
}

func TestLoadMalformedTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "[[hosts]\nhostname="))
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "no hosts",
			body: ``,
		},
		{
			name: "duplicate host",
			body: `
[[hosts]]
hostname = "oss00"
[[hosts]]
hostname = "oss00"
`,
		},
		{
			name: "dangling requires",
			body: `
[[hosts]]
hostname = "oss00"
[hosts.resources.ost0]
kind = "lustre/Lustre"
requires = "nosuchpool"
`,
		},
		{
			name: "dependency cycle",
			body: `
[[hosts]]
hostname = "oss00"
[hosts.resources.a]
kind = "heartbeat/ZFS"
requires = "b"
[hosts.resources.b]
kind = "heartbeat/ZFS"
requires = "a"
`,
		},
		{
			name: "resource without kind",
			body: `
[[hosts]]
hostname = "oss00"
[hosts.resources.ost0]
parameters = { pool = "tank" }
`,
		},
		{
			name: "failover pair of one",
			body: `
failover_pairs = [["oss00"]]
[[hosts]]
hostname = "oss00"
`,
		},
		{
			name: "failover pair with unknown host",
			body: `
failover_pairs = [["oss00", "ghost"]]
[[hosts]]
hostname = "oss00"
`,
		},
		{
			name: "host paired with itself",
			body: `
failover_pairs = [["oss00", "oss00"]]
[[hosts]]
hostname = "oss00"
`,
		},
		{
			name: "redfish without credentials",
			body: `
[[hosts]]
hostname = "oss00"
fence_agent = "redfish"
`,
		},
		{
			name: "unknown fence agent",
			body: `
[[hosts]]
hostname = "oss00"
fence_agent = "fence_sorcery"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestValidateAcceptsTestFence(t *testing.T) {
	body := `
[[hosts]]
hostname = "localhost:4410"
fence_agent = "fence_test"
fence_parameters = { test_id = "simple", target = "agent0" }
`
	_, err := Load(writeConfig(t, body))
	assert.NoError(t, err)
}

func TestSplitHostPort(t *testing.T) {
	t.Setenv(EnvPort, "")

	name, port, err := SplitHostPort("mds00:4410")
	require.NoError(t, err)
	assert.Equal(t, "mds00", name)
	assert.Equal(t, 4410, port)

	name, port, err = SplitHostPort("mds00")
	require.NoError(t, err)
	assert.Equal(t, "mds00", name)
	assert.Equal(t, 8000, port)

	_, _, err = SplitHostPort("mds00:notaport")
	assert.Error(t, err)

	_, _, err = SplitHostPort("")
	assert.Error(t, err)
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvSocket, "")
	t.Setenv(EnvPort, "")
	t.Setenv(EnvNetwork, "")

	assert.Equal(t, "/etc/halo/halo.conf", DefaultConfigPath())
	assert.Equal(t, "/var/run/halo.socket", DefaultSocket())
	assert.Equal(t, 8000, RemotePort())
	assert.Equal(t, "192.168.1.0/24", DefaultNetwork())

	t.Setenv(EnvPort, "4410")
	assert.Equal(t, 4410, RemotePort())
	t.Setenv(EnvPort, "not-a-port")
	assert.Equal(t, 8000, RemotePort())

	t.Setenv(EnvTestDirectory, "")
	_, ok := TestDirectory()
	assert.False(t, ok)
	t.Setenv(EnvTestDirectory, "/tmp/halo-test")
	dir, ok := TestDirectory()
	assert.True(t, ok)
	assert.Equal(t, "/tmp/halo-test", dir)
}
