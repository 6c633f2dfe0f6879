package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes content to a temp config.yaml and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
clusters:
  - name: a
    endpoint: http://localhost:9200
  - name: b
    endpoint: https://elastic.example.com:9200
    username: elastic
    password: changeme
    insecure: true
log_file: /tmp/esdash.log
request_timeout: 5s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Clusters, 2)
	assert.Equal(t, "a", cfg.Clusters[0].Name)
	assert.Equal(t, "http://localhost:9200", cfg.Clusters[0].Endpoint)
	assert.Equal(t, "elastic", cfg.Clusters[1].Username)
	assert.True(t, cfg.Clusters[1].Insecure)
	assert.Equal(t, "/tmp/esdash.log", cfg.LogFile)
	assert.Equal(t, Duration(5*time.Second), cfg.RequestTimeout)
	assert.Equal(t, []string{"a", "b"}, cfg.ClusterNames())
}

func TestLoad_DefaultTimeout(t *testing.T) {
	path := writeConfig(t, `
clusters:
  - name: a
    endpoint: http://localhost:9200
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Duration(DefaultRequestTimeout), cfg.RequestTimeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidDuration(t *testing.T) {
	path := writeConfig(t, `
clusters:
  - name: a
    endpoint: http://localhost:9200
request_timeout: soon
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid duration")
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "no clusters",
			cfg:     Config{},
			wantErr: "at least one cluster",
		},
		{
			name: "empty name",
			cfg: Config{Clusters: []ClusterConfig{
				{Name: "", Endpoint: "http://localhost:9200"},
			}},
			wantErr: "name is required",
		},
		{
			name: "duplicate name",
			cfg: Config{Clusters: []ClusterConfig{
				{Name: "a", Endpoint: "http://localhost:9200"},
				{Name: "a", Endpoint: "http://localhost:9201"},
			}},
			wantErr: "duplicate name",
		},
		{
			name: "bad scheme",
			cfg: Config{Clusters: []ClusterConfig{
				{Name: "a", Endpoint: "ftp://localhost:9200"},
			}},
			wantErr: "scheme must be http or https",
		},
		{
			name: "missing host",
			cfg: Config{Clusters: []ClusterConfig{
				{Name: "a", Endpoint: "http://"},
			}},
			wantErr: "host is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
