package flagx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "social.json", "-a", "http://localhost:8000/api"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "social.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-s", "memory"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags and subcommands ignored",
			args:         []string{"feed", "-x", "1", "--y=2"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-s"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "--store=redis"},
			allowedFlags: []string{"-c", "--store"},
			want:         []string{"-c", "--store=redis"},
		},
		{
			name:         "several allowed flags keep order",
			args:         []string{"-a", "http://h/api", "whoami", "-t", "5"},
			allowedFlags: []string{"-a", "-t"},
			want:         []string{"-a", "http://h/api", "-t", "5"},
		},
		{
			name:         "repeated flag preserved",
			args:         []string{"-s", "memory", "-s", "sqlite"},
			allowedFlags: []string{"-s"},
			want:         []string{"-s", "memory", "-s", "sqlite"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestJSONConfigPath(t *testing.T) {
	t.Run("short -c", func(t *testing.T) {
		assert.Equal(t, "/etc/social.json", JSONConfigPath([]string{"-c", "/etc/social.json"}))
	})

	t.Run("long --config with equals", func(t *testing.T) {
		assert.Equal(t, "/tmp/a.json", JSONConfigPath([]string{"feed", "--config=/tmp/a.json"}))
	})

	t.Run("absent", func(t *testing.T) {
		assert.Empty(t, JSONConfigPath([]string{"-a", "http://h/api"}))
	})

	t.Run("last wins", func(t *testing.T) {
		assert.Equal(t, "/2.json", JSONConfigPath([]string{"-c", "/1.json", "-config", "/2.json"}))
	})
}
