package flagx

import (
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
			args:         []string{"-c", "conf.json", "-a", "http://localhost/api"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"-c", "conf.json"},
		},
		{
			name:         "long flag with equals",
			args:         []string{"--config=alt.json", "-s", "redis"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-d"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-s", "memory"},
			allowedFlags: []string{"-c", "-s"},
			want:         []string{"-c", "-s", "memory"},
		},
		{
			name:         "equals value may start with dash",
			args:         []string{"-d=-weird.db"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d=-weird.db"},
		},
		{
			name:         "repeated flag preserved in order",
			args:         []string{"-a", "one", "-a", "two"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", "one", "-a", "two"},
		},
		{
			name:         "empty args",
			args:         nil,
			allowedFlags: []string{"-a"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFile(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "/etc/shopcli.json"}, want: "/etc/shopcli.json"},
		{name: "long", args: []string{"-config", "long.json"}, want: "long.json"},
		{name: "double dash equals", args: []string{"--config=eq.json"}, want: "eq.json"},
		{name: "mixed with other flags", args: []string{"-a", "http://x/api", "-c", "mixed.json", "-l", "debug"}, want: "mixed.json"},
		{name: "last wins", args: []string{"-c", "1.json", "-config", "2.json"}, want: "2.json"},
		{name: "absent", args: []string{"-s", "memory"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFile(tt.args))
		})
	}
}
