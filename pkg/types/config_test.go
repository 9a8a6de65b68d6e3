package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "empty config is valid",
			config: Config{},
		},
		{
			name:   "plain filename is valid",
			config: Config{DataDir: "/tmp/daylist", Database: "tasks.db"},
		},
		{
			name:   "log levels are accepted",
			config: Config{LogLevel: "debug"},
		},
		{
			name:   "log level is case insensitive",
			config: Config{LogLevel: "WARN"},
		},
		{
			name:    "database with slash rejected",
			config:  Config{Database: "sub/dir.db"},
			wantErr: ErrDatabaseInvalid,
		},
		{
			name:    "database with backslash rejected",
			config:  Config{Database: `sub\dir.db`},
			wantErr: ErrDatabaseInvalid,
		},
		{
			name:    "path traversal rejected",
			config:  Config{Database: "../escape.db"},
			wantErr: ErrDatabaseInvalid,
		},
		{
			name:    "unknown log level rejected",
			config:  Config{LogLevel: "verbose"},
			wantErr: ErrLogLevelUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfigDatabaseName(t *testing.T) {
	assert.Equal(t, DefaultDatabase, Config{}.DatabaseName())
	assert.Equal(t, "custom.db", Config{Database: "custom.db"}.DatabaseName())
}
