// Package identity produces and persists the opaque identifier that stands
// in for "this installation". Tasks are scoped to it in place of a user
// account.
package identity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// deviceIDFile is the filename holding the identifier inside the config dir.
// The file is written with 0600 permissions.
const deviceIDFile = "device_id"

// Manager resolves the device identifier lazily on first use and caches it
// for the process lifetime.
type Manager struct {
	mu        sync.Mutex
	configDir string
	logger    *log.Logger
	cached    string
}

// NewManager creates a Manager persisting the identifier under configDir.
// A nil logger falls back to the package default.
func NewManager(configDir string, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{configDir: configDir, logger: logger}
}

// DeviceID returns the identifier for this installation, creating and
// persisting one on first call. If the identifier cannot be persisted the
// failure is logged at warn level and an ephemeral identifier is returned;
// it remains stable for this process but a fresh one is generated next run.
func (m *Manager) DeviceID() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cached != "" {
		return m.cached
	}

	path := filepath.Join(m.configDir, deviceIDFile)
	if data, err := os.ReadFile(path); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			m.cached = id
			return id
		}
	}

	id := generateID()
	if err := m.persist(path, id); err != nil {
		m.logger.Warn("device id not persisted, using ephemeral identity", "err", err)
	}
	m.cached = id
	return id
}

// persist writes the identifier with owner-only permissions.
func (m *Manager) persist(path, id string) error {
	if err := os.MkdirAll(m.configDir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return fmt.Errorf("write device id: %w", err)
	}
	return nil
}

// generateID builds a new identifier: the current time in milliseconds plus
// a random suffix, unique across installations with overwhelming
// probability.
func generateID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("device_%d_%s", time.Now().UnixMilli(), suffix)
}
