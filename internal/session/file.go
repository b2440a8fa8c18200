package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"fgmedic-cli/internal/model"
)

// persisted is the on-disk session: the local-storage analog. Token and
// identity live in one file so they can never desync.
type persisted struct {
	Token    string          `json:"token"`
	Identity *model.Identity `json:"identity"`
}

type file struct {
	path string
}

func newFile(stateDir string) *file {
	return &file{path: filepath.Join(stateDir, "session.json")}
}

// read returns (nil, nil) when no session has ever been stored.
func (f *file) read() (*persisted, error) {
	b, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p := &persisted{}
	if err := json.Unmarshal(b, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (f *file) write(p *persisted) error {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	// credential on disk, keep it owner-only
	return os.WriteFile(f.path, b, 0o600)
}

func (f *file) remove() {
	_ = os.Remove(f.path)
}
