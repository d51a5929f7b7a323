package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"cldrgen/internal/assemble"
)

// MsgpackEmitter writes the payload as a versioned msgpack artifact. The
// write is atomic: a temp file in the target directory, then rename, so an
// aborted run never leaves a partial artifact behind.
type MsgpackEmitter struct {
	path string
}

// NewMsgpack creates an emitter writing to path.
func NewMsgpack(path string) *MsgpackEmitter {
	return &MsgpackEmitter{path: path}
}

func (e *MsgpackEmitter) Emit(m *assemble.Model) error {
	payload := FromModel(m)

	dir := filepath.Dir(e.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer os.Remove(tmpName)

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(payload); err != nil {
		f.Close()
		return fmt.Errorf("encode payload: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, e.path)
}

// ReadMsgpack loads a payload back from disk. A schema mismatch is an
// error, not a silent reinterpretation.
func ReadMsgpack(path string) (*Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var payload Payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if payload.Schema != payloadSchemaVersion {
		return nil, fmt.Errorf("payload schema %d, want %d", payload.Schema, payloadSchemaVersion)
	}
	return &payload, nil
}
