package persist

import (
	"encoding/json"
	"fmt"

	"github.com/willsoar-boundare/working-time-around/internal/domain"
)

// SchemaVersion is the version stamped on every blob this build writes.
const SchemaVersion = 1

// blob is the persisted envelope. Records are JSON-encoded as a nested
// string so their timestamp re-hydration stays isolated from the rest
// of the envelope.
type blob struct {
	Version  int             `json:"version"`
	Records  string          `json:"records"`
	Settings domain.Settings `json:"settings"`
}

// Encode packs records and settings into the versioned blob form.
func Encode(records domain.Records, settings domain.Settings) (string, error) {
	recText, err := SerializeRecords(records)
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(blob{
		Version:  SchemaVersion,
		Records:  recText,
		Settings: settings,
	})
	if err != nil {
		return "", fmt.Errorf("encoding state blob: %w", err)
	}
	return string(data), nil
}

// Decode unpacks a blob, migrating older schema versions forward before
// deserializing. A version this build does not know is corrupt, never
// silently reinterpreted.
func Decode(text string) (domain.Records, domain.Settings, error) {
	var b blob
	if err := json.Unmarshal([]byte(text), &b); err != nil {
		return nil, domain.Settings{}, fmt.Errorf("%w: decoding state blob: %v", ErrCorrupt, err)
	}
	b, err := migrate(b)
	if err != nil {
		return nil, b.Settings, err
	}
	records, err := DeserializeRecords(b.Records)
	if err != nil {
		// The envelope itself parsed, so the settings survive even
		// when the records payload does not.
		return nil, b.Settings, err
	}
	return records, b.Settings, nil
}

// migrate lifts a blob to the current schema version. Version 1 is the
// identity migration.
func migrate(b blob) (blob, error) {
	switch b.Version {
	case SchemaVersion:
		return b, nil
	default:
		return b, fmt.Errorf("%w: unknown schema version %d", ErrCorrupt, b.Version)
	}
}
