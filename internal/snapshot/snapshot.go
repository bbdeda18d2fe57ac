// Package snapshot persists the promotion matrix so table drift between
// builds is detectable. Payloads are msgpack-encoded and written atomically
// through a temp file plus rename.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"castor/internal/diag"
	"castor/internal/kind"
)

// Schema version, incremented when the payload format changes.
const schemaVersion uint16 = 1

// Payload stores the promotion matrix in row-major order over Names.
type Payload struct {
	Schema uint16
	Names  []string
	Table  []string
}

// Capture builds a payload from the live common-kind table.
func Capture() *Payload {
	names := make([]string, len(kind.AllKinds))
	for i, k := range kind.AllKinds {
		names[i] = k.String()
	}
	table := make([]string, 0, len(kind.AllKinds)*len(kind.AllKinds))
	for _, a := range kind.AllKinds {
		for _, b := range kind.AllKinds {
			table = append(table, kind.Promote(a, b).String())
		}
	}
	return &Payload{Schema: schemaVersion, Names: names, Table: table}
}

// Write serializes a payload to path, replacing any previous file atomically.
func Write(path string, p *Payload) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		_ = os.Remove(tmp)
	}()

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(p); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads a payload. A missing file reports ok=false without an error.
func Load(path string) (*Payload, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer func() {
		_ = f.Close()
	}()

	var p Payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&p); err != nil {
		return nil, false, err
	}
	return &p, true, nil
}

// Compare diffs a stored payload against the live table. Schema or axis
// changes invalidate the snapshot wholesale; otherwise every differing cell
// becomes its own drift diagnostic.
func Compare(stored, live *Payload) *diag.Bag {
	bag := diag.NewBag(len(live.Table) + 1)

	if stored.Schema != live.Schema {
		bag.Add(diag.New(diag.SevError, diag.SnapSchemaChanged,
			fmt.Sprintf("snapshot schema %d, current %d", stored.Schema, live.Schema)))
		return bag
	}
	if len(stored.Names) != len(live.Names) || len(stored.Table) != len(live.Table) {
		bag.Add(diag.New(diag.SevError, diag.SnapSchemaChanged,
			"snapshot axis does not match the current kind set"))
		return bag
	}

	n := len(live.Names)
	for i, got := range live.Table {
		if stored.Table[i] == got {
			continue
		}
		bag.Add(diag.New(diag.SevError, diag.SnapTableDrift,
			fmt.Sprintf("%s + %s: snapshot %s, current %s",
				live.Names[i/n], live.Names[i%n], stored.Table[i], got)))
	}
	return bag
}
