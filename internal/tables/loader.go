// Package tables locates and decodes the three XML source tables.
package tables

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"ncth_weapons/internal/app"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Source file names inside the input directory
const (
	WeaponsFile = "Weapons.xml"
	ItemsFile   = "Items.xml"
	AmmoFile    = "AmmoStrings.xml"
)

// Stage identifies which step of loading a table failed
type Stage string

const (
	StageRead   Stage = "read"
	StageDecode Stage = "decode"
)

// TableError reports a fatal failure to load one source table
type TableError struct {
	Table string
	Path  string
	Stage Stage
	Err   error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("failed to %s table %s (%s): %v", e.Stage, e.Table, e.Path, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// Loader reads source tables from a directory
type Loader struct {
	dir string
}

// NewLoader creates a loader for the given input directory
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load reads and decodes all three tables. Any failure is fatal and no
// partial result is returned.
func (l *Loader) Load() (app.Tables, error) {
	var weapons app.WeaponList
	if err := l.readTable(WeaponsFile, &weapons); err != nil {
		return app.Tables{}, err
	}

	var items app.ItemList
	if err := l.readTable(ItemsFile, &items); err != nil {
		return app.Tables{}, err
	}

	var ammo app.AmmoList
	if err := l.readTable(AmmoFile, &ammo); err != nil {
		return app.Tables{}, err
	}

	log.Debug().
		Str("dir", l.dir).
		Int("weapons", len(weapons.Weapons)).
		Int("items", len(items.Items)).
		Int("ammo", len(ammo.Ammo)).
		Msg("Loaded source tables")

	return app.Tables{
		Weapons: weapons.Weapons,
		Items:   items.Items,
		Ammo:    ammo.Ammo,
	}, nil
}

func (l *Loader) readTable(name string, target any) error {
	path := filepath.Join(l.dir, name)

	data, err := os.ReadFile(path)
	if err != nil {
		return &TableError{Table: name, Path: path, Stage: StageRead, Err: err}
	}

	if err := Decode(bytes.NewReader(data), target); err != nil {
		return &TableError{Table: name, Path: path, Stage: StageDecode, Err: err}
	}
	return nil
}

// Decode decodes one XML table into target. A leading byte order mark is
// consumed (UTF-16 input is transcoded to UTF-8) and legacy encodings named
// in the XML declaration are transcoded. Input without a BOM passes through
// untouched until the declaration is read.
func Decode(r io.Reader, target any) error {
	stripped := transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder()))

	decoder := xml.NewDecoder(stripped)
	decoder.CharsetReader = charsetReader

	if err := decoder.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty document")
		}
		return err
	}
	return nil
}

// charsetReader resolves encoding labels such as windows-1252 or ISO-8859-1
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	// utf-16 documents only parse when they carried a BOM, and BOMOverride
	// already transcoded those
	if label == "utf-8" || label == "utf8" || strings.HasPrefix(label, "utf-16") {
		return input, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}
