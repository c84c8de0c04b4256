package objfiles

import (
	"fmt"

	"github.com/mogaika/jak_level_extractor/config"
)

// WordKind classifies one 32 bit word of linked object data.
type WordKind int

const (
	PlainData WordKind = iota
	Pointer
	SymbolPointer
	TypePointer
)

func (k WordKind) String() string {
	switch k {
	case PlainData:
		return "plain-data"
	case Pointer:
		return "pointer"
	case SymbolPointer:
		return "symbol-pointer"
	case TypePointer:
		return "type-pointer"
	default:
		return fmt.Sprintf("word-kind-%d", int(k))
	}
}

// LinkedWord is one decoded word. Symbol is set only for SymbolPointer
// and TypePointer words.
type LinkedWord struct {
	Kind   WordKind
	Data   uint32
	Symbol string
}

func (w LinkedWord) SymbolName() string {
	return w.Symbol
}

// LinkedObjectFile is the decoded data of one object file: per-segment
// ordered word sequences, as produced by the linker.
type LinkedObjectFile struct {
	Segments [][]LinkedWord
}

// ObjectFileRecord identifies one named object file inside a DGO.
type ObjectFileRecord struct {
	Name string
	Dgo  string
	Idx  int
}

type recordKey struct {
	dgo string
	idx int
}

// ObjectFileDB holds every decoded object file, grouped by the DGO that
// carried it. Read-only once populated.
type ObjectFileDB struct {
	ObjFilesByDgo map[string][]ObjectFileRecord
	Version       config.GameVersion

	linked map[recordKey]*LinkedObjectFile
}

func NewObjectFileDB(version config.GameVersion) *ObjectFileDB {
	return &ObjectFileDB{
		ObjFilesByDgo: make(map[string][]ObjectFileRecord),
		Version:       version,
		linked:        make(map[recordKey]*LinkedObjectFile),
	}
}

func (db *ObjectFileDB) HasDgo(dgoName string) bool {
	_, ex := db.ObjFilesByDgo[dgoName]
	return ex
}

// AddRecord appends an object file to a DGO's record list.
func (db *ObjectFileDB) AddRecord(dgoName, name string, file *LinkedObjectFile) ObjectFileRecord {
	rec := ObjectFileRecord{
		Name: name,
		Dgo:  dgoName,
		Idx:  len(db.ObjFilesByDgo[dgoName]),
	}
	db.ObjFilesByDgo[dgoName] = append(db.ObjFilesByDgo[dgoName], rec)
	db.linked[recordKey{dgo: dgoName, idx: rec.Idx}] = file
	return rec
}

// LookupRecord resolves a record to its decoded object data. The record
// must come from this database.
func (db *ObjectFileDB) LookupRecord(rec ObjectFileRecord) *LinkedObjectFile {
	file, ex := db.linked[recordKey{dgo: rec.Dgo, idx: rec.Idx}]
	if !ex {
		panic(fmt.Sprintf("record %q (%s #%d) is not part of this database", rec.Name, rec.Dgo, rec.Idx))
	}
	return file
}
