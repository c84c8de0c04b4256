package objfiles

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/mogaika/jak_level_extractor/config"
	"github.com/mogaika/jak_level_extractor/utils"
)

// Object dump format, one ".god" file per DGO, produced by the linker:
//   u32 magic "GOD1"
//   u32 record count
//   per record:
//     str  name            (u16 length + bytes)
//     u32  segment count
//     per segment:
//       u32 word count
//       per word:
//         u8  kind
//         u32 data                       (PlainData, Pointer)
//         str symbol                     (SymbolPointer, TypePointer)

const DUMP_MAGIC = 0x31444f47 // "GOD1"
const DUMP_EXTENSION = ".god"

func decodeWord(bs *utils.BufStack) (LinkedWord, error) {
	kind := WordKind(bs.ReadByte())
	switch kind {
	case PlainData, Pointer:
		return LinkedWord{Kind: kind, Data: bs.ReadLU32()}, nil
	case SymbolPointer, TypePointer:
		return LinkedWord{Kind: kind, Symbol: bs.ReadString()}, nil
	default:
		return LinkedWord{}, errors.Errorf("Unknown word kind %d in %v", int(kind), bs.StringChain())
	}
}

func decodeObjectFile(bs *utils.BufStack) (*LinkedObjectFile, error) {
	segCount := int(bs.ReadLU32())
	file := &LinkedObjectFile{
		Segments: make([][]LinkedWord, segCount),
	}
	for iSeg := 0; iSeg < segCount; iSeg++ {
		wordCount := int(bs.ReadLU32())
		words := make([]LinkedWord, wordCount)
		for iWord := range words {
			word, err := decodeWord(bs)
			if err != nil {
				return nil, err
			}
			words[iWord] = word
		}
		file.Segments[iSeg] = words
	}
	return file, nil
}

// LoadDgoDump parses one dump file and adds its records to the database.
func (db *ObjectFileDB) LoadDgoDump(dgoName string, data []byte) error {
	bs := utils.NewBufStack("dgo-dump", data).SetName(dgoName)

	if magic := bs.ReadLU32(); magic != DUMP_MAGIC {
		return errors.Errorf("Wrong dump magic 0x%.8x for %q", magic, dgoName)
	}

	recordCount := int(bs.ReadLU32())
	for iRec := 0; iRec < recordCount; iRec++ {
		name := bs.ReadString()
		file, err := decodeObjectFile(bs)
		if err != nil {
			return errors.Wrapf(err, "Unable to decode object %q of %q", name, dgoName)
		}
		db.AddRecord(dgoName, name, file)
	}
	return bs.VerifyAllRead()
}

// LoadObjectFileDB reads every ".god" dump in a directory. The DGO name
// is the file name without the dump extension, upper-cased by convention
// of the linker ("TEST.DGO.god" -> "TEST.DGO").
func LoadObjectFileDB(dir string, version config.GameVersion) (*ObjectFileDB, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to list dump directory %q", dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), DUMP_EXTENSION) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	db := NewObjectFileDB(version)
	for _, fname := range names {
		data, err := os.ReadFile(filepath.Join(dir, fname))
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to read dump %q", fname)
		}
		dgoName := strings.TrimSuffix(fname, DUMP_EXTENSION)
		if err := db.LoadDgoDump(dgoName, data); err != nil {
			return nil, err
		}
	}
	return db, nil
}
