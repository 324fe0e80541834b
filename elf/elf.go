package elf

import (
	"debug/dwarf"
	"debug/elf"
	"os"

	"github.com/go-delve/delve/pkg/dwarf/godwarf"
	"github.com/pkg/errors"
)

// ELF wraps an opened binary and its parsed DWARF data.
type ELF struct {
	bin       string
	binFile   *os.File
	elfFile   *elf.File
	dwarfData *dwarf.Data
}

func New(bin string) (_ *ELF, err error) {
	binFile, err := os.Open(bin)
	if err != nil {
		return
	}
	defer func() {
		if err != nil {
			binFile.Close()
		}
	}()
	elfFile, err := elf.NewFile(binFile)
	if err != nil {
		return
	}
	abbrev, err := godwarf.GetDebugSectionElf(elfFile, "abbrev")
	if err != nil {
		abbrev = nil
	}
	aranges, err := godwarf.GetDebugSectionElf(elfFile, "aranges")
	if err != nil {
		aranges = nil
	}
	info, err := godwarf.GetDebugSectionElf(elfFile, "info")
	if err != nil {
		return nil, errors.WithMessage(NoDebugInfoError, bin)
	}
	line, err := godwarf.GetDebugSectionElf(elfFile, "line")
	if err != nil {
		line = nil
	}
	ranges, err := godwarf.GetDebugSectionElf(elfFile, "ranges")
	if err != nil {
		ranges = nil
	}
	str, err := godwarf.GetDebugSectionElf(elfFile, "str")
	if err != nil {
		str = nil
	}
	dwarfData, err := dwarf.New(abbrev, aranges, nil, info, line, nil, ranges, str)
	if err != nil {
		return
	}
	// DWARF 5 moved range lists and strings into sections of their
	// own; debug/dwarf picks them up through AddSection.
	for _, name := range []string{"line_str", "str_offsets", "addr", "rnglists"} {
		data, err := godwarf.GetDebugSectionElf(elfFile, name)
		if err != nil {
			continue
		}
		if err = dwarfData.AddSection(".debug_"+name, data); err != nil {
			return nil, err
		}
	}
	return &ELF{
		bin:       bin,
		binFile:   binFile,
		elfFile:   elfFile,
		dwarfData: dwarfData,
	}, nil
}

// DWARF returns the parsed debug information.
func (e *ELF) DWARF() *dwarf.Data {
	return e.dwarfData
}

// TextSize sums the sizes of all executable sections, for reporting
// how much of the binary's code the attribution covers.
func (e *ELF) TextSize() (size uint64) {
	for _, section := range e.elfFile.Sections {
		if section.Flags&elf.SHF_EXECINSTR != 0 && section.Type != elf.SHT_NOBITS {
			size += section.Size
		}
	}
	return
}

func (e *ELF) Close() error {
	return e.binFile.Close()
}
