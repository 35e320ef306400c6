package listing

import (
	"io/fs"
	"strings"
)

// Attribute names, in the order they are reported.
const (
	attrReadOnly     = "ReadOnly"
	attrHidden       = "Hidden"
	attrDirectory    = "Directory"
	attrDevice       = "Device"
	attrNormal       = "Normal"
	attrReparsePoint = "ReparsePoint"
)

// Attributes renders the flag set of an entry. isDir reports whether the
// entry, after following a symlink, is a directory.
func Attributes(name string, mode fs.FileMode, isDir bool) string {
	var flags []string
	if mode.Perm()&0o200 == 0 {
		flags = append(flags, attrReadOnly)
	}
	if strings.HasPrefix(name, ".") && name != "." && name != ".." {
		flags = append(flags, attrHidden)
	}
	if isDir {
		flags = append(flags, attrDirectory)
	}
	if mode&(fs.ModeDevice|fs.ModeCharDevice|fs.ModeNamedPipe|fs.ModeSocket) != 0 {
		flags = append(flags, attrDevice)
	}
	if mode&fs.ModeSymlink != 0 {
		flags = append(flags, attrReparsePoint)
	}
	if len(flags) == 0 {
		flags = append(flags, attrNormal)
	}
	return strings.Join(flags, ", ")
}
