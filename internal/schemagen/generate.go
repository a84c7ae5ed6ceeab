// Package schemagen generates the named constructor/accessor functions
// a concrete schema package wants, from a package-level ebml.Def table,
// the way glint's cmd/glint structgenerator walks a parsed schema and
// emits Go source as formatted strings.
package schemagen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/luispater/ebml-go"
)

// Generate renders a sibling "_gen.go" source file for pkgName, adding
// one constructor and one accessor per entry in defs (skipping the two
// injected globals, which ebml.Compile already supplies). The output
// is gofmt-formatted before being returned.
func Generate(pkgName string, defs []ebml.Def) ([]byte, error) {
	sorted := make([]ebml.Def, len(defs))
	copy(sorted, defs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	var buf bytes.Buffer
	fmt.Fprintln(&buf, "// Code generated by internal/schemagen; DO NOT EDIT.")
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	fmt.Fprintln(&buf, `import "github.com/luispater/ebml-go"`)
	fmt.Fprintln(&buf)

	for _, d := range sorted {
		if d.ID == ebml.IDCrc32 || d.ID == ebml.IDVoid {
			continue
		}
		writeConstructor(&buf, d)
		writeAccessor(&buf, d)
	}

	return format.Source(buf.Bytes())
}

func writeConstructor(buf *bytes.Buffer, d ebml.Def) {
	switch d.DataType {
	case ebml.Master:
		fmt.Fprintf(buf, "// New%s builds a %s Master::Full value.\n", d.Name, d.Name)
		fmt.Fprintf(buf, "func New%s(children []ebml.Value) ebml.Value {\n", d.Name)
		fmt.Fprintf(buf, "\treturn ebml.NewMasterFull(0x%X, children)\n}\n\n", d.ID)
	case ebml.UnsignedInt:
		writeScalarConstructor(buf, d, "uint64", "NewUnsignedInt")
	case ebml.Integer:
		writeScalarConstructor(buf, d, "int64", "NewInteger")
	case ebml.Utf8:
		writeScalarConstructor(buf, d, "string", "NewUtf8")
	case ebml.Binary:
		writeScalarConstructor(buf, d, "[]byte", "NewBinary")
	case ebml.Float:
		writeScalarConstructor(buf, d, "float64", "NewFloat")
	}
}

func writeScalarConstructor(buf *bytes.Buffer, d ebml.Def, goType, ctor string) {
	fmt.Fprintf(buf, "// New%s builds a %s %s value.\n", d.Name, d.Name, d.DataType)
	fmt.Fprintf(buf, "func New%s(val %s) ebml.Value {\n", d.Name, goType)
	fmt.Fprintf(buf, "\treturn ebml.%s(0x%X, val)\n}\n\n", ctor, d.ID)
}

func writeAccessor(buf *bytes.Buffer, d ebml.Def) {
	switch d.DataType {
	case ebml.Master:
		fmt.Fprintf(buf, "// As%s extracts v's children if v is a %s Master value.\n", d.Name, d.Name)
		fmt.Fprintf(buf, "func As%s(v ebml.Value) ([]ebml.Value, bool) {\n", d.Name)
		fmt.Fprintf(buf, "\tif v.ID() != 0x%X {\n\t\treturn nil, false\n\t}\n", d.ID)
		fmt.Fprintf(buf, "\tm, ok := v.AsMaster()\n\tif !ok || m.Kind != ebml.MasterFull {\n\t\treturn nil, false\n\t}\n")
		fmt.Fprintf(buf, "\treturn m.Children, true\n}\n\n")
	default:
		goType, accessor := scalarAccessor(d.DataType)
		fmt.Fprintf(buf, "// As%s extracts v's payload if v is a %s value.\n", d.Name, d.Name)
		fmt.Fprintf(buf, "func As%s(v ebml.Value) (%s, bool) {\n", d.Name, goType)
		fmt.Fprintf(buf, "\tif v.ID() != 0x%X {\n\t\treturn %s, false\n\t}\n", d.ID, zeroValue(goType))
		fmt.Fprintf(buf, "\treturn v.%s()\n}\n\n", accessor)
	}
}

func scalarAccessor(t ebml.TagDataType) (goType, accessor string) {
	switch t {
	case ebml.UnsignedInt:
		return "uint64", "AsUnsignedInt"
	case ebml.Integer:
		return "int64", "AsInteger"
	case ebml.Utf8:
		return "string", "AsUtf8"
	case ebml.Binary:
		return "[]byte", "AsBinary"
	case ebml.Float:
		return "float64", "AsFloat"
	default:
		return "any", "AsBinary"
	}
}

func zeroValue(goType string) string {
	switch {
	case strings.HasPrefix(goType, "[]"):
		return "nil"
	case goType == "string":
		return `""`
	default:
		return "0"
	}
}
