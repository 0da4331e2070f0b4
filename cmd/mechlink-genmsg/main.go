// mechlink-genmsg expands a YAML message schema into Go types implementing
// the positional message contract. The generated code has no runtime schema:
// field order in the YAML is the wire order.
package main

import (
    "flag"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "strconv"
    "strings"

    "gopkg.in/yaml.v3"
)

type Schema struct {
    Package  string    `yaml:"package"`
    Project  string    `yaml:"project"`
    Messages []Message `yaml:"messages"`
}

type Message struct {
    Name   string  `yaml:"name"`
    Doc    string  `yaml:"doc"`
    Fields []Field `yaml:"fields"`
}

type Field struct {
    Name string `yaml:"name"`
    Type string `yaml:"type"`
}

func main() {
    schemaPath := flag.String("schema", "", "path to YAML message schema")
    outPath := flag.String("out", "", "output .go file (default: schema name with .go)")
    flag.Parse()
    if *schemaPath == "" {
        log.Fatal("-schema is required")
    }

    raw, err := os.ReadFile(*schemaPath)
    if err != nil {
        log.Fatal(err)
    }
    var s Schema
    if err := yaml.Unmarshal(raw, &s); err != nil {
        log.Fatalf("parse schema: %v", err)
    }
    if s.Package == "" {
        s.Package = "msg"
    }
    if s.Project == "" {
        s.Project = "mechlink"
    }

    out := *outPath
    if out == "" {
        base := strings.TrimSuffix(filepath.Base(*schemaPath), filepath.Ext(*schemaPath))
        out = base + ".go"
    }

    src, err := generate(s)
    if err != nil {
        log.Fatal(err)
    }
    if err := os.WriteFile(out, []byte(src), 0o644); err != nil {
        log.Fatal(err)
    }
    fmt.Printf("generated %d message types into %s\n", len(s.Messages), out)
}

// field kinds
const (
    kindScalar = iota // fixed-size scalar
    kindBlob          // string, wstring, bytes
    kindVec           // vector of scalar/blob
    kindArr           // fixed array of scalars
    kindMsg           // nested message
    kindMsgVec        // vector of nested messages
)

type scalarInfo struct {
    goType string
    suffix string // wire.Append<suffix> etc.
    size   int    // 0 for variable
}

var scalars = map[string]scalarInfo{
    "bool":    {"bool", "Bool", 1},
    "int8":    {"int8", "Int8", 1},
    "uint8":   {"uint8", "Uint8", 1},
    "int16":   {"int16", "Int16", 2},
    "uint16":  {"uint16", "Uint16", 2},
    "int32":   {"int32", "Int32", 4},
    "uint32":  {"uint32", "Uint32", 4},
    "int64":   {"int64", "Int64", 8},
    "uint64":  {"uint64", "Uint64", 8},
    "float32": {"float32", "Float32", 4},
    "float64": {"float64", "Float64", 8},
    "string":  {"string", "String", 0},
    "wstring": {"wire.WideString", "WideString", 0},
    "bytes":   {"[]byte", "Bytes", 0},
}

type field struct {
    goName string
    kind   int
    info   scalarInfo // scalar/blob/vec/arr element
    msg    string     // nested message type name
    arrLen int
}

func parseField(f Field) (field, error) {
    out := field{goName: camel(f.Name)}
    base := f.Type
    switch {
    case strings.HasSuffix(base, "[]"):
        base = strings.TrimSuffix(base, "[]")
        if si, ok := scalars[base]; ok {
            if base == "bytes" {
                return out, fmt.Errorf("field %s: bytes vectors are not supported", f.Name)
            }
            out.kind = kindVec
            out.info = si
            return out, nil
        }
        out.kind = kindMsgVec
        out.msg = camel(base)
        return out, nil
    case strings.Contains(base, "["):
        open := strings.Index(base, "[")
        if !strings.HasSuffix(base, "]") {
            return out, fmt.Errorf("field %s: malformed array type %q", f.Name, f.Type)
        }
        n, err := strconv.Atoi(base[open+1 : len(base)-1])
        if err != nil || n <= 0 {
            return out, fmt.Errorf("field %s: malformed array length in %q", f.Name, f.Type)
        }
        si, ok := scalars[base[:open]]
        if !ok || si.size == 0 {
            return out, fmt.Errorf("field %s: arrays need a fixed-size scalar element, got %q", f.Name, f.Type)
        }
        out.kind = kindArr
        out.info = si
        out.arrLen = n
        return out, nil
    default:
        if si, ok := scalars[base]; ok {
            if si.size == 0 {
                out.kind = kindBlob
            } else {
                out.kind = kindScalar
            }
            out.info = si
            return out, nil
        }
        out.kind = kindMsg
        out.msg = camel(base)
        return out, nil
    }
}

// batchable fields can ride the wire.AppendValues / ScanValues / SizeValues
// forms; the rest get explicit per-field calls.
func (f field) batchable() bool {
    switch f.kind {
    case kindScalar, kindBlob:
        return true
    case kindVec:
        return f.info.suffix != "WideString"
    }
    return false
}

func generate(s Schema) (string, error) {
    var needWire, needMessage bool
    var body strings.Builder

    for _, m := range s.Messages {
        fields := make([]field, len(m.Fields))
        for i, raw := range m.Fields {
            f, err := parseField(raw)
            if err != nil {
                return "", fmt.Errorf("message %s: %w", m.Name, err)
            }
            fields[i] = f
            switch f.kind {
            case kindMsgVec:
                needMessage = true
            case kindMsg:
            default:
                needWire = true
            }
        }
        if err := emitMessage(&body, s, m, fields); err != nil {
            return "", err
        }
    }

    var out strings.Builder
    out.WriteString("// Code generated by mechlink-genmsg. DO NOT EDIT.\n\n")
    out.WriteString("package " + s.Package + "\n\n")
    switch {
    case needWire && needMessage:
        out.WriteString("import (\n    \"mechlink/pkg/message\"\n    \"mechlink/pkg/wire\"\n)\n")
    case needWire:
        out.WriteString("import \"mechlink/pkg/wire\"\n")
    case needMessage:
        out.WriteString("import \"mechlink/pkg/message\"\n")
    }
    out.WriteString(body.String())
    return out.String(), nil
}

func emitMessage(w *strings.Builder, s Schema, m Message, fields []field) error {
    name := camel(m.Name)
    fmt.Fprintf(w, "\n")
    if m.Doc != "" {
        for _, line := range strings.Split(strings.TrimSpace(m.Doc), "\n") {
            fmt.Fprintf(w, "// %s\n", line)
        }
    }
    fmt.Fprintf(w, "type %s struct {\n", name)
    for _, f := range fields {
        fmt.Fprintf(w, "    %s %s\n", f.goName, goType(f))
    }
    fmt.Fprintf(w, "}\n\n")

    emitAppendOrScan(w, name, fields, true)
    emitPut(w, name, fields)
    emitAppendOrScan(w, name, fields, false)
    emitSize(w, name, fields)

    fmt.Fprintf(w, "func (m *%s) TypeName() string { return %q }\n\n", name,
        s.Project+"::msg::"+name)

    emitEqual(w, name, fields)
    return nil
}

func goType(f field) string {
    switch f.kind {
    case kindVec:
        return "[]" + f.info.goType
    case kindArr:
        return fmt.Sprintf("[%d]%s", f.arrLen, f.info.goType)
    case kindMsg:
        return f.msg
    case kindMsgVec:
        return "[]" + f.msg
    }
    return f.info.goType
}

// emitAppendOrScan writes Append (append=true) or Scan: runs of batchable
// fields collapse into one wire.AppendValues / wire.ScanValues call.
func emitAppendOrScan(w *strings.Builder, name string, fields []field, app bool) {
    method, cursor := "Scan", "b"
    if app {
        method, cursor = "Append", "dst"
    }
    fmt.Fprintf(w, "func (m *%s) %s(%s []byte) []byte {\n", name, method, cursor)

    var lines []string
    flushBatch := func(run []field) {
        if len(run) == 0 {
            return
        }
        args := make([]string, len(run))
        for i, f := range run {
            if app {
                args[i] = "m." + f.goName
            } else {
                args[i] = "&m." + f.goName
            }
        }
        if app {
            lines = append(lines, fmt.Sprintf("dst = wire.AppendValues(dst, %s)", strings.Join(args, ", ")))
        } else {
            lines = append(lines, fmt.Sprintf("b = wire.ScanValues(b, %s)", strings.Join(args, ", ")))
        }
    }

    var run []field
    for _, f := range fields {
        if f.batchable() {
            run = append(run, f)
            continue
        }
        flushBatch(run)
        run = nil
        switch f.kind {
        case kindVec: // wstring vectors only
            if app {
                lines = append(lines, fmt.Sprintf("dst = wire.AppendVec(dst, m.%s, wire.AppendWideString)", f.goName))
            } else {
                lines = append(lines, fmt.Sprintf("b = wire.GetVec(b, &m.%s, wire.GetWideString)", f.goName))
            }
        case kindArr:
            if app {
                lines = append(lines, fmt.Sprintf("dst = wire.AppendArr(dst, m.%s[:], wire.Append%s)", f.goName, f.info.suffix))
            } else {
                lines = append(lines, fmt.Sprintf("b = wire.GetArr(b, m.%s[:], wire.Get%s)", f.goName, f.info.suffix))
            }
        case kindMsg:
            if app {
                lines = append(lines, fmt.Sprintf("dst = m.%s.Append(dst)", f.goName))
            } else {
                lines = append(lines, fmt.Sprintf("b = m.%s.Scan(b)", f.goName))
            }
        case kindMsgVec:
            if app {
                lines = append(lines, fmt.Sprintf("dst = message.AppendMsgVec[%s, *%s](dst, m.%s)", f.msg, f.msg, f.goName))
            } else {
                lines = append(lines, fmt.Sprintf("b = message.GetMsgVec[%s, *%s](b, &m.%s)", f.msg, f.msg, f.goName))
            }
        }
    }
    flushBatch(run)

    if len(lines) == 0 {
        fmt.Fprintf(w, "    return %s\n}\n\n", cursor)
        return
    }
    for i, line := range lines {
        if i == len(lines)-1 {
            // the final statement returns the advanced cursor
            line = "return " + line[strings.Index(line, "= ")+2:]
        }
        fmt.Fprintf(w, "    %s\n", line)
    }
    fmt.Fprintf(w, "}\n\n")
}

func emitPut(w *strings.Builder, name string, fields []field) {
    fmt.Fprintf(w, "func (m *%s) Put(b []byte) []byte {\n", name)
    var lines []string
    for _, f := range fields {
        switch f.kind {
        case kindScalar, kindBlob:
            lines = append(lines, fmt.Sprintf("b = wire.Put%s(b, m.%s)", f.info.suffix, f.goName))
        case kindVec:
            lines = append(lines, fmt.Sprintf("b = wire.PutVec(b, m.%s, wire.Put%s)", f.goName, f.info.suffix))
        case kindArr:
            lines = append(lines, fmt.Sprintf("b = wire.PutArr(b, m.%s[:], wire.Put%s)", f.goName, f.info.suffix))
        case kindMsg:
            lines = append(lines, fmt.Sprintf("b = m.%s.Put(b)", f.goName))
        case kindMsgVec:
            lines = append(lines, fmt.Sprintf("b = message.PutMsgVec[%s, *%s](b, m.%s)", f.msg, f.msg, f.goName))
        }
    }
    if len(lines) == 0 {
        fmt.Fprintf(w, "    return b\n}\n\n")
        return
    }
    for i, line := range lines {
        if i == len(lines)-1 {
            line = "return " + line[strings.Index(line, "= ")+2:]
        }
        fmt.Fprintf(w, "    %s\n", line)
    }
    fmt.Fprintf(w, "}\n\n")
}

func emitSize(w *strings.Builder, name string, fields []field) {
    var terms []string
    fixed := 0
    var batch []string
    flush := func() {
        if len(batch) > 0 {
            terms = append(terms, fmt.Sprintf("wire.SizeValues(%s)", strings.Join(batch, ", ")))
            batch = nil
        }
    }
    for _, f := range fields {
        switch {
        case f.kind == kindScalar:
            fixed += f.info.size
        case f.batchable():
            batch = append(batch, "m."+f.goName)
        case f.kind == kindVec: // wstring vectors
            flush()
            terms = append(terms, fmt.Sprintf("wire.SizeVec(m.%s, wire.SizeWideString)", f.goName))
        case f.kind == kindArr:
            fixed += f.arrLen * f.info.size
        case f.kind == kindMsg:
            flush()
            terms = append(terms, fmt.Sprintf("m.%s.Size()", f.goName))
        case f.kind == kindMsgVec:
            flush()
            terms = append(terms, fmt.Sprintf("message.SizeMsgVec[%s, *%s](m.%s)", f.msg, f.msg, f.goName))
        }
    }
    flush()
    if fixed > 0 || len(terms) == 0 {
        terms = append([]string{strconv.Itoa(fixed)}, terms...)
    }
    fmt.Fprintf(w, "func (m *%s) Size() int { return %s }\n\n", name, strings.Join(terms, " + "))
}

func emitEqual(w *strings.Builder, name string, fields []field) {
    fmt.Fprintf(w, "func (m *%s) Equal(other *%s) bool {\n", name, name)
    for _, f := range fields {
        switch f.kind {
        case kindScalar, kindArr:
            fmt.Fprintf(w, "    if m.%s != other.%s {\n        return false\n    }\n", f.goName, f.goName)
        case kindBlob:
            if f.info.goType == "string" {
                fmt.Fprintf(w, "    if m.%s != other.%s {\n        return false\n    }\n", f.goName, f.goName)
            } else {
                emitSliceEqual(w, f.goName)
            }
        case kindVec:
            emitSliceEqual(w, f.goName)
        case kindMsg:
            fmt.Fprintf(w, "    if !m.%s.Equal(&other.%s) {\n        return false\n    }\n", f.goName, f.goName)
        case kindMsgVec:
            fmt.Fprintf(w, "    if len(m.%s) != len(other.%s) {\n        return false\n    }\n", f.goName, f.goName)
            fmt.Fprintf(w, "    for i := range m.%s {\n        if !m.%s[i].Equal(&other.%s[i]) {\n            return false\n        }\n    }\n", f.goName, f.goName, f.goName)
        }
    }
    fmt.Fprintf(w, "    return true\n}\n")
}

func emitSliceEqual(w *strings.Builder, fname string) {
    fmt.Fprintf(w, "    if len(m.%s) != len(other.%s) {\n        return false\n    }\n", fname, fname)
    fmt.Fprintf(w, "    for i := range m.%s {\n        if m.%s[i] != other.%s[i] {\n            return false\n        }\n    }\n", fname, fname, fname)
}

// camel converts snake_case to CamelCase, keeping common initialisms upper.
func camel(s string) string {
    if s == "" {
        return s
    }
    parts := strings.Split(s, "_")
    for i, p := range parts {
        switch strings.ToLower(p) {
        case "id":
            parts[i] = "ID"
        case "":
        default:
            parts[i] = strings.ToUpper(p[:1]) + p[1:]
        }
    }
    return strings.Join(parts, "")
}
