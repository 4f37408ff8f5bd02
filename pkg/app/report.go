package app

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/linkedin/goavro/v2"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/birdayz/symcheck/pkg/compare"
	"github.com/birdayz/symcheck/pkg/render"
	"github.com/birdayz/symcheck/pkg/stego"
)

// LineReport is one decoded line. Bytes is the payload in hex.
type LineReport struct {
	Line  int    `json:"line" msgpack:"line"`
	Bytes string `json:"bytes" msgpack:"bytes"`
	Text  string `json:"text" msgpack:"text"`
	Valid bool   `json:"valid" msgpack:"valid"`
}

// SideReport describes one input.
type SideReport struct {
	Count  int          `json:"count" msgpack:"count"`
	Hidden string       `json:"hidden" msgpack:"hidden"`
	Lines  []LineReport `json:"lines" msgpack:"lines"`
}

// Report is the serializable result of a check.
type Report struct {
	Match       bool       `json:"match" msgpack:"match"`
	ShowDecoded bool       `json:"show_decoded" msgpack:"show_decoded"`
	Left        SideReport `json:"left" msgpack:"left"`
	Right       SideReport `json:"right" msgpack:"right"`
}

// NewSideReport describes msg decoded from an input of count code points.
func NewSideReport(msg stego.Message, count int) SideReport {
	s := SideReport{Count: count, Hidden: msg.String(), Lines: []LineReport{}}
	for _, l := range msg.Lines {
		s.Lines = append(s.Lines, LineReport{
			Line:  l.Number,
			Bytes: hex.EncodeToString(l.Bytes),
			Text:  l.Text,
			Valid: l.Valid,
		})
	}
	return s
}

// NewReport builds the report of res.
func NewReport(res compare.Result, counts render.Counts) Report {
	return Report{
		Match:       res.Match,
		ShowDecoded: res.ShowDecoded(),
		Left:        NewSideReport(res.Left, counts.Left),
		Right:       NewSideReport(res.Right, counts.Right),
	}
}

const sideSchema = `{
  "type": "record", "name": "Side", "namespace": "symcheck",
  "fields": [
    {"name": "count", "type": "long"},
    {"name": "hidden", "type": "string"},
    {"name": "lines", "type": {"type": "array", "items": {
      "type": "record", "name": "Line",
      "fields": [
        {"name": "line", "type": "long"},
        {"name": "bytes", "type": "string"},
        {"name": "text", "type": "string"},
        {"name": "valid", "type": "boolean"}
      ]}}}
  ]}`

var reportSchema = fmt.Sprintf(`{
  "type": "record", "name": "Report", "namespace": "symcheck",
  "fields": [
    {"name": "match", "type": "boolean"},
    {"name": "show_decoded", "type": "boolean"},
    {"name": "left", "type": %s},
    {"name": "right", "type": "Side"}
  ]}`, sideSchema)

func (s SideReport) native() map[string]any {
	lines := make([]any, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, map[string]any{
			"line":  int64(l.Line),
			"bytes": l.Bytes,
			"text":  l.Text,
			"valid": l.Valid,
		})
	}
	return map[string]any{
		"count":  int64(s.Count),
		"hidden": s.Hidden,
		"lines":  lines,
	}
}

func (r Report) native() map[string]any {
	return map[string]any{
		"match":        r.Match,
		"show_decoded": r.ShowDecoded,
		"left":         r.Left.native(),
		"right":        r.Right.native(),
	}
}

// avroRecords returns the schema and datums for an Avro container holding v.
func avroRecords(v any) (string, []any, error) {
	switch x := v.(type) {
	case Report:
		return reportSchema, []any{x.native()}, nil
	case SideReport:
		return sideSchema, []any{x.native()}, nil
	case []SideReport:
		out := make([]any, 0, len(x))
		for _, s := range x {
			out = append(out, s.native())
		}
		return sideSchema, out, nil
	default:
		return "", nil, fmt.Errorf("no avro schema for %T", v)
	}
}

func writeAvro(w io.Writer, v any) error {
	schema, records, err := avroRecords(v)
	if err != nil {
		return err
	}
	ocf, err := goavro.NewOCFWriter(goavro.OCFConfig{W: w, Schema: schema})
	if err != nil {
		return fmt.Errorf("create avro writer: %w", err)
	}
	if err := ocf.Append(records); err != nil {
		return fmt.Errorf("write avro records: %w", err)
	}
	return nil
}

// ErrNoTemplate is returned for --output template without a template.
var ErrNoTemplate = errors.New("--output template needs --template or a template in the config file")

func executeTemplate(w io.Writer, text string, v any) error {
	if text == "" {
		return ErrNoTemplate
	}
	tpl, err := template.New("symcheck").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse go template: %w", err)
	}
	buf := bytes.NewBuffer(nil)
	if err := tpl.Execute(buf, v); err != nil {
		return fmt.Errorf("failed to execute go template: %w", err)
	}
	if n := buf.Len(); n == 0 || buf.Bytes()[n-1] != '\n' {
		buf.WriteByte('\n')
	}
	_, err = buf.WriteTo(w)
	return err
}

// WriteEncoded writes v in one of the machine formats. tmpl is the template
// flag value; the config template is used when it is empty. The text format
// is handled by the commands themselves.
func (a *App) WriteEncoded(format OutputFormat, tmpl string, v any) error {
	switch format {
	case OutputFormatJSON:
		b, err := a.Jsonfmt.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(a.ColorableOut, string(b))
		return err
	case OutputFormatMsgpack:
		b, err := msgpack.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
		_, err = a.OutWriter.Write(b)
		return err
	case OutputFormatAvro:
		return writeAvro(a.OutWriter, v)
	case OutputFormatTemplate:
		if tmpl == "" {
			tmpl = a.Cfg.Template
		}
		return executeTemplate(a.OutWriter, tmpl, v)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
