package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/linkedin/goavro/v2"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/birdayz/symcheck/pkg/compare"
	"github.com/birdayz/symcheck/pkg/config"
	"github.com/birdayz/symcheck/pkg/render"
)

// "hi" hidden after the carrier, then a line carrying a lone 0xFF.
const twoLines = "a\U000E0158\U000E0159\nb\U000E01EF"

func newTestApp() (*App, *bytes.Buffer) {
	a := New()
	buf := &bytes.Buffer{}
	a.OutWriter = buf
	a.ErrWriter = buf
	a.ColorableOut = buf
	a.Jsonfmt.DisabledColor = true
	return a, buf
}

func testReport() Report {
	return NewReport(compare.Compare(twoLines, "plain"), render.Counts{Left: 5, Right: 5})
}

func TestNewReport(t *testing.T) {
	r := testReport()
	require.False(t, r.Match)
	require.True(t, r.ShowDecoded)
	require.Equal(t, "hi\n(invalid encoding)", r.Left.Hidden)
	require.Equal(t, []LineReport{
		{Line: 1, Bytes: "6869", Text: "hi", Valid: true},
		{Line: 2, Bytes: "ff", Text: "(invalid encoding)"},
	}, r.Left.Lines)
	require.Equal(t, "", r.Right.Hidden)
	require.Empty(t, r.Right.Lines)
}

func TestWriteEncoded_JSON(t *testing.T) {
	a, buf := newTestApp()
	want := testReport()
	require.NoError(t, a.WriteEncoded(OutputFormatJSON, "", want))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, want, got)
}

func TestWriteEncoded_Msgpack(t *testing.T) {
	a, buf := newTestApp()
	want := testReport()
	require.NoError(t, a.WriteEncoded(OutputFormatMsgpack, "", want))

	var got Report
	require.NoError(t, msgpack.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, want, got)
}

func TestWriteEncoded_Avro(t *testing.T) {
	a, buf := newTestApp()
	require.NoError(t, a.WriteEncoded(OutputFormatAvro, "", testReport()))

	r, err := goavro.NewOCFReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.True(t, r.Scan())
	datum, err := r.Read()
	require.NoError(t, err)

	rec := datum.(map[string]any)
	require.Equal(t, false, rec["match"])
	left := rec["left"].(map[string]any)
	require.Equal(t, int64(5), left["count"])
	require.Equal(t, "hi\n(invalid encoding)", left["hidden"])
	require.Len(t, left["lines"], 2)
	require.False(t, r.Scan())
}

func TestWriteEncoded_AvroSides(t *testing.T) {
	a, buf := newTestApp()
	sides := []SideReport{testReport().Left, testReport().Right}
	require.NoError(t, a.WriteEncoded(OutputFormatAvro, "", sides))

	r, err := goavro.NewOCFReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	n := 0
	for r.Scan() {
		_, err := r.Read()
		require.NoError(t, err)
		n++
	}
	require.Equal(t, 2, n)
}

func TestWriteEncoded_Template(t *testing.T) {
	a, buf := newTestApp()
	tmpl := `{{ if .Match }}same{{ else }}diff{{ end }} {{ .Left.Hidden | upper | replace "\n" "|" }}`
	require.NoError(t, a.WriteEncoded(OutputFormatTemplate, tmpl, testReport()))
	require.Equal(t, "diff HI|(INVALID ENCODING)\n", buf.String())
}

func TestWriteEncoded_TemplateFromConfig(t *testing.T) {
	a, buf := newTestApp()
	a.Cfg = config.Config{Template: "{{ .Left.Count }}"}
	require.NoError(t, a.WriteEncoded(OutputFormatTemplate, "", testReport()))
	require.Equal(t, "5\n", buf.String())
}

func TestWriteEncoded_TemplateMissing(t *testing.T) {
	a, _ := newTestApp()
	err := a.WriteEncoded(OutputFormatTemplate, "", testReport())
	require.ErrorIs(t, err, ErrNoTemplate)
}

func TestOutputFormat_Set(t *testing.T) {
	var f OutputFormat
	require.NoError(t, f.Set("avro"))
	require.Equal(t, OutputFormatAvro, f)
	require.Error(t, f.Set("xml"))
}

func TestResolveOutput(t *testing.T) {
	a, _ := newTestApp()
	require.Equal(t, OutputFormatText, a.ResolveOutput(""))
	a.Cfg = config.Config{Output: "json"}
	require.Equal(t, OutputFormatJSON, a.ResolveOutput(""))
	require.Equal(t, OutputFormatMsgpack, a.ResolveOutput(OutputFormatMsgpack))
}

func TestUseColor(t *testing.T) {
	a, _ := newTestApp()
	require.False(t, a.UseColor(), "auto never colours a buffer")
	a.ColorFlag = config.ColorAlways
	require.True(t, a.UseColor())
	a.ColorFlag = ""
	a.Cfg = config.Config{Color: config.ColorAlways}
	require.True(t, a.UseColor())
	a.ColorFlag = config.ColorNever
	require.False(t, a.UseColor())
}
