package codec

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/format"
	"github.com/arloliu/microplate/plate"
)

var quiet = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

func samplePlate(t *testing.T, label string) *plate.Plate {
	t.Helper()

	p, err := plate.NewPlate(2, 3, plate.WithPlateLabel(label), plate.WithPlateLogger(quiet))
	require.NoError(t, err)
	require.True(t, p.AddWells(
		plate.MustParseWell("A1", 1, 2.5),
		plate.MustParseWell("B3"),
	))
	g, err := plate.ParseWellList("G", "A1,B2", ",")
	require.NoError(t, err)
	require.True(t, p.AddGroups(g))

	return p
}

func sampleStack(t *testing.T) *plate.Stack {
	t.Helper()

	s, err := plate.NewStackType(format.Plate96Well, plate.WithStackLabel("Screen"), plate.WithStackLogger(quiet))
	require.NoError(t, err)

	p1, err := plate.NewPlateType(format.Plate96Well, plate.WithPlateLabel("P1"), plate.WithPlateLogger(quiet))
	require.NoError(t, err)
	require.True(t, p1.AddWells(
		plate.MustParseWell("A1", 0.1, 0.2),
		plate.MustParseWell("C7", math.NaN(), math.Inf(-1)),
		plate.MustParseWell("H12", 1e300),
	))
	ctl, err := plate.ParseWellList("Controls, high", "A1,H12", ",")
	require.NoError(t, err)
	require.True(t, p1.AddGroups(ctl))

	p2, err := plate.NewPlateType(format.Plate96Well, plate.WithPlateLabel("P2"), plate.WithPlateLogger(quiet))
	require.NoError(t, err)
	require.True(t, p2.AddWells(plate.MustParseWell("D4", -3)))

	p3, err := plate.NewPlateType(format.Plate96Well, plate.WithPlateLabel("P3"), plate.WithPlateLogger(quiet))
	require.NoError(t, err)

	require.True(t, s.Add(p1, p2, p3))

	return s
}

func sampleWellSet(t *testing.T) *plate.WellSet {
	t.Helper()

	s := plate.NewWellSet(plate.WithSetLabel("Hits"), plate.WithSetLogger(quiet))
	require.True(t, s.Add(
		plate.MustParseWell("A1", 1, math.NaN()),
		plate.MustParseWell("AA10", math.Inf(1)),
		plate.MustParseWell("B2"),
	))

	return s
}

func formats(t *testing.T) map[string]Format {
	t.Helper()

	js, err := NewJSON(WithIndent("  "), WithLogger(quiet))
	require.NoError(t, err)
	x, err := NewXML(WithLogger(quiet))
	require.NoError(t, err)
	tab, err := NewTabular(WithLogger(quiet))
	require.NoError(t, err)
	csvTab, err := NewTabular(WithDelimiter(","), WithLogger(quiet))
	require.NoError(t, err)

	return map[string]Format{"json": js, "xml": x, "tabular": tab, "csv": csvTab}
}

func TestRoundTrip(t *testing.T) {
	for name, f := range formats(t) {
		t.Run(name+"/wellset", func(t *testing.T) {
			want := sampleWellSet(t)
			var buf bytes.Buffer
			require.NoError(t, f.EncodeWellSet(&buf, want))

			got, err := f.DecodeWellSet(&buf)
			require.NoError(t, err)
			require.True(t, want.DataEqual(got), "got %s", got)
		})

		t.Run(name+"/plate", func(t *testing.T) {
			want := samplePlate(t, "Assay 1")
			var buf bytes.Buffer
			require.NoError(t, f.EncodePlate(&buf, want))

			got, err := f.DecodePlate(&buf)
			require.NoError(t, err)
			require.True(t, want.Equal(got), "got %s", got)
			require.Equal(t, 1, got.GroupCount())
		})

		t.Run(name+"/stack", func(t *testing.T) {
			want := sampleStack(t)
			var buf bytes.Buffer
			require.NoError(t, f.EncodeStack(&buf, want))

			got, err := f.DecodeStack(&buf)
			require.NoError(t, err)
			require.True(t, want.Equal(got), "got %s", got)
			require.Equal(t, []string{"P3", "P2", "P1"}, got.Labels())

			p1, ok := got.Get("P1")
			require.True(t, ok)
			c7, ok := p1.GetID("C7")
			require.True(t, ok)
			require.True(t, math.IsNaN(c7.Data()[0]))
			require.True(t, math.IsInf(c7.Data()[1], -1))
		})
	}
}

func TestNilContainers(t *testing.T) {
	for name, f := range formats(t) {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.ErrorIs(t, f.EncodeWellSet(&buf, nil), errs.ErrInvalidArgument)
			require.ErrorIs(t, f.EncodePlate(&buf, nil), errs.ErrInvalidArgument)
			require.ErrorIs(t, f.EncodeStack(&buf, nil), errs.ErrInvalidArgument)
			require.Zero(t, buf.Len())
		})
	}
}

func TestJSON_Document(t *testing.T) {
	f, err := NewJSON()
	require.NoError(t, err)

	s := plate.NewWellSet(plate.WithSetLabel("S"), plate.WithSetLogger(quiet))
	s.Add(plate.MustParseWell("A1", 1, math.NaN()), plate.MustParseWell("B2", math.Inf(-1)))

	var buf bytes.Buffer
	require.NoError(t, f.EncodeWellSet(&buf, s))
	require.JSONEq(t, `{"label":"S","wells":[
		{"id":"A1","values":[1,"NaN"]},
		{"id":"B2","values":["-Inf"]}
	]}`, buf.String())
}

func TestJSON_DecodeErrors(t *testing.T) {
	f, err := NewJSON(WithLogger(quiet))
	require.NoError(t, err)

	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{"syntax", `{"label":`, errs.ErrInvalidPayload},
		{"bad value", `{"label":"P","rows":2,"columns":2,"wells":[{"id":"A1","values":["x"]}]}`, errs.ErrInvalidPayload},
		{"bad id", `{"label":"P","rows":2,"columns":2,"wells":[{"id":"1A","values":[]}]}`, errs.ErrInvalidWellID},
		{"out of bounds", `{"label":"P","rows":2,"columns":2,"wells":[{"id":"C1","values":[]}]}`, errs.ErrOutOfBounds},
		{"duplicate", `{"label":"P","rows":2,"columns":2,"wells":[{"id":"A1"},{"id":"A1"}]}`, errs.ErrDuplicate},
		{"dimensions", `{"label":"P","rows":0,"columns":2,"wells":[]}`, errs.ErrInvalidDimensions},
		{"data type", `{"label":"P","rows":2,"columns":2,"dataType":"Int","wells":[]}`, errs.ErrTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.DecodePlate(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestXML_Document(t *testing.T) {
	f, err := NewXML()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.EncodePlate(&buf, samplePlate(t, "P")))

	doc := buf.String()
	require.True(t, strings.HasPrefix(doc, "<?xml"))
	require.Contains(t, doc, `<plate label="P" rows="2" columns="3"`)
	require.Contains(t, doc, `<groups><group label="G"><well>A1</well><well>B2</well></group></groups>`)
	require.Contains(t, doc, `<well id="A1"><value>1</value><value>2.5</value></well>`)
}

func TestXML_DecodeErrors(t *testing.T) {
	f, err := NewXML(WithLogger(quiet))
	require.NoError(t, err)

	_, err = f.DecodeStack(strings.NewReader(`<stack label="S" rows="8"`))
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	_, err = f.DecodeStack(strings.NewReader(
		`<stack label="S" rows="8" columns="12"><plate label="P" rows="16" columns="24"><wells></wells></plate></stack>`))
	require.Error(t, err, "plate dimensions must match the stack")
}

func TestTabular_Document(t *testing.T) {
	f, err := NewTabular()
	require.NoError(t, err)
	require.Equal(t, DefaultTabularDelimiter, f.Delimiter())

	var buf bytes.Buffer
	require.NoError(t, f.EncodePlate(&buf, samplePlate(t, "P")))
	require.Equal(t, "#plate\tP\t2\t3\n#group\tG\tA1\tB2\nA1\t1\t2.5\nB3\n", buf.String())
}

func TestTabular_QuotedLabels(t *testing.T) {
	f, err := NewTabular(WithDelimiter(","), WithLogger(quiet))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.EncodeStack(&buf, sampleStack(t)))
	require.Contains(t, buf.String(), `#group,"Controls, high",A1,H12`)

	got, err := f.DecodeStack(&buf)
	require.NoError(t, err)
	p1, ok := got.Get("P1")
	require.True(t, ok)
	_, ok = p1.GroupLabel("Controls, high")
	require.True(t, ok)
}

func TestTabular_DecodeErrors(t *testing.T) {
	f, err := NewTabular(WithLogger(quiet))
	require.NoError(t, err)

	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{"empty", "", errs.ErrInvalidPayload},
		{"wrong directive", "#wellset\tS\n", errs.ErrInvalidPayload},
		{"short header", "#stack\tS\t8\n", errs.ErrInvalidPayload},
		{"dimensions", "#stack\tS\teight\t12\n", errs.ErrInvalidDimensions},
		{"well before plate", "#stack\tS\t8\t12\nA1\t1\n", errs.ErrInvalidPayload},
		{"nested stack", "#stack\tS\t8\t12\n#plate\tP\t8\t12\n#stack\tT\t8\t12\n", errs.ErrInvalidPayload},
		{"bad value", "#stack\tS\t8\t12\n#plate\tP\t8\t12\nA1\tx\n", errs.ErrInvalidArgument},
		{"out of bounds", "#stack\tS\t8\t12\n#plate\tP\t8\t12\nI1\t1\n", errs.ErrOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.DecodeStack(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, tt.err)
		})
	}

	_, err = f.DecodePlate(strings.NewReader("#plate\tP\t2\t2\n#plate\tQ\t2\t2\n"))
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	_, err = f.DecodeWellSet(strings.NewReader("#wellset\tS\n#group\tG\tA1\n"))
	require.ErrorIs(t, err, errs.ErrInvalidPayload)
}

func TestTabular_WriteLayout(t *testing.T) {
	f, err := NewTabular()
	require.NoError(t, err)

	values := map[plate.WellIndex]float64{
		plate.NewWellIndex(0, 1): 1,
		plate.NewWellIndex(1, 3): 2.5,
		plate.NewWellIndex(5, 1): 9,
	}

	var buf bytes.Buffer
	require.NoError(t, f.WriteLayout(&buf, 2, 3, values))
	require.Equal(t, "\t1\t2\t3\nA\t1\t\t\nB\t\t\t2.5\n", buf.String())

	require.ErrorIs(t, f.WriteLayout(&buf, 0, 3, values), errs.ErrInvalidDimensions)
}

func TestOptions(t *testing.T) {
	_, err := NewTabular(WithDelimiter(""))
	require.ErrorIs(t, err, errs.ErrEmptyDelimiter)

	for _, d := range []string{"ab", `"`, "\n"} {
		_, err = NewTabular(WithDelimiter(d))
		require.ErrorIs(t, err, errs.ErrInvalidArgument, "delimiter %q", d)
	}

	f, err := NewTabular(WithDelimiter(";"), WithLogger(nil))
	require.NoError(t, err)
	require.Equal(t, ";", f.Delimiter())
	require.Equal(t, slog.Default(), f.cfg.logger)
}
