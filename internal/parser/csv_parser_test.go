package parser_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/noxim_plot_go/internal/config"
	"github.com/user/noxim_plot_go/internal/parser"
)

func TestLoad(t *testing.T) {
	ds, err := parser.Load(filepath.Join("testdata", "sweep.csv"))
	require.NoError(t, err)

	require.Len(t, ds.Rows, 5)
	assert.Equal(t, filepath.Join("testdata", "sweep.csv"), ds.Path)
	assert.Contains(t, ds.Header, "total_received_flits")

	first := ds.Rows[0]
	assert.Equal(t, "XY", first.Route)
	assert.Equal(t, 0.01, first.PIR)
	assert.Equal(t, 10.5, first.Values[config.DelayColumn])
	assert.Equal(t, 0.0099, first.Values[config.AvgIPThroughput])
	assert.NotContains(t, first.Values, "total_received_flits")

	assert.Equal(t, []string{"XY", "WEST_FIRST"}, ds.Routes())
	assert.Equal(t, []float64{0.01, 0.02}, ds.PIRs())
}

func TestLoadMissingFile(t *testing.T) {
	ds, err := parser.Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Nil(t, ds)

	var fe *parser.FileError
	require.True(t, errors.As(err, &fe), "expected FileError, got %v", err)
	assert.True(t, os.IsNotExist(errors.Cause(fe.Err)))
}

func TestLoadDirectory(t *testing.T) {
	_, err := parser.Load(t.TempDir())

	var fe *parser.FileError
	assert.True(t, errors.As(err, &fe), "expected FileError, got %v", err)
}

func TestParse(t *testing.T) {
	testCases := []struct {
		Description string
		Input       string

		ExpectedError  string
		ExpectedColumn string
		ExpectedRows   int
	}{
		{
			"minimal",
			"route,pir,global_avg_delay_cycles,avg_ip_throuput\nA,0.1,10,0.5\n",
			"",
			"",
			1,
		},
		{
			"columns in any order with extras",
			"seed,avg_ip_throuput,pir,foo,route,global_avg_delay_cycles\n1,0.5,0.1,x,A,10\n2,0.6,0.2,y,B,11\n",
			"",
			"",
			2,
		},
		{
			"header only",
			"route,pir,global_avg_delay_cycles,avg_ip_throuput\n",
			"",
			"",
			0,
		},
		{
			"spaces after commas and in header",
			"route, pir , global_avg_delay_cycles, avg_ip_throuput\nA, 0.1, 10, 0.5\n",
			"",
			"",
			1,
		},
		{
			"byte order mark",
			"\uFEFFroute,pir,global_avg_delay_cycles,avg_ip_throuput\nA,0.1,10,0.5\n",
			"",
			"",
			1,
		},
		{
			"blank separator lines",
			"route,pir,global_avg_delay_cycles,avg_ip_throuput\nA,0.1,10,0.5\n,,,\n\nB,0.1,5,0.9\n",
			"",
			"",
			2,
		},
		{
			"empty input",
			"",
			"missing header row",
			"",
			0,
		},
		{
			"missing pir column",
			"route,global_avg_delay_cycles,avg_ip_throuput\nA,10,0.5\n",
			"missing required column(s): pir",
			"",
			0,
		},
		{
			"correctly spelled throughput is not accepted",
			"route,pir,global_avg_delay_cycles,avg_ip_throughput\nA,0.1,10,0.5\n",
			"missing required column(s): avg_ip_throuput",
			"",
			0,
		},
		{
			"non numeric delay",
			"route,pir,global_avg_delay_cycles,avg_ip_throuput\nA,0.1,ten,0.5\n",
			"not a number",
			config.DelayColumn,
			0,
		},
		{
			"non numeric pir",
			"route,pir,global_avg_delay_cycles,avg_ip_throuput\nA,low,10,0.5\n",
			"not a number",
			config.PIRColumn,
			0,
		},
		{
			"ragged row",
			"route,pir,global_avg_delay_cycles,avg_ip_throuput\nA,0.1,10\n",
			"malformed CSV",
			"",
			0,
		},
		{
			"unterminated quote",
			"route,pir,global_avg_delay_cycles,avg_ip_throuput\n\"A,0.1,10,0.5\n",
			"malformed CSV",
			"",
			0,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.Description, func(t *testing.T) {
			ds, err := parser.Parse(strings.NewReader(testCase.Input))
			if testCase.ExpectedError != "" {
				require.Error(t, err)
				var pe *parser.ParseError
				require.True(t, errors.As(err, &pe), "expected ParseError, got %T", err)
				assert.Contains(t, pe.Error(), testCase.ExpectedError)
				assert.Equal(t, testCase.ExpectedColumn, pe.Column)
				assert.Nil(t, ds)
				return
			}
			require.NoError(t, err)
			assert.Len(t, ds.Rows, testCase.ExpectedRows)
		})
	}
}

func TestParseErrorLine(t *testing.T) {
	input := "route,pir,global_avg_delay_cycles,avg_ip_throuput\nA,0.1,10,0.5\nA,0.2,x,0.5\n"
	_, err := parser.Parse(strings.NewReader(input))

	var pe *parser.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 3, pe.Line)
	assert.Equal(t, `line 3: column "global_avg_delay_cycles": not a number: strconv.ParseFloat: parsing "x": invalid syntax`, pe.Error())
}

func TestParseEmptyNumericCell(t *testing.T) {
	input := "route,pir,global_avg_delay_cycles,avg_ip_throuput\nA,0.1,,0.5\nA,,12,0.4\n"
	ds, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, ds.Rows, 2)

	assert.True(t, math.IsNaN(ds.Rows[0].Values[config.DelayColumn]))
	assert.True(t, math.IsNaN(ds.Rows[1].PIR))
}

func TestParseKeepsRouteVerbatim(t *testing.T) {
	input := "route,pir,global_avg_delay_cycles,avg_ip_throuput\nXY_ROUTING,0.1,10,0.5\n\"ODD_EVEN, v2\",0.1,10,0.5\n"
	ds, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"XY_ROUTING", "ODD_EVEN, v2"}, ds.Routes())
}

func TestParseLeadingSpaceIsPartOfRoute(t *testing.T) {
	input := "route,pir,global_avg_delay_cycles,avg_ip_throuput\nA,0.1,10,0.5\n A,0.1,20,0.5\n"
	ds, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, ds.Rows, 2)
	assert.Equal(t, []string{"A", " A"}, ds.Routes())
	assert.Equal(t, 0.1, ds.Rows[1].PIR)
}

func TestParseMissingValueMarkers(t *testing.T) {
	for _, marker := range []string{"NA", "N/A", "n/a", "null", "NULL", "None", "#N/A", "<NA>", " NA ", "nan"} {
		input := "route,pir,global_avg_delay_cycles,avg_ip_throuput\nA,0.1," + marker + ",0.5\n"
		ds, err := parser.Parse(strings.NewReader(input))
		require.NoError(t, err, "marker %q", marker)
		assert.True(t, math.IsNaN(ds.Rows[0].Values[config.DelayColumn]), "marker %q", marker)
	}

	_, err := parser.Parse(strings.NewReader("route,pir,global_avg_delay_cycles,avg_ip_throuput\nA,0.1,missing,0.5\n"))
	var pe *parser.ParseError
	assert.True(t, errors.As(err, &pe))
}

func TestDatasetPIRsFirstSeenOrder(t *testing.T) {
	input := "route,pir,global_avg_delay_cycles,avg_ip_throuput\n" +
		"A,0.3,1,1\nA,0.1,1,1\nB,0.2,1,1\nB,0.1,1,1\nA,,1,1\nB,,1,1\n"
	ds, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)

	pirs := ds.PIRs()
	require.Len(t, pirs, 4)
	assert.Equal(t, []float64{0.3, 0.1, 0.2}, pirs[:3])
	assert.True(t, math.IsNaN(pirs[3]))
}
