package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/segmentio/encoding/json"
	"github.com/smasonuk/gosiebsp"
	"github.com/stretchr/testify/require"
)

func TestParseVector(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    gosiebsp.Vector3
		wantErr bool
	}{
		{name: "plain", in: "1,2,3", want: gosiebsp.NewVector3(1, 2, 3)},
		{name: "spaces and signs", in: " -1.5, 0 ,2e2", want: gosiebsp.NewVector3(-1.5, 0, 200)},
		{name: "two components", in: "1,2", wantErr: true},
		{name: "not a number", in: "1,two,3", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := parseVector(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				require.Equal(t, gosiebsp.ErrTypeParse, errors.Type(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, v)
		})
	}
}

func TestOrderCommandJSON(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"order", filepath.Join("..", "testdata", "polygons.txt"),
		"--camera", "0,3,10",
		"--json",
		"--log-level", "error",
	})
	require.NoError(t, rootCmd.Execute())

	var res orderOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))

	require.Equal(t, [3]float64{0, 3, 10}, res.Camera)
	require.Equal(t, "bsp", res.Mode)
	require.Len(t, res.Polygons, res.Stats.Polygons)
	require.GreaterOrEqual(t, res.Stats.Polygons, 3)
	require.Equal(t, res.Stats.Polygons, 3+res.Stats.Splits)
}
