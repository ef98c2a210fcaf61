// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/jghorbani2/boussinesq-p/ana"
	"github.com/jghorbani2/boussinesq-p/inp"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func Test_runner01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("runner01")

	var cases []*inp.Case
	for i, data := range []string{
		`{kind: strip, line: {npts: 20}}`,
		`{kind: circle, prms: [{n: nr, v: 11}, {n: nth, v: 11}], grid: {plane: xz, nx: 6, ny: 5}}`,
		`{kind: trapezoid}`,
		`{kind: strip, prms: [{n: rot, v: 45}], grid: {plane: xy, cte: 1, nx: 3, ny: 3}}`,
	} {
		c := decode(tst, data)
		if i < 3 {
			c.Key = []string{"strip", "circle", "trap"}[i]
		}
		cases = append(cases, c)
	}

	dir := tst.TempDir()
	r := Runner{DirOut: dir, Jobs: 2, Xlsx: true, Log: zaptest.NewLogger(tst)}
	results, err := r.Run(context.Background(), cases)
	require.NoError(tst, err)
	require.Len(tst, results, 4)
	require.Equal(tst, 20, results[0].Npts())
	require.Equal(tst, 30, results[1].Npts())
	require.Equal(tst, 200, results[2].Npts())
	require.Equal(tst, "case03", results[3].Key)

	for _, key := range []string{"strip", "circle", "trap", "case03"} {
		for _, ext := range []string{".csv", ".xlsx"} {
			_, err := os.Stat(filepath.Join(dir, key+ext))
			require.NoError(tst, err, key+ext)
		}
	}
}

func Test_runner02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("runner02. errors")

	good := decode(tst, `{kind: strip}`)
	bad := decode(tst, `{kind: circle, prms: [{n: a, v: -1}]}`)
	bad.Key = "bad"

	r := Runner{DirOut: tst.TempDir(), Jobs: 4}
	_, err := r.Run(context.Background(), []*inp.Case{good, bad})
	require.Error(tst, err)
	require.True(tst, ana.IsDomainError(err))
	require.Contains(tst, err.Error(), `"bad"`)

	// cancelled context
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx, []*inp.Case{good})
	require.ErrorIs(tst, err, context.Canceled)
}

func Test_runner03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("runner03. repeated keys")

	var cases []*inp.Case
	for _, key := range []string{"tank", "tank", "", "case02"} {
		c := decode(tst, `{kind: circle, prms: [{n: nr, v: 5}, {n: nth, v: 5}], line: {npts: 4}}`)
		c.Key = key
		cases = append(cases, c)
	}

	dir := tst.TempDir()
	r := Runner{DirOut: dir, Jobs: 4}
	results, err := r.Run(context.Background(), cases)
	require.NoError(tst, err)

	keys := []string{"tank", "tank_01", "case02", "case02_03"}
	for i, res := range results {
		require.Equal(tst, keys[i], res.Key)
		_, err := os.Stat(filepath.Join(dir, keys[i]+".csv"))
		require.NoError(tst, err, keys[i])
	}

	// cases given by the caller are not modified
	require.Equal(tst, "tank", cases[1].Key)
	require.Equal(tst, "", cases[2].Key)
}
