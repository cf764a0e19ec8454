// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/drumhead/domain"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(args, strings.NewReader(stdin), &out, &errOut)

	return out.String(), errOut.String(), err
}

func TestRun_Block(t *testing.T) {
	out, _, err := runCmd(t, "", "-config", "testdata/block.yaml")
	require.NoError(t, err)
	require.Contains(t, out, "mode 0: -1.585786438\n")
	require.Contains(t, out, "mode 1: -3\n")
	// two modes, each followed by a 4-row field and a blank line
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2*(1+4+1)-1)
}

func TestRun_Disk(t *testing.T) {
	out, logs, err := runCmd(t, "", "-config", "testdata/disk.yaml", "-fields=false", "-log", "info")
	require.NoError(t, err)
	require.Contains(t, logs, "eigen: decomposition complete")

	line := strings.TrimSpace(out)
	require.True(t, strings.HasPrefix(line, "mode 0: "), line)
	l, err := strconv.ParseFloat(strings.TrimPrefix(line, "mode 0: "), 64)
	require.NoError(t, err)
	// -j₀₁² for the continuous disk
	require.InEpsilon(t, -5.7832, l, 0.1)
}

func TestRun_Scalene(t *testing.T) {
	out, _, err := runCmd(t, "", "-config", "testdata/scalene.yaml", "-fields=false")
	require.NoError(t, err)
	require.Equal(t, 4, strings.Count(out, "mode "))
}

func TestRun_Stdin(t *testing.T) {
	problem := "shape: triangle\nwidth: 2\nnum: 20\nk: 2\n"
	out, _, err := runCmd(t, problem, "-config", "-", "-fields=false")
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(out, "mode "))
}

func TestRun_Errors(t *testing.T) {
	_, _, err := runCmd(t, "")
	require.ErrorIs(t, err, errProblem)

	_, _, err = runCmd(t, "", "-config", "testdata/missing.yaml")
	require.Error(t, err)

	_, _, err = runCmd(t, "", "-config", "testdata/block.yaml", "-log", "loud")
	require.Error(t, err)

	_, _, err = runCmd(t, "", "-nope")
	require.Error(t, err)

	cases := map[string]string{
		"unknown key":       "shape: ellipse\na: 1\ncolour: red\n",
		"unknown shape":     "shape: square\n",
		"unknown mode":      "shape: ellipse\na: 1\nnum: 10\nmode: fast\n",
		"ellipse without a": "shape: ellipse\n",
		"two vertices":      "shape: triangle\nvertices: [[0, 0], [1, 0]]\n",
		"empty mask":        "shape: mask\n",
		"ragged mask":       "shape: mask\nmask: [\"...\", \"..\"]\n",
		"bad mask cell":     "shape: mask\nmask: [\"...\", \".x.\", \"...\"]\n",
	}
	for name, problem := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := runCmd(t, problem, "-config", "-")
			require.ErrorIs(t, err, errProblem)
		})
	}

	_, _, err = runCmd(t, "shape: mask\nmask: [\"...\", \".#.\", \"...\"]\nk: 2\n", "-config", "-")
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, _, err = runCmd(t, "shape: mask\nmask: [\"#..\", \"...\", \"...\"]\n", "-config", "-")
	require.ErrorIs(t, err, domain.ErrInvalidDomain)
}

func TestParseMask(t *testing.T) {
	g, err := parseMask([]string{
		"....",
		".##.",
		"..#.",
		"....",
	})
	require.NoError(t, err)
	require.Equal(t, 4, g.Rows())
	require.Equal(t, 4, g.Cols())
	require.Equal(t, 3, g.Count())
	// first printed row is the top (largest j)
	require.True(t, g.At(1, 2))
	require.True(t, g.At(2, 2))
	require.True(t, g.At(2, 1))
	require.False(t, g.At(1, 1))
	require.Equal(t, "....\n.##.\n..#.\n....\n", g.String())
}
