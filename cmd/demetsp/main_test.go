// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/katalvlaran/demetsp/ga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_RandomCities(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-n", "8", "-pop", "12", "-gens", "20", "-seed", "3"}, &out, &errOut)

	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "best cost:")
	assert.Contains(t, out.String(), "tour: [")
	assert.Contains(t, errOut.String(), "evolution finished")
}

// TestRun_ZeroSeedIsDefault checks that -seed 0 reproduces the default-seed
// run end to end, city placement included.
func TestRun_ZeroSeedIsDefault(t *testing.T) {
	args := []string{"-n", "10", "-pop", "8", "-gens", "15"}

	var zero, def, errOut bytes.Buffer
	require.Equal(t, 0, run(append(args, "-seed", "0"), &zero, &errOut), errOut.String())
	require.Equal(t, 0, run(append(args, "-seed", strconv.FormatInt(ga.DefaultSeed, 10)), &def, &errOut), errOut.String())

	assert.Equal(t, def.String(), zero.String())
}

func TestRun_CitiesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rect.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 0\n3 0\n3 4\n0 4\n"), 0o600))

	var out, errOut bytes.Buffer
	code := run([]string{"-cities", path, "-pop", "10", "-mut", "0.1", "-gens", "100"}, &out, &errOut)

	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "best cost: 14.0000")
}

func TestRun_Errors(t *testing.T) {
	var out, errOut bytes.Buffer

	assert.Equal(t, 1, run([]string{"-mut", "1.5"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "mutation rate")

	assert.Equal(t, 1, run([]string{"-cities", filepath.Join(t.TempDir(), "missing.txt")}, &out, &errOut))
	assert.Equal(t, 2, run([]string{"-bogus"}, &out, &errOut))
	assert.Equal(t, 0, run([]string{"-h"}, &out, &errOut))
}
