// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/ordmap/configuration"
	"github.com/bitmark-inc/ordmap/fault"
)

type workload struct {
	Operations int `gluamapper:"operations"`
	KeySpace   int `gluamapper:"key_space"`
}

type sample struct {
	Variant  string            `gluamapper:"variant"`
	Seed     uint64            `gluamapper:"seed"`
	Self     string            `gluamapper:"self"`
	Workload workload          `gluamapper:"workload"`
	Levels   map[string]string `gluamapper:"levels"`
	Kept     string            `gluamapper:"kept"`
}

const sampleText = `
local size = 10 * 10
return {
  variant = "red-black",
  seed = 42,
  self = arg[0],
  workload = {
    operations = size * 3,
    key_space = size,
  },
  levels = {
    DEFAULT = "info",
    verify = "debug",
  },
}
`

func writeFile(t *testing.T, name string, content string) string {
	fileName := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0600))
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := writeFile(t, "test.conf", sampleText)

	s := sample{
		Kept: "default",
	}
	err := configuration.ParseConfigurationFile(fileName, &s)
	require.NoError(t, err)

	assert.Equal(t, "red-black", s.Variant)
	assert.Equal(t, uint64(42), s.Seed)
	assert.Equal(t, fileName, s.Self, "arg[0]")
	assert.Equal(t, 300, s.Workload.Operations)
	assert.Equal(t, 100, s.Workload.KeySpace)
	assert.Equal(t, "info", s.Levels["DEFAULT"])
	assert.Equal(t, "debug", s.Levels["verify"])
	assert.Equal(t, "default", s.Kept, "unset field must keep its default")
}

func TestParseInvalidTarget(t *testing.T) {
	fileName := writeFile(t, "test.conf", sampleText)

	var s sample
	var n int
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, s))
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, &n))
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, (*sample)(nil)))
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, nil))
}

func TestParseMissingFile(t *testing.T) {
	var s sample
	err := configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "absent.conf"), &s)
	assert.True(t, fault.IsErrNotFound(err))
}

func TestParseNotATable(t *testing.T) {
	fileName := writeFile(t, "number.conf", "return 17\n")

	var s sample
	err := configuration.ParseConfigurationFile(fileName, &s)
	assert.Equal(t, fault.ErrInvalidConfiguration, err)
}

func TestParseLuaError(t *testing.T) {
	fileName := writeFile(t, "broken.conf", "return { variant = \n")

	var s sample
	err := configuration.ParseConfigurationFile(fileName, &s)
	assert.Error(t, err)
	assert.False(t, fault.IsErrInvalid(err))
}

func TestEnsureAbsolute(t *testing.T) {
	items := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/var/lib", "log", "/var/lib/log"},
		{"/var/lib", "/tmp/log", "/tmp/log"},
		{"/var/lib", "../run/x.pid", "/var/run/x.pid"},
		{"/var/lib/", "./a//b", "/var/lib/a/b"},
	}
	for i, item := range items {
		assert.Equal(t, item.expected, configuration.EnsureAbsolute(item.directory, item.path), "%d", i)
	}
}

func TestEnsureFileExists(t *testing.T) {
	fileName := writeFile(t, "exists.conf", "return {}")
	assert.True(t, configuration.EnsureFileExists(fileName))
	assert.False(t, configuration.EnsureFileExists(filepath.Dir(fileName)))
	assert.False(t, configuration.EnsureFileExists(fileName+".missing"))
}
