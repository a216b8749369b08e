// Copyright (c) 2024, The Psychos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name   string   `yaml:"name"`
	Colors []string `yaml:"colors"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.yaml")
	cfg := &testConfig{Name: "warm", Colors: []string{"red", "#FF5733"}}
	require.NoError(t, Save(cfg, fn))

	got := &testConfig{}
	require.NoError(t, Open(got, fn))
	assert.Equal(t, cfg, got)
}

func TestWriteBytes(t *testing.T) {
	b, err := WriteBytes(&testConfig{Name: "cool"})
	require.NoError(t, err)
	assert.Equal(t, "name: cool\ncolors: []\n", string(b))
}
