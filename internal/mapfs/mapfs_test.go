/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs_test

import (
	iofs "io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/blueprint/fs"
	"bennypowers.dev/blueprint/internal/mapfs"
)

var _ fs.FileSystem = (*mapfs.MapFileSystem)(nil)

func TestMapFileSystem(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/project/projects/brand.yaml", "name: Brand\n", 0o644)
	require.NoError(t, mfs.WriteFile("project/out.css", []byte(".a{}"), 0o644))

	assert.True(t, mfs.Exists("/project"))
	assert.True(t, mfs.Exists("/project/out.css"))
	assert.False(t, mfs.Exists("/elsewhere"))

	data, err := mfs.ReadFile("/project/projects/brand.yaml")
	require.NoError(t, err)
	assert.Equal(t, "name: Brand\n", string(data))

	var walked []string
	err = iofs.WalkDir(mfs, "/project", func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			walked = append(walked, p)
		}
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/project/out.css", "/project/projects/brand.yaml"}, walked)
}
