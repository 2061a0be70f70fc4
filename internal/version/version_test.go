/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import "testing"

func TestGet(t *testing.T) {
	saved := []string{Version, GitCommit, GitTag, GitDirty}
	t.Cleanup(func() {
		Version, GitCommit, GitTag, GitDirty = saved[0], saved[1], saved[2], saved[3]
	})

	Version = "v1.2.3"
	if got := Get(); got != "v1.2.3" {
		t.Errorf("Get() = %q, want ldflags version", got)
	}

	Version = "dev"
	GitTag = "v0.4.0"
	GitCommit = "0123456789abcdef"
	GitDirty = "dirty"
	// Module build info, when stamped, takes precedence over git fields.
	if got := Get(); got == "dev" {
		t.Errorf("Get() = %q, want git-derived version", got)
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	if info.GoVersion == "" || info.Platform == "" {
		t.Errorf("Info() missing runtime fields: %+v", info)
	}
	if info.Version != Get() {
		t.Errorf("Info().Version = %q, want %q", info.Version, Get())
	}
}
