/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package store

import "errors"

// ErrNoProject is returned when an operation needs a current project and none is loaded.
var ErrNoProject = errors.New("no project loaded")
