// SPDX-License-Identifier: MIT

package mmfile

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var pkgLogger atomic.Pointer[zerolog.Logger]

func init() { SetLogger(nil) }

// SetLogger replaces the package logger (nil restores the silent default).
func SetLogger(l *zerolog.Logger) {
	if l == nil {
		nop := zerolog.Nop()
		l = &nop
	}
	pkgLogger.Store(l)
}

func log() *zerolog.Logger { return pkgLogger.Load() }
