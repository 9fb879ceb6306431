// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package filelock provides non-blocking advisory file locks.
package filelock

import (
	"errors"
	"os"
	"syscall"
)

// ErrAlreadyLocked indicates the lock is currently held by another process.
var ErrAlreadyLocked = errors.New("already locked")

// Lock represents a held file lock.
type Lock interface{ Release() error }

type fileLock struct{ file *os.File }

// Acquire obtains a non-blocking exclusive lock for path and optionally
// writes payload to the lock file.
func Acquire(path, payload string) (Lock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}

	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()
		if errors.Is(err, syscall.EWOULDBLOCK) || errors.Is(err, syscall.EAGAIN) {
			return nil, ErrAlreadyLocked
		}
		return nil, err
	}

	l := &fileLock{file: f}
	if payload != "" {
		if err := writePayload(f, payload); err != nil {
			l.Release()
			return nil, err
		}
	}
	return l, nil
}

func writePayload(f *os.File, payload string) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.Seek(0, 0); err != nil {
		return err
	}
	_, err := f.WriteString(payload)
	return err
}

func (l *fileLock) Release() error {
	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		if closeErr := l.file.Close(); closeErr != nil {
			return errors.Join(err, closeErr)
		}
		return err
	}
	return l.file.Close()
}
