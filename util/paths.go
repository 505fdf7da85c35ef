// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/assetd/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - make the directory absolute relative to base and
// create it if it is missing
func EnsureDirectory(base string, directory string) (string, error) {
	directory = EnsureAbsolute(base, directory)
	if err := os.MkdirAll(directory, 0700); nil != err {
		return "", err
	}
	return directory, nil
}

// IsDirectory - the path exists and is a directory
func IsDirectory(path string) error {
	fileInfo, err := os.Stat(path)
	if nil != err {
		return err
	}
	if !fileInfo.IsDir() {
		return fault.ErrNotADirectory
	}
	return nil
}

// PlainFileIn - a file name without any directory part, joined to
// directory when that is not blank
func PlainFileIn(directory string, fileName string) (string, error) {
	switch filepath.Dir(fileName) {
	case "", ".":
	default:
		return "", fault.ErrNotAPlainFileName
	}
	if "" == fileName || "." == fileName {
		return "", fault.ErrNotAPlainFileName
	}
	if "" == directory {
		return fileName, nil
	}
	return EnsureAbsolute(directory, fileName), nil
}
