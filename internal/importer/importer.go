// Package importer turns uploaded files into import candidates: loosely
// typed, Document-shaped values that still have to pass validation before
// they are merged.
package importer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"shiftbook/internal/core"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrReadFailed        = errors.New("failed to read file")
	ErrMalformed         = errors.New("malformed import file")
)

// Candidate is a decoded but unvalidated import payload.
type Candidate map[string]any

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

// FormatOf picks the parser from the file extension.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(filename))
	}
}

// Parse reads r fully and decodes it according to the extension of filename.
// The extension is checked before anything is read.
func Parse(r io.Reader, filename string) (Candidate, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	if format == FormatJSON {
		return ParseJSON(data)
	}

	var rows [][]string
	switch format {
	case FormatCSV:
		rows, err = readCSV(data)
	case FormatXLSX:
		rows, err = readXLSX(data)
	case FormatXLS:
		rows, err = readXLS(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, format, err)
	}
	return FromRows(rows), nil
}

// ParseJSON decodes a JSON backup. Values that are not objects yield an
// empty candidate, which never passes validation.
func ParseJSON(data []byte) (Candidate, error) {
	v, err := core.DecodeLoose(bytes.TrimPrefix(data, utf8BOM))
	if err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrMalformed, err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return Candidate{}, nil
	}
	return Candidate(obj), nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}
