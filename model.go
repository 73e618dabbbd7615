/*
Copyright 2024 Tim St. Pierre
Display geometries for the Orient Display AMC character LCD modules
*/
package amclcd

import (
	"fmt"
	"strings"
)

// Default function set configuration: 8 bit interface, 2 lines, 5x8 dots.
const defaultConfig = 0x38

// Model describes the geometry of a physical display. Implement it to drive a
// display that is not listed here.
type Model interface {
	// Number of character columns
	Cols() int
	// Number of character rows
	Rows() int
	// DDRAM address of the first cell of a zero based row
	RowAddress(row int) byte
	// Function set options sent by Begin
	Config() byte
}

// twoLine is the layout shared by every one and two row display.
type twoLine struct {
	cols, rows int
}

func (m twoLine) Cols() int    { return m.cols }
func (m twoLine) Rows() int    { return m.rows }
func (m twoLine) Config() byte { return defaultConfig }

func (m twoLine) RowAddress(row int) byte {
	return twoLineAddress(row)
}

func twoLineAddress(row int) byte {
	if row == 0 {
		return 0x00
	}
	return 0x40
}

// fourLine is the 20x4 layout. Rows 2 and 3 continue rows 0 and 1 in DDRAM,
// so the addresses are not sequential.
type fourLine struct{}

func (fourLine) Cols() int    { return 20 }
func (fourLine) Rows() int    { return 4 }
func (fourLine) Config() byte { return defaultConfig }

func (fourLine) RowAddress(row int) byte {
	switch row {
	case 0:
		return 0x00
	case 1:
		return 0x40
	case 2:
		return 0x14
	default:
		return 0x54
	}
}

var (
	// AMC1602 is the 16x2 AMC1602AR.
	AMC1602 Model = twoLine{cols: 16, rows: 2}
	// AMC2002 is the 20x2 AMC2002CR.
	AMC2002 Model = twoLine{cols: 20, rows: 2}
	// AMC2004 is the 20x4 AMC2004AR.
	AMC2004 Model = fourLine{}
	// AMC0802 is the 8x2 AMC0802BR.
	AMC0802 Model = twoLine{cols: 8, rows: 2}
)

// Custom is a caller defined geometry.
type Custom struct {
	Columns int
	Lines   int
	// DDRAM address of each row. Rows without an entry use 0x00 for row 0
	// and 0x40 for the others.
	RowAddresses []byte
	// Function set options. Zero selects 0x38.
	FunctionSet byte
}

func (c Custom) Cols() int { return c.Columns }
func (c Custom) Rows() int { return c.Lines }

func (c Custom) RowAddress(row int) byte {
	if row >= 0 && row < len(c.RowAddresses) {
		return c.RowAddresses[row]
	}
	return twoLineAddress(row)
}

func (c Custom) Config() byte {
	if c.FunctionSet == 0 {
		return defaultConfig
	}
	return c.FunctionSet
}

// ModelByName returns the model for a part number such as "1602" or
// "AMC2004".
func ModelByName(name string) (Model, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), "amc") {
	case "1602":
		return AMC1602, nil
	case "2002":
		return AMC2002, nil
	case "2004":
		return AMC2004, nil
	case "0802", "802":
		return AMC0802, nil
	default:
		return nil, fmt.Errorf("amclcd: unknown model %q", name)
	}
}
