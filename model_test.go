/*
Copyright 2024 Tim St. Pierre
*/
package amclcd

import (
	"testing"
)

func TestRowAddress(t *testing.T) {
	var tests = []struct {
		name  string
		model Model
		cols  int
		rows  int
		addrs []byte
	}{
		{name: "1602", model: AMC1602, cols: 16, rows: 2, addrs: []byte{0x00, 0x40}},
		{name: "2002", model: AMC2002, cols: 20, rows: 2, addrs: []byte{0x00, 0x40}},
		{name: "0802", model: AMC0802, cols: 8, rows: 2, addrs: []byte{0x00, 0x40}},
		{name: "2004", model: AMC2004, cols: 20, rows: 4, addrs: []byte{0x00, 0x40, 0x14, 0x54}},
	}
	for _, test := range tests {
		if got := test.model.Cols(); got != test.cols {
			t.Errorf("%s: Cols() expected %d, received %d", test.name, test.cols, got)
		}
		if got := test.model.Rows(); got != test.rows {
			t.Errorf("%s: Rows() expected %d, received %d", test.name, test.rows, got)
		}
		if got := test.model.Config(); got != 0x38 {
			t.Errorf("%s: Config() expected 0x38, received %#x", test.name, got)
		}
		for row, want := range test.addrs {
			if got := test.model.RowAddress(row); got != want {
				t.Errorf("%s: RowAddress(%d) expected %#x, received %#x", test.name, row, want, got)
			}
		}
	}
}

func TestCustom(t *testing.T) {
	plain := Custom{Columns: 40, Lines: 2}
	if plain.Cols() != 40 || plain.Rows() != 2 {
		t.Errorf("unexpected geometry %dx%d", plain.Cols(), plain.Rows())
	}
	if got := plain.Config(); got != 0x38 {
		t.Errorf("Config() expected default 0x38, received %#x", got)
	}
	if plain.RowAddress(0) != 0x00 || plain.RowAddress(1) != 0x40 {
		t.Errorf("unexpected default row addresses %#x %#x", plain.RowAddress(0), plain.RowAddress(1))
	}

	table := Custom{Columns: 16, Lines: 4, RowAddresses: []byte{0x00, 0x40, 0x10, 0x50}, FunctionSet: 0x3C}
	if got := table.Config(); got != 0x3C {
		t.Errorf("Config() expected 0x3c, received %#x", got)
	}
	for row, want := range []byte{0x00, 0x40, 0x10, 0x50} {
		if got := table.RowAddress(row); got != want {
			t.Errorf("RowAddress(%d) expected %#x, received %#x", row, want, got)
		}
	}
}

func TestModelByName(t *testing.T) {
	var tests = []struct {
		name  string
		model Model
	}{
		{"1602", AMC1602},
		{"AMC2002", AMC2002},
		{"amc2004", AMC2004},
		{" 0802 ", AMC0802},
	}
	for _, test := range tests {
		m, err := ModelByName(test.name)
		if err != nil {
			t.Errorf("ModelByName(%q): %v", test.name, err)
			continue
		}
		if m != test.model {
			t.Errorf("ModelByName(%q) returned %v", test.name, m)
		}
	}
	if _, err := ModelByName("4004"); err == nil {
		t.Error("expected an error for an unknown model")
	}
}
