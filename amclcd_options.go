/*
Copyright 2024 Tim St. Pierre
Options for AMC character displays
*/
package amclcd

import (
	"fmt"
)

const (
	// Base I²C address, the address select pins are ORed into the low bits
	BaseAddr = 0x3C
	// Addresses below this are treated as an address select index
	selectLimit = 4
)

type Opts struct {
	// The I²C slave address, or 0 - 3 for the address select index
	I2CAddr uint16
	// Start with line wrap disabled
	NoWrap bool
}

var DefaultOpts = Opts{
	I2CAddr: BaseAddr,
}

func (o *Opts) i2cAddr() (uint16, error) {
	switch {
	case o.I2CAddr < selectLimit:
		return BaseAddr | o.I2CAddr, nil
	case o.I2CAddr <= 0x7F:
		return o.I2CAddr, nil
	default:
		return 0, fmt.Errorf("address %#x is not a 7 bit address", o.I2CAddr)
	}
}
