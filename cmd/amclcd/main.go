/*
Copyright 2024 Tim St. Pierre
Writes text to an AMC character display
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/tstpierre-tc/amclcd"
)

func mainImpl() error {
	busName := flag.String("b", "", "I²C bus to use")
	addr := flag.Uint("a", amclcd.BaseAddr, "I²C address, or 0-3 for the address select pins")
	hz := physic.Frequency(0)
	flag.Var(&hz, "hz", "I²C bus speed")
	model := flag.String("m", "1602", "display model: 0802, 1602, 2002 or 2004")
	noWrap := flag.Bool("nowrap", false, "drop characters past the last column instead of wrapping")
	clearOnly := flag.Bool("clear", false, "clear the display and exit")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	m, err := amclcd.ModelByName(*model)
	if err != nil {
		return err
	}
	if _, err = host.Init(); err != nil {
		return err
	}
	bus, err := i2creg.Open(*busName)
	if err != nil {
		return err
	}
	defer bus.Close()
	if hz != 0 {
		if err = bus.SetSpeed(hz); err != nil {
			return err
		}
	}

	dev, err := amclcd.NewI2C(bus, m, &amclcd.Opts{I2CAddr: uint16(*addr), NoWrap: *noWrap})
	if err != nil {
		return err
	}
	if err = dev.Begin(); err != nil {
		// The display may still be usable, report and carry on.
		log.Warnf("%s: %v", dev, err)
	}
	if *clearOnly {
		return dev.Clear()
	}

	if flag.NArg() != 0 {
		for _, line := range strings.Split(strings.Join(flag.Args(), " "), `\n`) {
			_, _ = dev.Println(line)
		}
		return nil
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		_, _ = dev.Println(scanner.Text())
	}
	return scanner.Err()
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "amclcd: %s.\n", err)
		os.Exit(1)
	}
}
