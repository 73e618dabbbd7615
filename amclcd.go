/*
Copyright 2024 Tim St. Pierre
Controls Orient Display AMC series character LCDs with a native I2C interface
*/
package amclcd

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/mmr"
)

const (
	// Commands
	CMD_Clear_Display        = 0x01
	CMD_Return_Home          = 0x02
	CMD_Entry_Mode           = 0x04
	CMD_Display_Control      = 0x08
	CMD_Cursor_Display_Shift = 0x10
	CMD_Function_Set         = 0x20
	CMD_CGRAM_Set            = 0x40
	CMD_DDRAM_Set            = 0x80

	// Options
	OPT_Increment      = 0x02 // CMD_Entry_Mode
	OPT_Display_Shift  = 0x01 // CMD_Entry_Mode
	OPT_Enable_Display = 0x04 // CMD_Display_Control
	OPT_Enable_Cursor  = 0x02 // CMD_Display_Control
	OPT_Enable_Blink   = 0x01 // CMD_Display_Control

	// Control bytes. Co (0x80) is always clear, one control byte per transaction.
	CTRL_Instruction = 0x00
	CTRL_Data        = 0x40

	// Settle times
	shortDelay = 100 * time.Microsecond
	clearDelay = 10 * time.Millisecond
)

// Dev is a character display. It keeps its own cursor position and is not
// safe for concurrent use.
type Dev struct {
	model Model
	c     mmr.Dev8
	col   int
	row   int
	wrap  bool
	sleep func(time.Duration)
}

func (d *Dev) String() string {
	return fmt.Sprintf("amclcd{%s, %dx%d}", d.c.Conn, d.model.Cols(), d.model.Rows())
}

// NewI2C returns a new display that communicates over I²C. Nothing is sent
// until Begin is called.
//
// Use default options if nil is used.
func NewI2C(b i2c.Bus, m Model, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if m == nil {
		return nil, errors.New("amclcd: a display model is required")
	}
	addr, err := opts.i2cAddr()
	if err != nil {
		return nil, fmt.Errorf("amclcd %x: %w", opts.I2CAddr, err)
	}
	return makeDev(&i2c.Dev{Bus: b, Addr: addr}, m, opts), nil
}

func makeDev(c conn.Conn, m Model, opts *Opts) *Dev {
	return &Dev{
		model: m,
		c:     mmr.Dev8{Conn: c, Order: binary.LittleEndian},
		wrap:  !opts.NoWrap,
		sleep: time.Sleep,
	}
}

// Begin runs the controller initialization sequence. Every step is attempted
// even if an earlier one fails.
func (d *Dev) Begin() error {
	log.Infof("Initializing %s", d)
	var errs []error
	errs = append(errs, d.WriteInst(CMD_Function_Set|d.model.Config()))
	d.sleep(shortDelay)
	errs = append(errs, d.WriteInst(CMD_Display_Control|OPT_Enable_Display))
	d.sleep(shortDelay)
	errs = append(errs, d.WriteInst(CMD_Clear_Display))
	d.sleep(clearDelay)
	errs = append(errs, d.WriteInst(CMD_Entry_Mode|OPT_Increment))
	d.sleep(shortDelay)
	return errors.Join(errs...)
}

// Halt clears the display and turns it off.
func (d *Dev) Halt() error {
	return errors.Join(d.Clear(), d.SetDisplay(false, false, false))
}

// Clear blanks the display. The cursor position is left where it was, so the
// next character is placed at the current position rather than at home.
func (d *Dev) Clear() error {
	err := errors.Join(
		d.WriteInst(CMD_DDRAM_Set),
		d.WriteData(' '),
		d.WriteInst(CMD_Clear_Display),
	)
	d.sleep(clearDelay)
	return err
}

// Home returns the display to its unshifted state and moves the cursor to
// (0, 0).
func (d *Dev) Home() error {
	d.col, d.row = 0, 0
	err := d.WriteInst(CMD_Return_Home)
	d.sleep(clearDelay)
	return err
}

// SetDisplay switches the display, the underline cursor and the blinking
// block cursor.
func (d *Dev) SetDisplay(on, cursor, blink bool) error {
	option := byte(CMD_Display_Control)
	if on {
		option |= OPT_Enable_Display
	}
	if cursor {
		option |= OPT_Enable_Cursor
	}
	if blink {
		option |= OPT_Enable_Blink
	}
	err := d.WriteInst(option)
	d.sleep(shortDelay)
	return err
}

// SetPosition moves the cursor. It is not checked against the display size,
// characters written outside the display are dropped.
func (d *Dev) SetPosition(col, row int) {
	d.col = col
	d.row = row
}

func (d *Dev) Position() (col, row int) {
	return d.col, d.row
}

// SetWrap controls whether writing past the last column continues on the
// next row.
func (d *Dev) SetWrap(enabled bool) {
	d.wrap = enabled
}

func (d *Dev) Wrap() bool {
	return d.wrap
}

// WriteByte places one character at the cursor. '\r' returns to column 0 and
// '\n' moves down a row; neither touches the bus. Characters that fall
// outside the display are dropped. Bus errors are not reported.
func (d *Dev) WriteByte(c byte) error {
	switch c {
	case '\r':
		log.Debug("cr")
		d.col = 0
		return nil
	case '\n':
		log.Debug("lf")
		d.row++
		return nil
	}

	if d.wrap && d.col >= d.model.Cols() {
		d.col = 0
		d.row++
	}

	if d.col < 0 || d.col >= d.model.Cols() || d.row < 0 || d.row >= d.model.Rows() {
		return nil
	}
	addr := d.model.RowAddress(d.row) + byte(d.col)
	if err := d.WriteInst(CMD_DDRAM_Set | addr); err != nil {
		log.Debugf("set address %02x: %v", addr, err)
	}
	if err := d.WriteData(c); err != nil {
		log.Debugf("write %q col=%d row=%d: %v", c, d.col, d.row, err)
	}
	d.col++
	return nil
}

func (d *Dev) Write(buf []byte) (int, error) {
	for _, c := range buf {
		_ = d.WriteByte(c)
	}
	return len(buf), nil
}

func (d *Dev) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		_ = d.WriteByte(s[i])
	}
	return len(s), nil
}

// Println writes the operands followed by CR LF.
func (d *Dev) Println(a ...any) (int, error) {
	return d.WriteString(strings.TrimSuffix(fmt.Sprintln(a...), "\n") + "\r\n")
}

func (d *Dev) Printf(format string, a ...any) (int, error) {
	return fmt.Fprintf(d, format, a...)
}

// WriteInst sends a controller instruction.
func (d *Dev) WriteInst(value byte) error {
	return d.writeDevice(CTRL_Instruction, value)
}

// WriteData sends a byte of display data.
func (d *Dev) WriteData(value byte) error {
	return d.writeDevice(CTRL_Data, value)
}

func (d *Dev) writeDevice(control, value byte) error {
	if err := d.c.WriteUint8(control, value); err != nil {
		log.Debugf("write failed control=%02x value=%02x: %v", control, value, err)
		return fmt.Errorf("amclcd: %w", err)
	}
	return nil
}

var _ conn.Resource = &Dev{}
