//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"
	"time"
)

// AXS15231B integrated capacitive touch, on its own I2C bus.
const tdTouchAddr uint16 = 0x3B

var (
	tdTouchSCL = machine.GPIO10
	tdTouchSDA = machine.GPIO15
)

// tdTouchReadCmd asks the controller for one touch report.
// Register layout per the AXS15231B touch datasheet, read length 8.
var tdTouchReadCmd = [11]byte{
	0xB5, 0xAB, 0xA5, 0x5A, 0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00,
}

type axsTouch struct {
	i2c  *machine.I2C
	read [8]byte
}

func newTDisplayTouch() (*axsTouch, error) {
	for _, bus := range []*machine.I2C{machine.I2C0, machine.I2C1} {
		if bus == nil {
			continue
		}
		if err := bus.Configure(machine.I2CConfig{
			SCL:       tdTouchSCL,
			SDA:       tdTouchSDA,
			Frequency: 400_000,
		}); err != nil {
			continue
		}

		ts := &axsTouch{i2c: bus}

		// The touch MCU shares the panel reset line and can lag the LCD
		// bring-up, so probe with retries.
		const probeTries = 20
		for i := 0; i < probeTries; i++ {
			if err := ts.i2c.Tx(tdTouchAddr, tdTouchReadCmd[:], ts.read[:]); err == nil {
				return ts, nil
			}
			time.Sleep(10 * time.Millisecond)
		}
	}
	return nil, errors.New("touch controller not responding")
}

func (t *axsTouch) Poll() (TouchData, error) {
	if err := t.i2c.Tx(tdTouchAddr, tdTouchReadCmd[:], t.read[:]); err != nil {
		// Transient bus hiccup: report no touch for this poll.
		return TouchData{}, nil
	}

	gesture := t.read[0]
	points := int(t.read[1] & 0x0F)
	if points == 0 {
		return TouchData{GestureCode: gesture}, nil
	}

	x := int(t.read[2]&0x0F)<<8 | int(t.read[3])
	y := int(t.read[4]&0x0F)<<8 | int(t.read[5])

	return TouchData{
		Present:     true,
		Points:      points,
		GestureCode: gesture,
		X:           x,
		Y:           y,
	}, nil
}
