package proto

import (
	"periph.io/x/conn/v3/gpio"
)

// Transport moves command bytes and display data to the panel controller.
type Transport interface {
	SendCommand(cmd byte) error
	SendData(data []byte) error
}

// Line is a digital output pin.
type Line interface {
	Out(l gpio.Level) error
}
