//go:build tinygo && baremetal

package main

import (
	"github.com/louistrue/T-Display-S3-Long/app"
	"github.com/louistrue/T-Display-S3-Long/hal"
)

func main() {
	app.Run(hal.New())
}
