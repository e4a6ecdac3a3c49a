package main

import (
	"log"
	"time"

	"github.com/gounknown/rolling"
)

// test "write: No space left on device"
//
// Write errors must reach the caller, while a failure to open the next
// hourly file must only be reported and keep the current file in use.
func main() {
	a, err := rolling.NewHourly("_logs", "app.log",
		rolling.WithSymlink("_logs/app"),
		rolling.WithErrorHandler(func(err error) {
			log.Printf("rollover failed: %v", err)
		}),
	)
	if err != nil {
		panic(err)
	}
	defer a.Close()

	data := make([]byte, 1024*1024) // 1 MB
	for {
		time.Sleep(time.Second)
		if _, err := a.Write(data); err != nil {
			log.Printf("write failed: %v, metrics: %+v", err, a.Metrics())
		}
	}
}
