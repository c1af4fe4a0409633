// MT Logging Manager - Daily log persistence and error reporting
// Copyright 2026 Movista Travel
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/movista-travel/mt-logging-manager

package mtlogging_test

import (
	"fmt"
	"os"
	"time"

	mtlogging "github.com/movista-travel/mt-logging-manager"
)

func Example() {
	dir, err := os.MkdirTemp("", "mtlogging-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	cfg := mtlogging.DefaultConfig()
	cfg.Environment = mtlogging.EnvStage
	cfg.Storage.Dir = dir
	cfg.Storage.Timezone = "UTC"

	logs, err := mtlogging.New(cfg,
		mtlogging.WithConsole(mtlogging.DiscardConsole),
		mtlogging.WithClock(func() time.Time {
			return time.Date(2026, time.October, 18, 9, 15, 2, 0, time.UTC)
		}),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	site := mtlogging.CallSite{Function: "main.run", File: "/src/app/main.go", Line: 42}
	logs.LogMessage(mtlogging.NewMessage("boot ok", site))
	logs.Wait()

	for name, content := range logs.Logs() {
		fmt.Println(name)
		fmt.Print(string(content))
	}
	// Output:
	// 18_10_2026.txt
	// 2026-10-18T09:15:02+0000 main.run main.go:42
	// boot ok
	// ----------------
}

func ExampleFormat() {
	fmt.Print(mtlogging.Format("seat taken", "booking.Confirm", "/src/booking/confirm.go", 88))
	// Output:
	// booking.Confirm confirm.go:88
	// seat taken
	// ----------------
}
