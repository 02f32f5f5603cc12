package main

import (
	"context"
	"fmt"
	"time"

	"github.com/tusgame/tusworld/engine/config"
	"github.com/tusgame/tusworld/engine/journal"
)

func showJournal(n int) {
	j, err := journal.Open(config.GetJournal())
	checkErrorOrQuit(err, "open journal failed")
	if j == nil {
		showMsgAndQuit("journal is not configured")
	}
	defer func() {
		j.Close()
		j.WaitTerminated()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	entries, err := j.Recent(ctx, n)
	checkErrorOrQuit(err, "read journal failed")

	showMsg("%d entries", len(entries))
	for i := range entries {
		fmt.Println(entries[i].String())
	}
}
