package opmon

import (
	"testing"
	"time"

	"github.com/bmizerany/assert"
)

func TestOperation(t *testing.T) {
	for i := 0; i < 3; i++ {
		op := StartOperation("opmon_test.op")
		if i == 1 {
			op.Fail()
		}
		op.Finish(time.Hour)
	}

	info := Snapshot()["opmon_test.op"]
	assert.Equal(t, uint64(3), info.Count)
	assert.Equal(t, uint64(1), info.Failures)
	assert.T(t, info.MaxDuration <= info.TotalDuration, "max duration exceeds total")

	Dump()
	_, ok := Snapshot()["opmon_test.op"]
	assert.T(t, !ok, "dump should clear statistics")
}
