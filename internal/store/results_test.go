// internal/store/results_test.go
package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ready-assessment/internal/models"
)

func TestAppendKeepsArrivalOrder(t *testing.T) {
	log := NewResultLog()

	log.Append("alice", models.Report{"summary": "first"})
	log.Append("unknown", models.Report{"summary": "second"})
	log.Append("bob", models.Report{"summary": "third"})

	entries := log.Snapshot()
	require.Len(t, entries, 3)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, "unknown", entries[1].Username)
	assert.Equal(t, "bob", entries[2].Username)
	assert.Equal(t, "second", entries[1].Result["summary"])
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestSnapshotIsACopy(t *testing.T) {
	log := NewResultLog()
	log.Append("alice", models.Report{})

	first := log.Snapshot()
	log.Append("bob", models.Report{})

	assert.Len(t, first, 1)
	assert.Equal(t, 2, log.Len())
}

func TestConcurrentAppends(t *testing.T) {
	log := NewResultLog()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			log.Append(fmt.Sprintf("user-%d", n), models.Report{})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, log.Len())
}
