package daemon

import (
	"sync"
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	snap := m.GetSnapshot()
	if snap.EventsSent != 0 || snap.EventsReceived != 0 || snap.EventsDropped != 0 || snap.Broadcasts != 0 {
		t.Errorf("Expected zeroed counters, got %+v", snap)
	}
	if time.Since(m.StartTime) > time.Second {
		t.Errorf("Expected StartTime to be recent, got %v", m.StartTime)
	}
}

func TestCounters(t *testing.T) {
	m := NewMetrics()

	for i := 0; i < 3; i++ {
		m.IncEventsReceived()
		m.IncBroadcasts()
	}
	m.IncEventsSent()
	m.IncEventsDropped()
	m.IncStaleRemoved()
	m.SetConnectedClients(4)

	snap := m.GetSnapshot()
	if snap.EventsReceived != 3 || snap.Broadcasts != 3 {
		t.Errorf("Expected 3 received and 3 broadcasts, got %+v", snap)
	}
	if snap.EventsSent != 1 || snap.EventsDropped != 1 || snap.StaleRemoved != 1 {
		t.Errorf("Unexpected single counters: %+v", snap)
	}
	if snap.ConnectedClients != 4 {
		t.Errorf("Expected 4 clients, got %d", snap.ConnectedClients)
	}
}

func TestGetSnapshot_IsCopy(t *testing.T) {
	m := NewMetrics()
	m.IncEventsSent()

	snap := m.GetSnapshot()
	m.IncEventsSent()

	if snap.EventsSent != 1 {
		t.Errorf("Snapshot changed after later increments: %d", snap.EventsSent)
	}
	if m.GetSnapshot().EventsSent != 2 {
		t.Errorf("Expected live counter to be 2")
	}
}

// Run with -race to catch unsynchronized access
func TestMetricsConcurrency(t *testing.T) {
	m := NewMetrics()

	numGoroutines := 50
	opsPerGoroutine := 100

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(val int32) {
			defer wg.Done()
			for j := 0; j < opsPerGoroutine; j++ {
				m.IncEventsSent()
				m.IncEventsReceived()
				m.SetConnectedClients(val)
				_ = m.GetSnapshot()
			}
		}(int32(i))
	}
	wg.Wait()

	expected := int64(numGoroutines * opsPerGoroutine)
	snap := m.GetSnapshot()
	if snap.EventsSent != expected || snap.EventsReceived != expected {
		t.Errorf("Expected %d sent and received, got %d and %d", expected, snap.EventsSent, snap.EventsReceived)
	}
	if snap.ConnectedClients < 0 || snap.ConnectedClients >= int32(numGoroutines) {
		t.Errorf("ConnectedClients out of range: %d", snap.ConnectedClients)
	}
}
