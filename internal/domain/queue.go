package domain

import (
	"sort"
	"time"
)

// QueueLess orders entries by priority desc, then arrival asc, then id asc
func QueueLess(a, b *WaitingRoomEntry) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if !a.ArrivalTime.Equal(b.ArrivalTime) {
		return a.ArrivalTime.Before(b.ArrivalTime)
	}
	return a.ID.String() < b.ID.String()
}

// SortQueue sorts entries in place in consultation order
func SortQueue(entries []*WaitingRoomEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return QueueLess(entries[i], entries[j])
	})
}

// ComputeStatistics derives counters from the current queue and the entries
// that arrived today
func ComputeStatistics(active, today []*WaitingRoomEntry) WaitingRoomStatistics {
	var stats WaitingRoomStatistics

	for _, e := range active {
		switch e.Status {
		case WaitingStatusWaiting:
			stats.Waiting++
		case WaitingStatusInConsultation:
			stats.InConsultation++
		}
	}

	stats.CreatedToday = len(today)

	var (
		total time.Duration
		count int
	)
	for _, e := range today {
		if wait, ok := e.WaitTime(); ok {
			total += wait
			count++
		}
	}
	if count > 0 {
		avg := total / time.Duration(count)
		stats.AverageWait = &avg
	}

	return stats
}
