package ecs

import (
	"slices"
	"strings"
)

// StorageStats is a snapshot of what a Storage currently holds.
type StorageStats struct {
	EntityCount    int
	SingletonCount int
	SingletonTypes []string
	Components     []ComponentStats
}

// ComponentStats counts live components of one type.
type ComponentStats struct {
	Type  string
	Count int
}

// CollectStats gathers storage statistics, sorted by type name.
func (s *Storage) CollectStats() *StorageStats {
	stats := &StorageStats{
		EntityCount:    len(s.order),
		SingletonCount: len(s.singletons),
	}

	for t := range s.singletons {
		stats.SingletonTypes = append(stats.SingletonTypes, t.String())
	}
	slices.Sort(stats.SingletonTypes)

	for t, store := range s.stores {
		stats.Components = append(stats.Components, ComponentStats{Type: t.String(), Count: store.len()})
	}
	slices.SortFunc(stats.Components, func(a, b ComponentStats) int {
		return strings.Compare(a.Type, b.Type)
	})

	return stats
}
