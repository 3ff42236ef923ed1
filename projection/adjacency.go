package projection

import (
	"forum-feed/domain/feed"
)

// ResolveAdjacency annotates every thread item with the message and thread found
// at the previous and next feed positions. Neighbors are positional: they may
// belong to another thread. A boundary neighbor, or a neighbor whose topic
// message can't be found, leaves both fields nil. Boundaries are not annotated.
func ResolveAdjacency(items []feed.Item) []feed.Item {
	resolved := make([]feed.Item, len(items))
	for i, item := range items {
		resolved[i] = item
		if !item.IsThread() {
			continue
		}
		resolved[i].Previous = neighborAt(items, i-1)
		resolved[i].Next = neighborAt(items, i+1)
	}
	return resolved
}

func neighborAt(items []feed.Item, index int) feed.Neighbor {
	if index < 0 || index >= len(items) {
		return feed.Neighbor{}
	}
	neighbor := items[index]
	if !neighbor.IsThread() || neighbor.Thread == nil || neighbor.Topic == nil {
		return feed.Neighbor{}
	}
	message := neighbor.Thread.FindMessage(neighbor.Topic.MessageID)
	if message == nil {
		return feed.Neighbor{}
	}
	return feed.Neighbor{Message: message, Thread: neighbor.Thread}
}
