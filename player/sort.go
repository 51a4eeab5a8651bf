package player

import "sort"

// sortMessages orders by tick with note offs first at equal ticks.
func sortMessages(msgs []timedMessage) {
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		var ch, key uint8
		return msgs[i].msg.GetNoteEnd(&ch, &key) && !msgs[j].msg.GetNoteEnd(&ch, &key)
	})
}
