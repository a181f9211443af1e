package capacitor

// event is one scheduled module activation in the depletion simulation.
type event struct {
	at       float64 // simulated time in seconds
	consumer *consumer
	credit   float64 // energy-transfer gain landing at this completion
}

// eventQueue is a time-ordered min-heap of activation events,
// used with container/heap.
type eventQueue []event

func (q eventQueue) Len() int            { return len(q) }
func (q eventQueue) Less(i, j int) bool  { return q[i].at < q[j].at }
func (q eventQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *eventQueue) Push(x interface{}) { *q = append(*q, x.(event)) }

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	ev := old[n-1]
	*q = old[:n-1]
	return ev
}
