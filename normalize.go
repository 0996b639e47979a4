package padstream

// EventQueue is the per-controller pending-event FIFO (component B's
// output, component D's input): backends append zero or more abstract
// events to it while translating one raw record, and Controller.Poll drains
// it in order before reading any new record.
//
// Backends must consult [Focused] themselves before appending anything:
// the raw record should always be read (to avoid kernel-side
// back-pressure), but no abstract event should reach the queue while the
// focus gate is off.
type EventQueue struct {
	buf []Event
}

// Push appends an event to the back of the queue.
func (q *EventQueue) Push(e Event) {
	q.buf = append(q.buf, e)
}

// Pop removes and returns the event at the front of the queue.
func (q *EventQueue) Pop() (Event, bool) {
	if len(q.buf) == 0 {
		return Event{}, false
	}

	e := q.buf[0]
	q.buf = q.buf[1:]

	if len(q.buf) == 0 {
		q.buf = nil
	}

	return e, true
}

// Len reports the number of events currently queued.
func (q *EventQueue) Len() int {
	return len(q.buf)
}

// hatRow names the four directional Kinds emitted by one hat-axis pair, in
// the order {up, down, left, right}.
type hatRow struct {
	up, down, left, right Kind
}

// hatKindsByPair assigns the semantics for up to four HAT axis pairs, per
// spec: the first pair drives the 8-way POV hat vocabulary (matching the
// literal S3 scenario: ABS_HAT0X => Pov{Left,Right}), the second drives the
// flightstick Hat vocabulary, and the third/fourth — "beyond the first two
// hats" — drive Trim and Mic direction events.
var hatKindsByPair = [4]hatRow{
	{up: KindPovUp, down: KindPovDown, left: KindPovLeft, right: KindPovRight},
	{up: KindHatUp, down: KindHatDown, left: KindHatLeft, right: KindHatRight},
	{up: KindTrimUp, down: KindTrimDown, left: KindTrimLeft, right: KindTrimRight},
	{up: KindMicUp, down: KindMicDown, left: KindMicLeft, right: KindMicRight},
}

// HatTracker holds the sign of the last non-zero sample seen for each axis
// of up to 4 HAT pairs, so the Normalizer can detect zero-crossings and
// synthesize the paired release events spec.md's hat-expansion rule
// describes.
type HatTracker struct {
	lastSign [4][2]int8 // [pairIndex][0=X,1=Y]
}

func sign32(v int32) int8 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func hatDirection(row hatRow, isY bool, sign int8, pressed bool) Event {
	if isY {
		if sign > 0 {
			return Bool(row.down, pressed)
		}

		return Bool(row.up, pressed)
	}

	if sign > 0 {
		return Bool(row.right, pressed)
	}

	return Bool(row.left, pressed)
}

// Update processes one raw sample for HAT axis pair (0-indexed, up to 3)
// and its X/Y-ness, pushing the primary event (and, on a zero-crossing,
// queuing the mirror release event for delivery on the next poll) onto q.
// Out-of-range pair indices (a 5th+ hat) are ignored, matching the
// unknown-code log-and-drop policy for anything the vocabulary has no slot
// for.
func (h *HatTracker) Update(pair int, isY bool, raw int32, q *EventQueue) {
	if pair < 0 || pair >= len(hatKindsByPair) {
		return
	}

	row := hatKindsByPair[pair]
	axis := 0
	if isY {
		axis = 1
	}

	sign := sign32(raw)
	prev := h.lastSign[pair][axis]

	if sign != 0 {
		h.lastSign[pair][axis] = sign
		q.Push(hatDirection(row, isY, sign, true))

		return
	}

	if prev == 0 {
		return
	}

	h.lastSign[pair][axis] = 0
	q.Push(hatDirection(row, isY, prev, false))
	q.Push(hatDirection(row, isY, -prev, false))
}
