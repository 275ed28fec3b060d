package numblast

// taskFn is a deferred piece of work executed on the simulation thread.
type taskFn func()

// task is a scheduled callback keyed to the tick counter.
type task struct {
	due uint64 // Tick at which the task becomes runnable
	seq uint64 // Insertion order, breaks ties between equal due ticks
	fn  taskFn
}

// scheduler is a single-threaded task queue keyed by the game's tick counter.
// The tick counter is the monotonic clock, so all delayed work (settle
// phases, combo decay, power-up expiry and spawn rolls) is deterministic
// under a fixed seed and tick rate. There is no locking: tasks only ever run
// from Game.Step.
type scheduler struct {
	tasks  []task
	nextID uint64
}

// after schedules fn to run once delay ticks have elapsed past now.
// A zero delay runs on the next runDue call.
func (s *scheduler) after(now, delay uint64, fn taskFn) {
	s.tasks = append(s.tasks, task{
		due: now + delay,
		seq: s.nextID,
		fn:  fn,
	})
	s.nextID++
}

// runDue executes every task whose due tick has been reached, in (due, seq)
// order. Tasks scheduled by a running task are not executed until the next
// call, which keeps a settle phase from collapsing into a single tick.
func (s *scheduler) runDue(now uint64) {
	if len(s.tasks) == 0 {
		return
	}

	var due, later []task
	for _, t := range s.tasks {
		if t.due <= now {
			due = append(due, t)
		} else {
			later = append(later, t)
		}
	}
	if len(due) == 0 {
		return
	}
	s.tasks = later

	// Stable order: earlier due first, insertion order within a tick.
	for i := 1; i < len(due); i++ {
		for j := i; j > 0; j-- {
			a, b := due[j-1], due[j]
			if a.due < b.due || (a.due == b.due && a.seq < b.seq) {
				break
			}
			due[j-1], due[j] = b, a
		}
	}

	for _, t := range due {
		t.fn()
	}
}

// cancelAll drops every pending task. Used by reset so no orphaned callback
// can mutate a grid that no longer exists.
func (s *scheduler) cancelAll() {
	s.tasks = s.tasks[:0]
}

// pending returns the number of queued tasks.
func (s *scheduler) pending() int {
	return len(s.tasks)
}
