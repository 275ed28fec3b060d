package numblast

import "testing"

func TestSchedulerRunsAtDueTick(t *testing.T) {
	var s scheduler
	ran := false

	s.after(10, 5, func() { ran = true })

	s.runDue(14)
	if ran {
		t.Error("task ran before its due tick")
	}

	s.runDue(15)
	if !ran {
		t.Error("task did not run at its due tick")
	}
	if s.pending() != 0 {
		t.Errorf("pending = %d after run", s.pending())
	}
}

func TestSchedulerOrdering(t *testing.T) {
	var s scheduler
	var order []int

	s.after(0, 3, func() { order = append(order, 2) })
	s.after(0, 1, func() { order = append(order, 1) })
	s.after(0, 3, func() { order = append(order, 3) }) // same due as first, later insertion

	s.runDue(10)

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("execution order = %v, want [1 2 3]", order)
	}
}

func TestSchedulerTaskScheduledByTaskDefersToNextRun(t *testing.T) {
	var s scheduler
	var order []string

	s.after(0, 1, func() {
		order = append(order, "outer")
		s.after(1, 0, func() {
			order = append(order, "inner")
		})
	})

	s.runDue(1)
	if len(order) != 1 || order[0] != "outer" {
		t.Fatalf("after first run order = %v", order)
	}

	s.runDue(2)
	if len(order) != 2 || order[1] != "inner" {
		t.Errorf("after second run order = %v", order)
	}
}

func TestSchedulerCancelAll(t *testing.T) {
	var s scheduler
	ran := false

	s.after(0, 1, func() { ran = true })
	s.after(0, 2, func() { ran = true })

	s.cancelAll()
	if s.pending() != 0 {
		t.Errorf("pending = %d after cancelAll", s.pending())
	}

	s.runDue(100)
	if ran {
		t.Error("cancelled task ran")
	}
}

func TestSchedulerZeroDelay(t *testing.T) {
	var s scheduler
	ran := false

	s.after(5, 0, func() { ran = true })
	s.runDue(5)

	if !ran {
		t.Error("zero-delay task should run at the same tick")
	}
}
