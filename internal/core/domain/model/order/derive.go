package order

// deriveStatus computes the parent order's status from its sub-order
// statuses. The rules are evaluated top-down and the first match wins; the
// function is total over valid statuses and deterministic.
//
// Precedence:
//  1. all cancelled → cancelled
//  2. all in {refunded, cancelled} with at least one refunded → refunded
//  3. any cancelled, rest finished ({delivered, completed, refunded}) →
//     completed; cancelled sub-orders never block an otherwise finished order
//  4. all completed (refunded counts as completed) → completed
//  5. all in {delivered, completed, refunded} → delivered
//  6. any processing or shipped with none in {pending, confirmed} → the
//     minimum-progress status present among {processing, shipped, delivered,
//     completed}: the order is only as advanced as its least-advanced active
//     vendor
//  7. any confirmed with none pending → confirmed
//  8. otherwise → pending
//
// Cancelled sub-orders are excluded from the minimum-progress scan: a
// cancelled vendor is not the least-advanced one, it is out of the order.
func deriveStatus(statuses []Status) Status {
	if len(statuses) == 0 {
		return Pending
	}

	var (
		counts   = map[Status]int{}
		active   int // anything not cancelled
		finished int // delivered, completed, or refunded
	)
	for _, s := range statuses {
		counts[s]++
		if s != Cancelled {
			active++
		}
		if s == Delivered || s == Completed || s == Refunded {
			finished++
		}
	}

	if counts[Cancelled] == len(statuses) {
		return Cancelled
	}

	if counts[Refunded]+counts[Cancelled] == len(statuses) {
		return Refunded
	}

	if counts[Cancelled] > 0 && finished == active {
		return Completed
	}

	if counts[Completed]+counts[Refunded] == len(statuses) {
		return Completed
	}

	if finished == len(statuses) {
		return Delivered
	}

	if (counts[Processing] > 0 || counts[Shipped] > 0) && counts[Pending] == 0 && counts[Confirmed] == 0 {
		for _, s := range []Status{Processing, Shipped, Delivered, Completed} {
			if counts[s] > 0 {
				return s
			}
		}
	}

	if counts[Confirmed] > 0 && counts[Pending] == 0 {
		return Confirmed
	}

	return Pending
}
