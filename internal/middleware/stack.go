package middleware

import (
	"fmt"
	"sort"

	"github.com/AndrewFossAWS/smithy-ruby/internal/model"
)

// Stack is the ordered, per-operation list of middleware records a client
// method's emitted body pushes onto its runtime stack (spec §3:
// "MiddlewareStack").
type Stack struct {
	Records []Record
}

// indexed pairs a Record with its position in the combined input sequence,
// so ties within a step break by insertion order (spec §4.E).
type indexed struct {
	Record
	index int
}

// Compose assembles the stack for a single operation: it concatenates base
// (the transport's defaults), protocolAdditions, and userAdditions in that
// order, drops any record whose predicates fail, then sorts what remains by
// step and, within a step, by Order then insertion order (spec §4.E:
// "Stack composition for a given operation").
//
// A predicate that panics is treated as "predicate throwing" (spec §4.E:
// "predicate throwing propagates as a codegen failure") and surfaces as an
// error rather than crashing the whole generation run.
func Compose(m *model.Model, svc *model.Service, op *model.Shape, base, protocolAdditions, userAdditions []Record) (_ *Stack, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("middleware predicate panicked for operation %s: %v", op.ID, r)
		}
	}()

	all := make([]indexed, 0, len(base)+len(protocolAdditions)+len(userAdditions))
	idx := 0
	for _, group := range [][]Record{base, protocolAdditions, userAdditions} {
		for _, rec := range group {
			all = append(all, indexed{Record: rec, index: idx})
			idx++
		}
	}

	var kept []indexed
	for _, rec := range all {
		if !rec.ServicePredicate(m, svc) {
			continue
		}
		if !rec.OperationPredicate(m, svc, op) {
			continue
		}
		kept = append(kept, rec)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		si, sj := stepRank[kept[i].Step], stepRank[kept[j].Step]
		if si != sj {
			return si < sj
		}
		if kept[i].Order != kept[j].Order {
			return kept[i].Order < kept[j].Order
		}
		return kept[i].index < kept[j].index
	})

	records := make([]Record, len(kept))
	for i, rec := range kept {
		records[i] = rec.Record
	}
	return &Stack{Records: records}, nil
}
