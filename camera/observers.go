// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

// Observers is the dispatch table from camera [Params] to the functions
// that must re-run when that parameter changes. Notifications raised
// inside [Observers.Batch] are deferred and delivered when the
// outermost batch ends, so that a change-set is reported once.
type Observers struct {
	observers []observer
	batch     int
	flushing  bool
	pending   []Params
	seen      [ParamsN]bool
}

type observer struct {
	fun func(p Params)

	// mask is the set of watched params; nil mask means every param,
	// with one call per changed param.
	mask *[ParamsN]bool
}

// OnChange registers fun to be called once per change-set in which any
// of the given parameters changed. It receives the first such parameter.
func (ob *Observers) OnChange(fun func(p Params), params ...Params) {
	var mask [ParamsN]bool
	for _, p := range params {
		if p >= 0 && p < ParamsN {
			mask[p] = true
		}
	}
	ob.observers = append(ob.observers, observer{fun: fun, mask: &mask})
}

// OnAny registers fun to be called once for every changed parameter.
func (ob *Observers) OnAny(fun func(p Params)) {
	ob.observers = append(ob.observers, observer{fun: fun})
}

// Batch runs fun, deferring all notifications until it returns.
// Batches nest; only the outermost one flushes.
func (ob *Observers) Batch(fun func()) {
	ob.batch++
	defer func() {
		ob.batch--
		if ob.batch == 0 {
			ob.flush()
		}
	}()
	fun()
}

// Notify reports that the given parameters changed.
func (ob *Observers) Notify(params ...Params) {
	for _, p := range params {
		if p < 0 || p >= ParamsN || ob.seen[p] {
			continue
		}
		ob.seen[p] = true
		ob.pending = append(ob.pending, p)
	}
	if ob.batch == 0 {
		ob.flush()
	}
}

// flush delivers pending notifications, including any raised by the
// observers themselves, without recursing.
func (ob *Observers) flush() {
	if ob.flushing {
		return
	}
	ob.flushing = true
	defer func() { ob.flushing = false }()
	for len(ob.pending) > 0 {
		ps := ob.pending
		ob.pending = nil
		ob.seen = [ParamsN]bool{}
		for _, o := range ob.observers {
			if o.mask == nil {
				for _, p := range ps {
					o.fun(p)
				}
				continue
			}
			for _, p := range ps {
				if o.mask[p] {
					o.fun(p)
					break
				}
			}
		}
	}
}
