package view

import (
	"strconv"

	. "maragu.dev/gomponents"
)

// reveal describes a one-shot entrance transition. The embedded script plays
// it when the element first enters the viewport; on mount when OnMount is set.
type reveal struct {
	Duration float64
	Delay    float64
	OnMount  bool
}

var (
	fadeUp     = reveal{Duration: 0.6}
	fadeUpLate = reveal{Duration: 0.6, Delay: 0.4}
)

func (r reveal) attrs() Node {
	trigger := "view"
	if r.OnMount {
		trigger = "mount"
	}
	return Group{
		Attr("data-reveal", trigger),
		Attr("data-reveal-duration", seconds(r.Duration)),
		If(r.Delay > 0, Attr("data-reveal-delay", seconds(r.Delay))),
	}
}

func onMount(delay float64) Node {
	return reveal{Duration: 0.6, Delay: delay, OnMount: true}.attrs()
}

// stagger delays each child reveal by step seconds.
func stagger(step float64) Node {
	return Group{
		Attr("data-reveal", "view"),
		Attr("data-stagger", seconds(step)),
	}
}

func seconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
