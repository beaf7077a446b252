// Package specialty recommends a follow-up specialty per student.
//
// The pipeline treats recommendation as a pluggable classifier behind the
// Predictor interface and never depends on any particular implementation.
// The only implementation today, RandomPredictor, is an explicitly
// labelled placeholder: it draws a uniform-random specialty with a
// plausible-looking confidence, from an injected deterministic random
// source so tests can pin its output. A real model can replace it without
// touching any caller.
package specialty
