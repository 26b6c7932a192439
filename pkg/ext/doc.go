// Package ext collects the small conveniences the engine's own types do not
// carry: optional-component vector construction, renderable alpha writes,
// transform resets, rigid-body freezing, text predicates and random
// selection.
//
// Every helper is a single read-modify-write on the value or object passed
// in. Pure helpers (With, Add, IsEmpty, Rand) never touch their input;
// mutating helpers (SetAlpha, the resets, Freeze) write straight to the host
// object and return nothing. Helpers never validate ranges or guard empty
// inputs: a nil transform or an empty slice fails exactly the way the
// underlying access fails.
package ext
